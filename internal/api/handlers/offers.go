package handlers

import (
	"net/http"

	"github.com/baharkarakas/freelancer-backend/internal/api/httpx"
	"github.com/baharkarakas/freelancer-backend/internal/api/validate"
	"github.com/baharkarakas/freelancer-backend/internal/models"
	"github.com/baharkarakas/freelancer-backend/internal/services"
	"github.com/baharkarakas/freelancer-backend/internal/session"
	"github.com/go-chi/chi/v5"
)

type OfferHandler struct {
	Offers *services.OfferService
}

func (h *OfferHandler) ListByTask(w http.ResponseWriter, r *http.Request) {
	offers, err := h.Offers.ListByTask(r.Context(), chi.URLParam(r, "taskId"))
	if err != nil {
		writeErr(w, r, err, "")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, offers)
}

type submitOfferReq struct {
	TaskID   string      `json:"taskId"`
	Deadline models.Text `json:"deadline"`
	Pitch    models.Text `json:"pitch"`
}

func (h *OfferHandler) Submit(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.Current(r.Context())
	if !ok {
		writeErr(w, r, services.ErrUnauthenticated, "")
		return
	}
	var req submitOfferReq
	if err := httpx.Decode(r, &req); err != nil {
		writeErr(w, r, err, "")
		return
	}
	if err := validate.Present("taskId", req.TaskID); err != nil {
		writeErr(w, r, err, "")
		return
	}
	if _, err := h.Offers.Create(r.Context(), identity, req.TaskID, req.Deadline, req.Pitch); err != nil {
		writeErr(w, r, err, "")
		return
	}
	httpx.WriteMessage(w, http.StatusCreated, "Offer submitted successfully.")
}
