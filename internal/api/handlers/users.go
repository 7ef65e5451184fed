package handlers

import (
	"net/http"

	"github.com/baharkarakas/freelancer-backend/internal/api/httpx"
	"github.com/baharkarakas/freelancer-backend/internal/services"
	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	Users *services.IdentityService
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.Users.GetByID(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		writeErr(w, r, err, "User not found.")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}
