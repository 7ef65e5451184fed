package handlers

import (
	"net/http"

	"github.com/baharkarakas/freelancer-backend/internal/api/httpx"
	"github.com/baharkarakas/freelancer-backend/internal/api/validate"
	"github.com/baharkarakas/freelancer-backend/internal/services"
	"github.com/baharkarakas/freelancer-backend/internal/session"
)

type MessageHandler struct {
	Messages *services.MessageService
}

type sendMessageReq struct {
	Title       string `json:"title"`
	Message     string `json:"message"`
	TaskOwnerID string `json:"taskOwnerId"`
}

func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.Current(r.Context())
	if !ok {
		writeErr(w, r, services.ErrUnauthenticated, "")
		return
	}
	var req sendMessageReq
	if err := httpx.Decode(r, &req); err != nil {
		writeErr(w, r, err, "")
		return
	}
	if err := validate.Present("taskOwnerId", req.TaskOwnerID); err != nil {
		writeErr(w, r, err, "")
		return
	}
	if err := h.Messages.Send(r.Context(), identity, req.TaskOwnerID, req.Title, req.Message); err != nil {
		writeErr(w, r, err, "")
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "Message sent successfully.")
}

// Inbox is polled by clients with ?userId=<recipient id>.
func (h *MessageHandler) Inbox(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		httpx.WriteMessage(w, http.StatusBadRequest, "UserId not provided.")
		return
	}
	msgs, err := h.Messages.ListForRecipient(r.Context(), userID)
	if err != nil {
		writeErr(w, r, err, "")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, msgs)
}
