package handlers

import (
	"log/slog"
	"net/http"

	"github.com/baharkarakas/freelancer-backend/internal/api/httpx"
	"github.com/baharkarakas/freelancer-backend/internal/api/validate"
	"github.com/baharkarakas/freelancer-backend/internal/middleware"
	"github.com/baharkarakas/freelancer-backend/internal/models"
	"github.com/baharkarakas/freelancer-backend/internal/services"
	"github.com/baharkarakas/freelancer-backend/internal/session"
	"github.com/go-chi/chi/v5"
)

type TaskHandler struct {
	Tasks *services.TaskService
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	ts, err := h.Tasks.ListAll(r.Context())
	if err != nil {
		writeErr(w, r, err, "")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, ts)
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.Tasks.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, r, err, "Task not found.")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, t)
}

// Mine lists tasks owned by the session's own username.
func (h *TaskHandler) Mine(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.Current(r.Context())
	if !ok {
		writeErr(w, r, services.ErrUnauthenticated, "")
		return
	}
	ts, err := h.Tasks.ListByOwnerUsername(r.Context(), identity.Username)
	if err != nil {
		writeErr(w, r, err, "")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, ts)
}

type addTaskResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	TaskID  string `json:"taskId,omitempty"`
}

// Add keeps the {success,message} shape on every path, errors included.
func (h *TaskHandler) Add(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.Current(r.Context())
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, addTaskResp{Message: "User not logged in."})
		return
	}
	var in models.TaskInput
	if err := httpx.Decode(r, &in); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, addTaskResp{Message: "Malformed request body."})
		return
	}
	if err := validate.Present("title", in.Title.String()); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, addTaskResp{Message: "Missing required fields: " + err.Error()})
		return
	}
	id, err := h.Tasks.Create(r.Context(), identity, in)
	if err != nil {
		slog.ErrorContext(r.Context(), "add task",
			"err", err,
			"username", identity.Username,
			"request_id", middleware.RequestIDFrom(r.Context()),
		)
		httpx.WriteJSON(w, http.StatusInternalServerError, addTaskResp{Message: "Failed to add task"})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, addTaskResp{Success: true, Message: "Task added successfully", TaskID: id})
}
