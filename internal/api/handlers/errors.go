package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/baharkarakas/freelancer-backend/internal/api/httpx"
	"github.com/baharkarakas/freelancer-backend/internal/api/validate"
	"github.com/baharkarakas/freelancer-backend/internal/middleware"
	"github.com/baharkarakas/freelancer-backend/internal/services"
)

const internalError = "Internal server error."

// writeErr maps service errors to status codes. notFound is the message for
// this route's 404; anything unrecognised is logged and answered with 500.
func writeErr(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	var fieldErrs validate.Errs
	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		httpx.WriteMessage(w, http.StatusUnauthorized, "User not logged in.")
	case errors.Is(err, services.ErrInvalidID):
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid id.")
	case errors.As(err, &fieldErrs):
		httpx.WriteMessage(w, http.StatusBadRequest, "Missing required fields: "+fieldErrs.Error())
	case errors.Is(err, httpx.ErrBadBody):
		httpx.WriteMessage(w, http.StatusBadRequest, "Malformed request body.")
	case errors.Is(err, services.ErrMissingField):
		httpx.WriteMessage(w, http.StatusBadRequest, "Missing required fields.")
	case errors.Is(err, services.ErrSenderNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "Sender not found.")
	case errors.Is(err, services.ErrRecipientNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "Task owner not found.")
	case errors.Is(err, services.ErrNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, notFound)
	default:
		slog.ErrorContext(r.Context(), "request failed",
			"err", err,
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.RequestIDFrom(r.Context()),
		)
		httpx.WriteMessage(w, http.StatusInternalServerError, internalError)
	}
}
