package middleware

import (
	"log/slog"
	"net/http"

	"github.com/baharkarakas/freelancer-backend/internal/api/httpx"
	"github.com/baharkarakas/freelancer-backend/internal/session"
)

const notLoggedIn = "User not logged in."

// Sessions attaches the request's session, if its cookie resolves, to the
// context. A failing session store answers 500.
func Sessions(m *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, _, err := m.Load(r)
			if err != nil {
				slog.ErrorContext(r.Context(), "load session", "err", err, "request_id", RequestIDFrom(r.Context()))
				httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error.")
				return
			}
			if s.ID != "" {
				r = r.WithContext(session.WithSession(r.Context(), s))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireIdentity answers 401 when no identity is bound to the session.
func RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := session.Current(r.Context()); !ok {
			httpx.WriteMessage(w, http.StatusUnauthorized, notLoggedIn)
			return
		}
		next.ServeHTTP(w, r)
	})
}
