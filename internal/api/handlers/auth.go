package handlers

import (
	"errors"
	"net/http"

	"github.com/baharkarakas/freelancer-backend/internal/api/httpx"
	"github.com/baharkarakas/freelancer-backend/internal/api/validate"
	"github.com/baharkarakas/freelancer-backend/internal/services"
	"github.com/baharkarakas/freelancer-backend/internal/session"
)

type AuthHandler struct {
	Users    *services.IdentityService
	Sessions *session.Manager
}

func NewAuthHandler(users *services.IdentityService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{Users: users, Sessions: sessions}
}

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register answers 200 for duplicates as well; clients read the message.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := httpx.Decode(r, &req); err != nil {
		writeErr(w, r, err, "")
		return
	}
	if err := validate.Present("username", req.Username, "email", req.Email, "password", req.Password); err != nil {
		writeErr(w, r, err, "")
		return
	}
	err := h.Users.Register(r.Context(), req.Username, req.Email, req.Password)
	if errors.Is(err, services.ErrDuplicateUser) {
		httpx.WriteMessage(w, http.StatusOK, "Username already exists.")
		return
	}
	if err != nil {
		writeErr(w, r, err, "")
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "User registered successfully.")
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResp struct {
	Message  string `json:"message"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Login binds the authenticated identity to the caller's session. Unknown
// users and wrong passwords get the same 200 reply.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := httpx.Decode(r, &req); err != nil {
		writeErr(w, r, err, "")
		return
	}
	if err := validate.Present("username", req.Username, "password", req.Password); err != nil {
		writeErr(w, r, err, "")
		return
	}
	identity, err := h.Users.Authenticate(r.Context(), req.Username, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		httpx.WriteMessage(w, http.StatusOK, "Invalid username or password.")
		return
	}
	if err != nil {
		writeErr(w, r, err, "")
		return
	}
	if _, err := h.Sessions.Establish(w, r, identity); err != nil {
		writeErr(w, r, err, "")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, loginResp{
		Message:  "Login successful",
		Username: identity.Username,
		Email:    identity.Email,
	})
}

func (h *AuthHandler) CurrentUsername(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.Current(r.Context())
	if !ok {
		writeErr(w, r, services.ErrUnauthenticated, "")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"username": identity.Username})
}

// SessionInfo returns the caller's user id and session id.
func (h *AuthHandler) SessionInfo(w http.ResponseWriter, r *http.Request) {
	s, ok := session.FromContext(r.Context())
	if !ok || s.Identity.ID == "" {
		writeErr(w, r, services.ErrUnauthenticated, "")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{
		"userId":    s.Identity.ID,
		"sessionId": s.ID,
	})
}
