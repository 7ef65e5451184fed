package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/baharkarakas/freelancer-backend/internal/auth"
	"github.com/baharkarakas/freelancer-backend/internal/models"
	"github.com/google/uuid"
)

type Options struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// Manager binds sessions to browsers through a signed cookie.
type Manager struct {
	store  Store
	signer *auth.CookieSigner
	opts   Options
}

func NewManager(store Store, signer *auth.CookieSigner, opts Options) *Manager {
	if opts.CookieName == "" {
		opts.CookieName = "connect.sid"
	}
	return &Manager{store: store, signer: signer, opts: opts}
}

// Load resolves the request's cookie to a session. A missing, forged or
// expired cookie yields ok=false and no error; store failures are returned.
func (m *Manager) Load(r *http.Request) (Session, bool, error) {
	c, err := r.Cookie(m.opts.CookieName)
	if err != nil {
		return Session{}, false, nil
	}
	id, err := m.signer.Verify(c.Value)
	if err != nil {
		slog.DebugContext(r.Context(), "session cookie rejected", "err", err)
		return Session{}, false, nil
	}
	identity, err := m.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Session{ID: id}, false, nil
		}
		return Session{}, false, err
	}
	return Session{ID: id, Identity: identity}, true, nil
}

// Establish binds identity to a freshly minted session id and sets the
// cookie. The id presented by the request is never reused, so a cookie
// planted before login cannot resolve to the new identity.
func (m *Manager) Establish(w http.ResponseWriter, r *http.Request, identity models.Identity) (Session, error) {
	id := uuid.NewString()
	if err := m.store.Set(r.Context(), id, identity, m.opts.TTL); err != nil {
		return Session{}, fmt.Errorf("store session: %w", err)
	}
	value, err := m.signer.Sign(id)
	if err != nil {
		return Session{}, fmt.Errorf("sign session: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.opts.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(m.opts.TTL.Seconds()),
		HttpOnly: true,
		Secure:   m.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return Session{ID: id, Identity: identity}, nil
}

func (m *Manager) Ping(ctx context.Context) error {
	return m.store.Ping(ctx)
}
