// Package session maps opaque session ids, carried in a signed cookie, to
// the identity snapshot taken at login.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/baharkarakas/freelancer-backend/internal/models"
)

var ErrNotFound = errors.New("session not found")

type Session struct {
	ID       string
	Identity models.Identity
}

// Store persists identity snapshots keyed by session id.
type Store interface {
	Get(ctx context.Context, id string) (models.Identity, error)
	Set(ctx context.Context, id string, identity models.Identity, ttl time.Duration) error
	Ping(ctx context.Context) error
}

type ctxKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session attached by the session middleware.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	return s, ok
}

// Current returns the identity bound to the request's session, if any.
func Current(ctx context.Context) (models.Identity, bool) {
	s, ok := FromContext(ctx)
	if !ok || s.Identity.ID == "" {
		return models.Identity{}, false
	}
	return s.Identity, true
}
