package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/baharkarakas/freelancer-backend/internal/auth"
	"github.com/baharkarakas/freelancer-backend/internal/logger"
	"github.com/baharkarakas/freelancer-backend/internal/models"
	"github.com/baharkarakas/freelancer-backend/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "abc", seen)
}

func TestRecover(t *testing.T) {
	h := Recover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Internal server error."}`, rec.Body.String())
}

func TestLogging_LevelByStatus(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter("dev", &buf)

	h := Logging(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/task/x", nil))

	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "http.status=404")
}

func TestSessionsAndRequireIdentity(t *testing.T) {
	store := session.NewMemoryStore()
	m := session.NewManager(store, auth.NewCookieSigner("secret", time.Hour), session.Options{TTL: time.Hour})

	h := Sessions(m)(RequireIdentity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := session.Current(r.Context())
		_, _ = w.Write([]byte(id.Username))
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/current-username", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"User not logged in."}`, rec.Body.String())

	login := httptest.NewRecorder()
	_, err := m.Establish(login, httptest.NewRequest(http.MethodPost, "/login", nil), models.Identity{ID: "u-1", Username: "alice"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/current-username", nil)
	for _, c := range login.Result().Cookies() {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", rec.Body.String())
}

// downStore fails every read, as an unreachable Redis would.
type downStore struct{ *session.MemoryStore }

func (downStore) Get(context.Context, string) (models.Identity, error) {
	return models.Identity{}, errors.New("redis down")
}

func TestSessions_StoreFailureIsInternalError(t *testing.T) {
	signer := auth.NewCookieSigner("secret", time.Hour)
	m := session.NewManager(downStore{session.NewMemoryStore()}, signer, session.Options{TTL: time.Hour})

	called := false
	h := Sessions(m)(RequireIdentity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})))

	value, err := signer.Sign("sid-1")
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/current-username", nil)
	req.AddCookie(&http.Cookie{Name: "connect.sid", Value: value})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Internal server error."}`, rec.Body.String())
}
