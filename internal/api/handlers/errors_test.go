package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/baharkarakas/freelancer-backend/internal/api/httpx"
	"github.com/baharkarakas/freelancer-backend/internal/api/validate"
	"github.com/baharkarakas/freelancer-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteErr(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"unauthenticated", services.ErrUnauthenticated, http.StatusUnauthorized, "User not logged in."},
		{"invalid id", errors.Join(services.ErrInvalidID, errors.New("bad uuid")), http.StatusBadRequest, "Invalid id."},
		{"missing fields", validate.Present("title", ""), http.StatusBadRequest, "Missing required fields: title: required"},
		{"bad body", errors.Join(httpx.ErrBadBody, errors.New("eof")), http.StatusBadRequest, "Malformed request body."},
		{"sender", services.ErrSenderNotFound, http.StatusNotFound, "Sender not found."},
		{"recipient", services.ErrRecipientNotFound, http.StatusNotFound, "Task owner not found."},
		{"not found", fmt.Errorf("get: %w", services.ErrNotFound), http.StatusNotFound, "Thing not found."},
		{"internal", errors.New("connection reset"), http.StatusInternalServerError, "Internal server error."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeErr(rec, httptest.NewRequest(http.MethodGet, "/", nil), tc.err, "Thing not found.")

			assert.Equal(t, tc.status, rec.Code)
			var body httpx.Message
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.msg, body.Message)
		})
	}
}
