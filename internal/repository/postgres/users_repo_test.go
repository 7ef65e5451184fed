package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/baharkarakas/freelancer-backend/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func TestUsersRepo_Create(t *testing.T) {
	mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO users\(id, username, email, password_hash\)`).
		WithArgs(pgxmock.AnyArg(), "alice", "a@x.com", "hash").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))

	u, err := NewUsers(mock).Create(context.Background(), "alice", "a@x.com", "hash")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, now, u.CreatedAt)
}

func TestUsersRepo_CreateUniqueViolation(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(pgxmock.AnyArg(), "alice", "a@x.com", "hash").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

	_, err := NewUsers(mock).Create(context.Background(), "alice", "a@x.com", "hash")
	assert.ErrorIs(t, err, repository.ErrConflict)
}

func TestUsersRepo_GetByUsername(t *testing.T) {
	mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT id, username, email, password_hash, created_at FROM users WHERE username=\$1`).
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}).
			AddRow("u-1", "alice", "a@x.com", "hash", now))

	u, err := NewUsers(mock).GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "u-1", u.ID)
	assert.Equal(t, "hash", u.PasswordHash)
}

func TestUsersRepo_GetByIDNotFound(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery(`FROM users WHERE id=\$1`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := NewUsers(mock).GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUsersRepo_ExistsByUsername(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM users WHERE username=\$1\)`).
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := NewUsers(mock).ExistsByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUsersRepo_DBError(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery(`FROM users WHERE id=\$1`).
		WithArgs("u-1").
		WillReturnError(errors.New("db down"))

	_, err := NewUsers(mock).GetByID(context.Background(), "u-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
	assert.Contains(t, err.Error(), "db down")
}
