package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/baharkarakas/freelancer-backend/internal/models"
	"github.com/baharkarakas/freelancer-backend/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var taskCols = []string{"id", "title", "detail", "deadline", "mode", "type", "budget", "user_id", "username", "created_at"}

func TestTasksRepo_Create(t *testing.T) {
	mock := newMock(t)
	repos := NewRepositories(mock)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO tasks`).
		WithArgs(pgxmock.AnyArg(), "Fix sink", "leaky", "friday", "remote", "plumbing", "50", "u-1", "alice").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))

	got, err := repos.Tasks.Create(context.Background(), models.Task{
		Title: "Fix sink", Detail: "leaky", Deadline: "friday", Mode: "remote", Type: "plumbing", Budget: "50",
		UserID: "u-1", Username: "alice",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, now, got.CreatedAt)
}

func TestTasksRepo_ListByUsername(t *testing.T) {
	mock := newMock(t)
	repos := NewRepositories(mock)
	now := time.Now()

	mock.ExpectQuery(`FROM tasks\s+WHERE username=\$1`).
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows(taskCols).
			AddRow("t-1", models.Text("Fix sink"), models.Text(""), models.Text(""), models.Text(""), models.Text(""), models.Text("50"), "u-1", "alice", now).
			AddRow("t-2", models.Text("Paint"), models.Text(""), models.Text(""), models.Text(""), models.Text(""), models.Text(""), "u-1", "alice", now))

	got, err := repos.Tasks.ListByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.Text("Fix sink"), got[0].Title)
	assert.Equal(t, "alice", got[1].Username)
}

func TestTasksRepo_ListEmpty(t *testing.T) {
	mock := newMock(t)
	repos := NewRepositories(mock)

	mock.ExpectQuery(`SELECT .* FROM tasks ORDER BY created_at`).
		WillReturnRows(pgxmock.NewRows(taskCols))

	got, err := repos.Tasks.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTasksRepo_GetByIDNotFound(t *testing.T) {
	mock := newMock(t)
	repos := NewRepositories(mock)

	mock.ExpectQuery(`FROM tasks WHERE id=\$1`).
		WithArgs("t-9").
		WillReturnError(pgx.ErrNoRows)

	_, err := repos.Tasks.GetByID(context.Background(), "t-9")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
