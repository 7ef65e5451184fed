package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/baharkarakas/freelancer-backend/internal/models"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffersRepo_CreateAndList(t *testing.T) {
	mock := newMock(t)
	repos := NewRepositories(mock)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO offers`).
		WithArgs(pgxmock.AnyArg(), "t-1", "u-2", "bob", "tomorrow", "I can do it").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))
	mock.ExpectQuery(`FROM offers\s+WHERE task_id=\$1`).
		WithArgs("t-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "task_id", "user_id", "username", "deadline", "pitch", "created_at"}).
			AddRow("o-1", "t-1", "u-2", "bob", models.Text("tomorrow"), models.Text("I can do it"), now))

	created, err := repos.Offers.Create(context.Background(), models.Offer{
		TaskID: "t-1", UserID: "u-2", Username: "bob", Deadline: "tomorrow", Pitch: "I can do it",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := repos.Offers.ListByTask(context.Background(), "t-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "bob", got[0].Username)
	assert.Equal(t, models.Text("I can do it"), got[0].Pitch)
}
