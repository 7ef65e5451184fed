package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/baharkarakas/freelancer-backend/internal/models"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessagesRepo_CreateAndListByRecipient(t *testing.T) {
	mock := newMock(t)
	repos := NewRepositories(mock)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO messages`).
		WithArgs(pgxmock.AnyArg(), "u-1", "alice", "u-2", "bob", "hi", "about the sink").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))
	mock.ExpectQuery(`FROM messages\s+WHERE recipient_id=\$1`).
		WithArgs("u-2").
		WillReturnRows(pgxmock.NewRows([]string{"id", "sender_id", "sender_username", "recipient_id", "recipient_username", "title", "body", "created_at"}).
			AddRow("m-1", "u-1", "alice", "u-2", "bob", "hi", "about the sink", now))

	_, err := repos.Messages.Create(context.Background(), models.Message{
		SenderID: "u-1", SenderUsername: "alice", RecipientID: "u-2", RecipientUsername: "bob",
		Title: "hi", Body: "about the sink",
	})
	require.NoError(t, err)

	got, err := repos.Messages.ListByRecipient(context.Background(), "u-2")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.MessageView{Title: "hi", Message: "about the sink"}, got[0].View())
}

func TestMessagesRepo_ListQueryError(t *testing.T) {
	mock := newMock(t)
	repos := NewRepositories(mock)

	mock.ExpectQuery(`FROM messages`).
		WithArgs("u-2").
		WillReturnError(errors.New("conn reset"))

	_, err := repos.Messages.ListByRecipient(context.Background(), "u-2")
	assert.ErrorContains(t, err, "conn reset")
}
