package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/baharkarakas/freelancer-backend/internal/metrics"
	"github.com/baharkarakas/freelancer-backend/internal/models"
	repo "github.com/baharkarakas/freelancer-backend/internal/repository"
)

type MessageService struct {
	users *IdentityService
	r     repo.Messages
}

func NewMessageService(users *IdentityService, r repo.Messages) *MessageService {
	return &MessageService{users: users, r: r}
}

// Send resolves both parties at write time and stores their usernames next
// to their ids. Inbox reads are keyed by recipient id.
func (s *MessageService) Send(ctx context.Context, sender models.Identity, recipientID, title, body string) error {
	if sender.ID == "" {
		return ErrUnauthenticated
	}
	from, err := s.users.user(ctx, sender.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidID) {
			return ErrSenderNotFound
		}
		return err
	}
	to, err := s.users.user(ctx, recipientID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrRecipientNotFound
		}
		return err
	}

	if _, err := s.r.Create(ctx, models.Message{
		SenderID:          from.ID,
		SenderUsername:    from.Username,
		RecipientID:       to.ID,
		RecipientUsername: to.Username,
		Title:             title,
		Body:              body,
	}); err != nil {
		return fmt.Errorf("create message: %w", err)
	}
	metrics.MessagesSent.Inc()
	return nil
}

func (s *MessageService) ListForRecipient(ctx context.Context, recipientID string) ([]models.MessageView, error) {
	if err := checkID(recipientID); err != nil {
		return nil, err
	}
	ms, err := s.r.ListByRecipient(ctx, recipientID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	out := make([]models.MessageView, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.View())
	}
	return out, nil
}
