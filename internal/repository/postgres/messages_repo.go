package postgres

import (
	"context"

	"github.com/baharkarakas/freelancer-backend/internal/models"
	"github.com/google/uuid"
)

type messagesRepo struct{ db DB }

func (r *messagesRepo) Create(ctx context.Context, m models.Message) (models.Message, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	err := r.db.QueryRow(ctx,
		`INSERT INTO messages(id, sender_id, sender_username, recipient_id, recipient_username, title, body)
		 VALUES($1,$2,$3,$4,$5,$6,$7)
		 RETURNING created_at`,
		m.ID, m.SenderID, m.SenderUsername, m.RecipientID, m.RecipientUsername, m.Title, m.Body,
	).Scan(&m.CreatedAt)
	if err != nil {
		return models.Message{}, translate(err)
	}
	return m, nil
}

func (r *messagesRepo) ListByRecipient(ctx context.Context, recipientID string) ([]models.Message, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, sender_id, sender_username, recipient_id, recipient_username, title, body, created_at
		   FROM messages
		  WHERE recipient_id=$1
		  ORDER BY created_at`,
		recipientID,
	)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	out := []models.Message{}
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.SenderUsername, &m.RecipientID, &m.RecipientUsername, &m.Title, &m.Body, &m.CreatedAt); err != nil {
			return nil, translate(err)
		}
		out = append(out, m)
	}
	return out, translate(rows.Err())
}
