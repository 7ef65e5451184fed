package postgres

import (
	"context"

	"github.com/baharkarakas/freelancer-backend/internal/models"
	"github.com/google/uuid"
)

type offersRepo struct{ db DB }

func (r *offersRepo) Create(ctx context.Context, o models.Offer) (models.Offer, error) {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	err := r.db.QueryRow(ctx,
		`INSERT INTO offers(id, task_id, user_id, username, deadline, pitch)
		 VALUES($1,$2,$3,$4,$5,$6)
		 RETURNING created_at`,
		o.ID, o.TaskID, o.UserID, o.Username, string(o.Deadline), string(o.Pitch),
	).Scan(&o.CreatedAt)
	if err != nil {
		return models.Offer{}, translate(err)
	}
	return o, nil
}

func (r *offersRepo) ListByTask(ctx context.Context, taskID string) ([]models.Offer, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, task_id, user_id, username, deadline, pitch, created_at
		   FROM offers
		  WHERE task_id=$1
		  ORDER BY created_at`,
		taskID,
	)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	out := []models.Offer{}
	for rows.Next() {
		var o models.Offer
		if err := rows.Scan(&o.ID, &o.TaskID, &o.UserID, &o.Username, &o.Deadline, &o.Pitch, &o.CreatedAt); err != nil {
			return nil, translate(err)
		}
		out = append(out, o)
	}
	return out, translate(rows.Err())
}
