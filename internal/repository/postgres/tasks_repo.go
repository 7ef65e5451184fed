package postgres

import (
	"context"

	"github.com/baharkarakas/freelancer-backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type tasksRepo struct{ db DB }

const taskColumns = `id, title, detail, deadline, mode, type, budget, user_id, username, created_at`

func (r *tasksRepo) Create(ctx context.Context, t models.Task) (models.Task, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	err := r.db.QueryRow(ctx,
		`INSERT INTO tasks(id, title, detail, deadline, mode, type, budget, user_id, username)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9)
		 RETURNING created_at`,
		t.ID, string(t.Title), string(t.Detail), string(t.Deadline), string(t.Mode), string(t.Type), string(t.Budget),
		t.UserID, t.Username,
	).Scan(&t.CreatedAt)
	if err != nil {
		return models.Task{}, translate(err)
	}
	return t, nil
}

func (r *tasksRepo) GetByID(ctx context.Context, id string) (models.Task, error) {
	row := r.db.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id=$1`, id)
	t, err := scanTask(row)
	return t, translate(err)
}

func (r *tasksRepo) List(ctx context.Context) ([]models.Task, error) {
	rows, err := r.db.Query(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY created_at`)
	if err != nil {
		return nil, translate(err)
	}
	return collectTasks(rows)
}

func (r *tasksRepo) ListByUsername(ctx context.Context, username string) ([]models.Task, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+taskColumns+`
		   FROM tasks
		  WHERE username=$1
		  ORDER BY created_at`,
		username,
	)
	if err != nil {
		return nil, translate(err)
	}
	return collectTasks(rows)
}

func scanTask(row pgx.Row) (models.Task, error) {
	var t models.Task
	err := row.Scan(&t.ID, &t.Title, &t.Detail, &t.Deadline, &t.Mode, &t.Type, &t.Budget, &t.UserID, &t.Username, &t.CreatedAt)
	return t, err
}

func collectTasks(rows pgx.Rows) ([]models.Task, error) {
	defer rows.Close()

	out := []models.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, translate(err)
		}
		out = append(out, t)
	}
	return out, translate(rows.Err())
}
