package postgres

import (
	"context"

	repo "github.com/baharkarakas/freelancer-backend/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the part of *pgxpool.Pool the repositories use.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repositories struct {
	Users    repo.Users
	Tasks    repo.Tasks
	Offers   repo.Offers
	Messages repo.Messages
}

func NewRepositories(db DB) Repositories {
	return Repositories{
		Users:    &usersRepo{db},
		Tasks:    &tasksRepo{db},
		Offers:   &offersRepo{db},
		Messages: &messagesRepo{db},
	}
}
