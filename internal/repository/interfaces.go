package repository

import (
	"context"
	"errors"

	"github.com/baharkarakas/freelancer-backend/internal/models"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when an insert violates a uniqueness constraint.
	ErrConflict = errors.New("conflict")
)

type Users interface {
	Create(ctx context.Context, username, email, passwordHash string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

type Tasks interface {
	Create(ctx context.Context, t models.Task) (models.Task, error)
	GetByID(ctx context.Context, id string) (models.Task, error)
	List(ctx context.Context) ([]models.Task, error)
	ListByUsername(ctx context.Context, username string) ([]models.Task, error)
}

type Offers interface {
	Create(ctx context.Context, o models.Offer) (models.Offer, error)
	ListByTask(ctx context.Context, taskID string) ([]models.Offer, error)
}

type Messages interface {
	Create(ctx context.Context, m models.Message) (models.Message, error)
	ListByRecipient(ctx context.Context, recipientID string) ([]models.Message, error)
}

// Pinger is implemented by backends that can report their health.
type Pinger interface {
	Ping(ctx context.Context) error
}
