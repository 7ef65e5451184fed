package postgres

import (
	"context"

	"github.com/baharkarakas/freelancer-backend/internal/models"
	"github.com/baharkarakas/freelancer-backend/internal/repository"
	"github.com/google/uuid"
)

type usersRepo struct{ db DB }

func NewUsers(db DB) repository.Users {
	return &usersRepo{db: db}
}

func (r *usersRepo) Create(ctx context.Context, username, email, hash string) (models.User, error) {
	u := models.User{ID: uuid.NewString(), Username: username, Email: email, PasswordHash: hash}
	err := r.db.QueryRow(ctx,
		`INSERT INTO users(id, username, email, password_hash) VALUES($1,$2,$3,$4) RETURNING created_at`,
		u.ID, u.Username, u.Email, u.PasswordHash,
	).Scan(&u.CreatedAt)
	if err != nil {
		return models.User{}, translate(err)
	}
	return u, nil
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (models.User, error) {
	var u models.User
	err := r.db.QueryRow(ctx,
		`SELECT id, username, email, password_hash, created_at FROM users WHERE id=$1`, id,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	return u, translate(err)
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (models.User, error) {
	var u models.User
	err := r.db.QueryRow(ctx,
		`SELECT id, username, email, password_hash, created_at FROM users WHERE username=$1`, username,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	return u, translate(err)
}

func (r *usersRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username=$1)`, username).Scan(&exists)
	return exists, translate(err)
}
