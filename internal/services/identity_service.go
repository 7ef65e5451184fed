package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/baharkarakas/freelancer-backend/internal/auth"
	"github.com/baharkarakas/freelancer-backend/internal/metrics"
	"github.com/baharkarakas/freelancer-backend/internal/models"
	repo "github.com/baharkarakas/freelancer-backend/internal/repository"
)

type IdentityService struct {
	r repo.Users
}

func NewIdentityService(r repo.Users) *IdentityService { return &IdentityService{r: r} }

// Register stores a new user. The existence check runs before the insert;
// the store's uniqueness constraint catches the race between the two.
func (s *IdentityService) Register(ctx context.Context, username, email, password string) (err error) {
	defer func() {
		switch {
		case err == nil:
			metrics.RegistrationsTotal.WithLabelValues("ok").Inc()
		case errors.Is(err, ErrDuplicateUser):
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		default:
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		}
	}()

	u := models.User{Username: strings.TrimSpace(username), Email: strings.TrimSpace(email)}
	if err := u.Validate(); err != nil {
		return errors.Join(ErrMissingField, err)
	}
	if password == "" {
		return fmt.Errorf("%w: password", ErrMissingField)
	}

	exists, err := s.r.ExistsByUsername(ctx, u.Username)
	if err != nil {
		return fmt.Errorf("check username: %w", err)
	}
	if exists {
		return ErrDuplicateUser
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if _, err := s.r.Create(ctx, u.Username, u.Email, hash); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return ErrDuplicateUser
		}
		return fmt.Errorf("create user: %w", err)
	}
	slog.DebugContext(ctx, "user registered", "username", u.Username)
	return nil
}

// Authenticate resolves credentials to an identity. Unknown usernames and
// wrong passwords return the same error.
func (s *IdentityService) Authenticate(ctx context.Context, username, password string) (_ models.Identity, err error) {
	defer func() {
		switch {
		case err == nil:
			metrics.LoginsTotal.WithLabelValues("ok").Inc()
		case errors.Is(err, ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		default:
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
	}()

	u, err := s.r.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			auth.BurnCompare(password)
			return models.Identity{}, ErrInvalidCredentials
		}
		return models.Identity{}, fmt.Errorf("get user: %w", err)
	}
	if err := auth.VerifyPassword(password, u.PasswordHash); err != nil {
		return models.Identity{}, ErrInvalidCredentials
	}
	return u.Identity(), nil
}

func (s *IdentityService) GetByID(ctx context.Context, id string) (models.Profile, error) {
	u, err := s.user(ctx, id)
	if err != nil {
		return models.Profile{}, err
	}
	return u.Profile(), nil
}

func (s *IdentityService) user(ctx context.Context, id string) (models.User, error) {
	if err := checkID(id); err != nil {
		return models.User{}, err
	}
	u, err := s.r.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}
