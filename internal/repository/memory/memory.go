// Package memory implements the repository interfaces over process-local
// maps. It backs STORE_BACKEND=memory and the handler tests.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/baharkarakas/freelancer-backend/internal/models"
	repo "github.com/baharkarakas/freelancer-backend/internal/repository"
	"github.com/google/uuid"
)

// Store keeps every entity in insertion order behind one lock.
type Store struct {
	mu       sync.RWMutex
	users    []models.User
	tasks    []models.Task
	offers   []models.Offer
	messages []models.Message
	now      func() time.Time
}

func New() *Store {
	return &Store{now: time.Now}
}

func (s *Store) Users() repo.Users       { return (*users)(s) }
func (s *Store) Tasks() repo.Tasks       { return (*tasks)(s) }
func (s *Store) Offers() repo.Offers     { return (*offers)(s) }
func (s *Store) Messages() repo.Messages { return (*messages)(s) }

func (s *Store) Ping(context.Context) error { return nil }

type users Store

func (r *users) Create(_ context.Context, username, email, hash string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username {
			return models.User{}, fmt.Errorf("%w: username %q", repo.ErrConflict, username)
		}
	}
	u := models.User{ID: uuid.NewString(), Username: username, Email: email, PasswordHash: hash, CreatedAt: r.now()}
	r.users = append(r.users, u)
	return u, nil
}

func (r *users) GetByID(_ context.Context, id string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, repo.ErrNotFound
}

func (r *users) GetByUsername(_ context.Context, username string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, repo.ErrNotFound
}

func (r *users) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.GetByUsername(ctx, username)
	if err != nil {
		return false, nil
	}
	return true, nil
}

type tasks Store

func (r *tasks) Create(_ context.Context, t models.Task) (models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.CreatedAt = r.now()
	r.tasks = append(r.tasks, t)
	return t, nil
}

func (r *tasks) GetByID(_ context.Context, id string) (models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Task{}, repo.ErrNotFound
}

func (r *tasks) List(context.Context) ([]models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]models.Task{}, r.tasks...), nil
}

func (r *tasks) ListByUsername(_ context.Context, username string) ([]models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Task{}
	for _, t := range r.tasks {
		if t.Username == username {
			out = append(out, t)
		}
	}
	return out, nil
}

type offers Store

func (r *offers) Create(_ context.Context, o models.Offer) (models.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	o.CreatedAt = r.now()
	r.offers = append(r.offers, o)
	return o, nil
}

func (r *offers) ListByTask(_ context.Context, taskID string) ([]models.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Offer{}
	for _, o := range r.offers {
		if o.TaskID == taskID {
			out = append(out, o)
		}
	}
	return out, nil
}

type messages Store

func (r *messages) Create(_ context.Context, m models.Message) (models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	m.CreatedAt = r.now()
	r.messages = append(r.messages, m)
	return m, nil
}

func (r *messages) ListByRecipient(_ context.Context, recipientID string) ([]models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Message{}
	for _, m := range r.messages {
		if m.RecipientID == recipientID {
			out = append(out, m)
		}
	}
	return out, nil
}
