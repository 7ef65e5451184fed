package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/baharkarakas/freelancer-backend/internal/metrics"
	"github.com/baharkarakas/freelancer-backend/internal/models"
	repo "github.com/baharkarakas/freelancer-backend/internal/repository"
)

type TaskService struct{ r repo.Tasks }

func NewTaskService(r repo.Tasks) *TaskService { return &TaskService{r: r} }

// Create stores a task owned by owner and returns its id.
func (s *TaskService) Create(ctx context.Context, owner models.Identity, in models.TaskInput) (string, error) {
	if owner.ID == "" {
		return "", ErrUnauthenticated
	}
	t, err := s.r.Create(ctx, models.Task{
		Title:    in.Title,
		Detail:   in.Detail,
		Deadline: in.Deadline,
		Mode:     in.Mode,
		Type:     in.Type,
		Budget:   in.Budget,
		UserID:   owner.ID,
		Username: owner.Username,
	})
	if err != nil {
		return "", fmt.Errorf("create task: %w", err)
	}
	metrics.TasksCreated.Inc()
	return t.ID, nil
}

func (s *TaskService) GetByID(ctx context.Context, id string) (models.Task, error) {
	if err := checkID(id); err != nil {
		return models.Task{}, err
	}
	t, err := s.r.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return models.Task{}, ErrNotFound
		}
		return models.Task{}, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

func (s *TaskService) ListAll(ctx context.Context) ([]models.Task, error) {
	ts, err := s.r.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return ts, nil
}

func (s *TaskService) ListByOwnerUsername(ctx context.Context, username string) ([]models.Task, error) {
	ts, err := s.r.ListByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("list tasks by owner: %w", err)
	}
	return ts, nil
}
