package services

import (
	"context"
	"fmt"

	"github.com/baharkarakas/freelancer-backend/internal/metrics"
	"github.com/baharkarakas/freelancer-backend/internal/models"
	repo "github.com/baharkarakas/freelancer-backend/internal/repository"
)

type OfferService struct{ r repo.Offers }

func NewOfferService(r repo.Offers) *OfferService { return &OfferService{r: r} }

// Create records a bid. The task is not looked up, so an offer may point at
// a task that does not exist.
func (s *OfferService) Create(ctx context.Context, bidder models.Identity, taskID string, deadline, pitch models.Text) (string, error) {
	if bidder.ID == "" {
		return "", ErrUnauthenticated
	}
	if err := checkID(taskID); err != nil {
		return "", err
	}
	o, err := s.r.Create(ctx, models.Offer{
		TaskID:   taskID,
		UserID:   bidder.ID,
		Username: bidder.Username,
		Deadline: deadline,
		Pitch:    pitch,
	})
	if err != nil {
		return "", fmt.Errorf("create offer: %w", err)
	}
	metrics.OffersSubmitted.Inc()
	return o.ID, nil
}

func (s *OfferService) ListByTask(ctx context.Context, taskID string) ([]models.Offer, error) {
	if err := checkID(taskID); err != nil {
		return nil, err
	}
	offers, err := s.r.ListByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	return offers, nil
}
