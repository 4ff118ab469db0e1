package review

import (
	"context"

	"go.uber.org/zap"

	"servicehub/internal/api"
	"servicehub/internal/domain"
)

type ReviewAPI interface {
	ListServiceReviews(ctx context.Context, serviceID int64) ([]domain.Review, error)
	CreateReview(ctx context.Context, req api.CreateReviewRequest) (*domain.Review, error)
	DeleteReview(ctx context.Context, id int64) error
}

type Service struct {
	api ReviewAPI
	log *zap.Logger
}

func NewService(reviewAPI ReviewAPI, log *zap.Logger) *Service {
	return &Service{api: reviewAPI, log: log}
}

func (s *Service) ListForService(ctx context.Context, serviceID int64) ([]domain.Review, error) {
	return s.api.ListServiceReviews(ctx, serviceID)
}

// Create validates the rating range client-side. Whether a seeker already
// reviewed this service is the server's call; its rejection is surfaced
// as-is.
func (s *Service) Create(ctx context.Context, serviceID int64, rating int, comment string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	return s.api.CreateReview(ctx, api.CreateReviewRequest{
		Service: serviceID,
		Rating:  rating,
		Comment: comment,
	})
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteReview(ctx, id)
}
