package api

import (
	"context"
	"net/http"

	"servicehub/internal/domain"
)

type CreateReviewRequest struct {
	Service int64  `json:"service"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ListServiceReviews returns the reviews for one service.
func (c *Client) ListServiceReviews(ctx context.Context, serviceID int64) ([]domain.Review, error) {
	var out []domain.Review
	if err := c.do(ctx, http.MethodGet, "/reviews/?service="+itoa(serviceID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListReviews(ctx context.Context) ([]domain.Review, error) {
	var out []domain.Review
	if err := c.do(ctx, http.MethodGet, "/reviews/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateReview(ctx context.Context, req CreateReviewRequest) (*domain.Review, error) {
	var out domain.Review
	if err := c.do(ctx, http.MethodPost, "/reviews/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteReview(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/reviews/"+itoa(id)+"/", nil, nil)
}
