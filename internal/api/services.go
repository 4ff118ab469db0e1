package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"servicehub/internal/domain"
)

type ServiceRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    int64           `json:"category"`
}

func (c *Client) ListServices(ctx context.Context) ([]domain.Service, error) {
	var out []domain.Service
	if err := c.do(ctx, http.MethodGet, "/services/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListMyServices returns only the authenticated provider's services.
func (c *Client) ListMyServices(ctx context.Context) ([]domain.Service, error) {
	var out []domain.Service
	if err := c.do(ctx, http.MethodGet, "/services/my-services/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	var out domain.Service
	if err := c.do(ctx, http.MethodGet, servicePath(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateService(ctx context.Context, req ServiceRequest) (*domain.Service, error) {
	var out domain.Service
	if err := c.do(ctx, http.MethodPost, "/services/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateService(ctx context.Context, id int64, req ServiceRequest) (*domain.Service, error) {
	var out domain.Service
	if err := c.do(ctx, http.MethodPatch, servicePath(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteService(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, servicePath(id), nil, nil)
}

func servicePath(id int64) string {
	return "/services/" + itoa(id) + "/"
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
