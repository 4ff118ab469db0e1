package api

import (
	"context"
	"net/http"

	"servicehub/internal/domain"
)

type CategoryRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	if err := c.do(ctx, http.MethodGet, "/categories/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCategory(ctx context.Context, req CategoryRequest) (*domain.Category, error) {
	var out domain.Category
	if err := c.do(ctx, http.MethodPost, "/categories/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id int64, req CategoryRequest) (*domain.Category, error) {
	var out domain.Category
	if err := c.do(ctx, http.MethodPatch, categoryPath(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, categoryPath(id), nil, nil)
}

func categoryPath(id int64) string {
	return "/categories/" + itoa(id) + "/"
}
