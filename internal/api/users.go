package api

import (
	"context"
	"net/http"

	"servicehub/internal/domain"
)

// UpdateUserRequest patches individual fields; nil means "leave unchanged".
type UpdateUserRequest struct {
	FirstName          *string      `json:"first_name,omitempty"`
	LastName           *string      `json:"last_name,omitempty"`
	Role               *domain.Role `json:"role,omitempty"`
	IsActive           *bool        `json:"is_active,omitempty"`
	EmailNotifications *bool        `json:"email_notifications,omitempty"`
}

func (c *Client) CurrentUser(ctx context.Context) (*domain.User, error) {
	var out domain.User
	if err := c.do(ctx, http.MethodGet, "/users/me/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCurrentUser(ctx context.Context, req UpdateUserRequest) (*domain.User, error) {
	var out domain.User
	if err := c.do(ctx, http.MethodPatch, "/users/me/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListUsers is admin-only; the server enforces that.
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	if err := c.do(ctx, http.MethodGet, "/admin/users/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) (*domain.User, error) {
	var out domain.User
	if err := c.do(ctx, http.MethodPatch, "/admin/users/"+itoa(id)+"/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
