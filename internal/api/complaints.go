package api

import (
	"context"
	"net/http"

	"servicehub/internal/domain"
)

type CreateComplaintRequest struct {
	ComplaintType domain.ComplaintType `json:"complaint_type"`
	Description   string               `json:"description"`
	Service       *int64               `json:"service,omitempty"`
	Booking       *int64               `json:"booking,omitempty"`
}

// UpdateComplaintRequest is the admin-side moderation patch.
type UpdateComplaintRequest struct {
	Status        domain.ComplaintStatus `json:"status"`
	AdminResponse string                 `json:"admin_response,omitempty"`
}

// ListComplaints returns the caller's complaints (all of them for admins).
func (c *Client) ListComplaints(ctx context.Context) ([]domain.Complaint, error) {
	var out []domain.Complaint
	if err := c.do(ctx, http.MethodGet, "/complaints/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateComplaint(ctx context.Context, req CreateComplaintRequest) (*domain.Complaint, error) {
	var out domain.Complaint
	if err := c.do(ctx, http.MethodPost, "/complaints/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateComplaint(ctx context.Context, id int64, req UpdateComplaintRequest) (*domain.Complaint, error) {
	var out domain.Complaint
	if err := c.do(ctx, http.MethodPatch, "/complaints/"+itoa(id)+"/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
