package complaint

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"servicehub/internal/api"
	"servicehub/internal/domain"
)

type ComplaintAPI interface {
	ListComplaints(ctx context.Context) ([]domain.Complaint, error)
	CreateComplaint(ctx context.Context, req api.CreateComplaintRequest) (*domain.Complaint, error)
	UpdateComplaint(ctx context.Context, id int64, req api.UpdateComplaintRequest) (*domain.Complaint, error)
}

type Service struct {
	api ComplaintAPI
	log *zap.Logger
}

func NewService(complaintAPI ComplaintAPI, log *zap.Logger) *Service {
	return &Service{api: complaintAPI, log: log}
}

func (s *Service) List(ctx context.Context) ([]domain.Complaint, error) {
	return s.api.ListComplaints(ctx)
}

// File submits a new complaint, optionally tied to a service or booking.
func (s *Service) File(ctx context.Context, ctype domain.ComplaintType, description string, serviceID, bookingID *int64) (*domain.Complaint, error) {
	if !ctype.Valid() {
		return nil, ErrTypeRequired
	}
	if strings.TrimSpace(description) == "" {
		return nil, ErrDescriptionRequired
	}
	return s.api.CreateComplaint(ctx, api.CreateComplaintRequest{
		ComplaintType: ctype,
		Description:   description,
		Service:       serviceID,
		Booking:       bookingID,
	})
}

// Moderate is the admin action: move the complaint along its lifecycle and
// attach a response. resolved_at is stamped server-side.
func (s *Service) Moderate(ctx context.Context, id int64, status domain.ComplaintStatus, response string) (*domain.Complaint, error) {
	switch status {
	case domain.ComplaintPending, domain.ComplaintInReview,
		domain.ComplaintResolved, domain.ComplaintDismissed:
	default:
		return nil, ErrInvalidStatus
	}
	return s.api.UpdateComplaint(ctx, id, api.UpdateComplaintRequest{
		Status:        status,
		AdminResponse: response,
	})
}
