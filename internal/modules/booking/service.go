package booking

import (
	"context"

	"go.uber.org/zap"

	"servicehub/internal/api"
	"servicehub/internal/domain"
)

type Service struct {
	api BookingAPI
	log *zap.Logger
}

func NewService(bookingAPI BookingAPI, log *zap.Logger) *Service {
	return &Service{api: bookingAPI, log: log}
}

func (s *Service) List(ctx context.Context) ([]domain.Booking, error) {
	return s.api.ListBookings(ctx)
}

// SubmitDraft drives a draft through SUBMITTING and performs the create
// call. On success the draft ends SUBMITTED and the new PENDING booking is
// returned for the caller to prepend to its collection; on failure the
// draft keeps its input and the surfaced error.
func (s *Service) SubmitDraft(ctx context.Context, d *Draft) (*domain.Booking, error) {
	instant, err := d.BeginSubmit()
	if err != nil {
		return nil, err
	}

	b, err := s.api.CreateBooking(ctx, api.CreateBookingRequest{
		Service:     d.ServiceID(),
		BookingDate: instant,
	})
	if err != nil {
		d.Fail(err)
		return nil, err
	}

	d.Succeed()
	s.log.Info("booking created",
		zap.Int64("booking_id", b.ID),
		zap.Int64("service_id", b.ServiceID),
		zap.Time("booking_date", b.BookingDate),
	)
	return b, nil
}

// ChangeStatus applies the transition policy before any network call, then
// issues the PATCH. The returned booking mirrors the server response; the
// caller updates its local collection only from that (no optimistic write).
func (s *Service) ChangeStatus(ctx context.Context, actor domain.Role, b domain.Booking, next domain.BookingStatus, confirmed bool) (*domain.Booking, error) {
	if !CanTransition(actor, b.Status, next) {
		return nil, ErrIllegalTransition
	}
	if RequiresConfirmation(actor, next) && !confirmed {
		return nil, ErrConfirmationRequired
	}

	updated, err := s.api.UpdateBookingStatus(ctx, b.ID, next)
	if err != nil {
		return nil, err
	}

	s.log.Info("booking status changed",
		zap.Int64("booking_id", updated.ID),
		zap.String("from", string(b.Status)),
		zap.String("to", string(updated.Status)),
		zap.String("actor_role", string(actor)),
	)
	return updated, nil
}

// Cancel is the seeker-side shortcut used by the bookings pane.
func (s *Service) Cancel(ctx context.Context, actor domain.Role, b domain.Booking) (*domain.Booking, error) {
	return s.ChangeStatus(ctx, actor, b, domain.BookingCanceled, true)
}

// Confirm and Complete are the provider-side shortcuts.
func (s *Service) Confirm(ctx context.Context, b domain.Booking) (*domain.Booking, error) {
	return s.ChangeStatus(ctx, domain.RoleProvider, b, domain.BookingConfirmed, true)
}

func (s *Service) Complete(ctx context.Context, b domain.Booking) (*domain.Booking, error) {
	return s.ChangeStatus(ctx, domain.RoleProvider, b, domain.BookingCompleted, true)
}
