package booking

import (
	"context"

	"servicehub/internal/api"
	"servicehub/internal/domain"
)

// BookingAPI is the slice of the backend client this module depends on.
type BookingAPI interface {
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	CreateBooking(ctx context.Context, req api.CreateBookingRequest) (*domain.Booking, error)
	UpdateBookingStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) (*domain.Booking, error)
}
