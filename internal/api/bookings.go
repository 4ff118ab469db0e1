package api

import (
	"context"
	"net/http"
	"time"

	"servicehub/internal/domain"
)

type CreateBookingRequest struct {
	Service     int64     `json:"service"`
	BookingDate time.Time `json:"booking_date"`
}

type UpdateBookingRequest struct {
	Status domain.BookingStatus `json:"status"`
}

// ListBookings returns the caller's bookings. The server scopes the result by
// role (seeker: own, provider: bookings on own services, admin: all).
func (c *Client) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	var out []domain.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	var out domain.Booking
	if err := c.do(ctx, http.MethodPost, "/bookings/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateBookingStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) (*domain.Booking, error) {
	var out domain.Booking
	path := bookingPath(bookingID)
	if err := c.do(ctx, http.MethodPatch, path, UpdateBookingRequest{Status: status}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func bookingPath(id int64) string {
	return "/bookings/" + itoa(id) + "/"
}
