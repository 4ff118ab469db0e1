package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCanceled  BookingStatus = "CANCELED"
)

// Terminal reports whether no further seeker/provider transition is permitted.
func (s BookingStatus) Terminal() bool {
	return s == BookingCompleted || s == BookingCanceled
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCanceled:
		return true
	}
	return false
}

type Booking struct {
	ID             int64         `json:"id"`
	ServiceID      int64         `json:"service"`
	SeekerID       int64         `json:"seeker"`
	Status         BookingStatus `json:"status"`
	BookingDate    time.Time     `json:"booking_date"`
	ServiceDetails *Service      `json:"service_details,omitempty"`
	SeekerDetails  *User         `json:"seeker_details,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
