package domain

import "time"

type ComplaintType string

const (
	ComplaintServiceIssue  ComplaintType = "SERVICE_ISSUE"
	ComplaintBookingIssue  ComplaintType = "BOOKING_ISSUE"
	ComplaintUserBehavior  ComplaintType = "USER_BEHAVIOR"
	ComplaintPlatformIssue ComplaintType = "PLATFORM_ISSUE"
	ComplaintOther         ComplaintType = "OTHER"
)

func (t ComplaintType) Valid() bool {
	switch t {
	case ComplaintServiceIssue, ComplaintBookingIssue, ComplaintUserBehavior,
		ComplaintPlatformIssue, ComplaintOther:
		return true
	}
	return false
}

type ComplaintStatus string

const (
	ComplaintPending   ComplaintStatus = "PENDING"
	ComplaintInReview  ComplaintStatus = "IN_REVIEW"
	ComplaintResolved  ComplaintStatus = "RESOLVED"
	ComplaintDismissed ComplaintStatus = "DISMISSED"
)

type Complaint struct {
	ID             int64           `json:"id"`
	UserID         int64           `json:"user"`
	ServiceID      *int64          `json:"service,omitempty"`
	BookingID      *int64          `json:"booking,omitempty"`
	ComplaintType  ComplaintType   `json:"complaint_type"`
	Description    string          `json:"description"`
	Status         ComplaintStatus `json:"status"`
	AdminResponse  string          `json:"admin_response"`
	ServiceDetails *Service        `json:"service_details,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	ResolvedAt     *time.Time      `json:"resolved_at,omitempty"`
}
