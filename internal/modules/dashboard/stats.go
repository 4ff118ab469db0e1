package dashboard

import "servicehub/internal/domain"

// Stats are pure counts over already-fetched collections; computing them
// never triggers a server call.

type SeekerStats struct {
	TotalBookings     int `json:"total_bookings"`
	PendingBookings   int `json:"pending_bookings"`
	ConfirmedBookings int `json:"confirmed_bookings"`
	CompletedBookings int `json:"completed_bookings"`
	TotalServices     int `json:"total_services"`
}

type ProviderStats struct {
	TotalServices     int `json:"total_services"`
	TotalBookings     int `json:"total_bookings"`
	PendingBookings   int `json:"pending_bookings"`
	ConfirmedBookings int `json:"confirmed_bookings"`
}

type AdminStats struct {
	TotalUsers     int `json:"total_users"`
	ActiveUsers    int `json:"active_users"`
	Providers      int `json:"providers"`
	Seekers        int `json:"seekers"`
	Admins         int `json:"admins"`
	TotalServices  int `json:"total_services"`
	TotalBookings  int `json:"total_bookings"`
	OpenComplaints int `json:"open_complaints"`
}

func ComputeSeekerStats(services []domain.Service, bookings []domain.Booking) SeekerStats {
	byStatus := countByStatus(bookings)
	return SeekerStats{
		TotalBookings:     len(bookings),
		PendingBookings:   byStatus[domain.BookingPending],
		ConfirmedBookings: byStatus[domain.BookingConfirmed],
		CompletedBookings: byStatus[domain.BookingCompleted],
		TotalServices:     len(services),
	}
}

func ComputeProviderStats(services []domain.Service, bookings []domain.Booking) ProviderStats {
	byStatus := countByStatus(bookings)
	return ProviderStats{
		TotalServices:     len(services),
		TotalBookings:     len(bookings),
		PendingBookings:   byStatus[domain.BookingPending],
		ConfirmedBookings: byStatus[domain.BookingConfirmed],
	}
}

func ComputeAdminStats(users []domain.User, services []domain.Service, bookings []domain.Booking, complaints []domain.Complaint) AdminStats {
	st := AdminStats{
		TotalUsers:    len(users),
		TotalServices: len(services),
		TotalBookings: len(bookings),
	}
	for _, u := range users {
		if u.IsActive {
			st.ActiveUsers++
		}
		switch u.Role {
		case domain.RoleProvider:
			st.Providers++
		case domain.RoleSeeker:
			st.Seekers++
		case domain.RoleAdmin:
			st.Admins++
		}
	}
	for _, c := range complaints {
		if c.Status == domain.ComplaintPending || c.Status == domain.ComplaintInReview {
			st.OpenComplaints++
		}
	}
	return st
}

func countByStatus(bookings []domain.Booking) map[domain.BookingStatus]int {
	out := make(map[domain.BookingStatus]int, 4)
	for _, b := range bookings {
		out[b.Status]++
	}
	return out
}

// RatingSummary mirrors the backend's average_rating/review_count fields,
// recomputed client-side for services whose reviews were fetched separately.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

func SummarizeRatings(reviews []domain.Review) RatingSummary {
	if len(reviews) == 0 {
		return RatingSummary{}
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	// two decimals, matching the API's rounding
	avg = float64(int(avg*100+0.5)) / 100
	return RatingSummary{Average: avg, Count: len(reviews)}
}

// CountServicesInCategory backs the category deletion guard.
func CountServicesInCategory(services []domain.Service, categoryID int64) int {
	n := 0
	for _, s := range services {
		if s.CategoryID == categoryID {
			n++
		}
	}
	return n
}
