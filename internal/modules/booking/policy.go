package booking

import "servicehub/internal/domain"

// allowed is the single source of truth for status changes requested by
// seekers and providers. Admins bypass it (override capability). Terminal
// statuses have no entries: nothing moves out of COMPLETED or CANCELED
// except an admin override.
var allowed = map[domain.Role]map[domain.BookingStatus][]domain.BookingStatus{
	domain.RoleSeeker: {
		domain.BookingPending:   {domain.BookingCanceled},
		domain.BookingConfirmed: {domain.BookingCanceled},
	},
	domain.RoleProvider: {
		domain.BookingPending:   {domain.BookingConfirmed, domain.BookingCanceled},
		domain.BookingConfirmed: {domain.BookingCompleted, domain.BookingCanceled},
	},
}

// CanTransition reports whether actor may move a booking from current to
// next. Every screen goes through this before issuing the PATCH; the server
// still has the final word.
func CanTransition(actor domain.Role, current, next domain.BookingStatus) bool {
	if !actor.Valid() || !current.Valid() || !next.Valid() {
		return false
	}
	if actor == domain.RoleAdmin {
		return true
	}
	for _, s := range allowed[actor][current] {
		if s == next {
			return true
		}
	}
	return false
}

// RequiresConfirmation gates admin overrides into a terminal status behind
// an explicit confirmation before the request is sent.
func RequiresConfirmation(actor domain.Role, next domain.BookingStatus) bool {
	return actor == domain.RoleAdmin && next.Terminal()
}
