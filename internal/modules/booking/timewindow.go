package booking

import "time"

// Service hours: bookings start at 08:00 inclusive, 17:00 exclusive.
const (
	OpeningHour = 8
	ClosingHour = 17

	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// ValidateWindow combines a date input and a time-of-day input into a
// booking instant and checks it against the future-only constraint and the
// service hours. Pure function of (date, tod, now); now also supplies the
// local timezone the inputs are interpreted in.
func ValidateWindow(date, tod string, now time.Time) (time.Time, error) {
	if date == "" || tod == "" {
		return time.Time{}, ErrMissingField
	}

	instant, err := time.ParseInLocation(dateLayout+" "+timeLayout, date+" "+tod, now.Location())
	if err != nil {
		// Unparsable input is treated the same as absent input.
		return time.Time{}, ErrMissingField
	}

	if !instant.After(now) {
		return time.Time{}, ErrPastInstant
	}

	if h := instant.Hour(); h < OpeningHour || h >= ClosingHour {
		return time.Time{}, ErrOutsideHours
	}

	return instant, nil
}
