package booking

import "time"

type DraftState string

const (
	DraftEmpty      DraftState = "EMPTY"
	DraftPartial    DraftState = "PARTIAL"
	DraftValid      DraftState = "VALID"
	DraftSubmitting DraftState = "SUBMITTING"
	DraftSubmitted  DraftState = "SUBMITTED"
	DraftFailed     DraftState = "FAILED"
)

// Draft holds the seeker's in-progress booking form before submission.
// Nothing is persisted: closing the form simply drops the value.
type Draft struct {
	serviceID int64
	date      string
	tod       string

	state   DraftState
	instant time.Time
	lastErr error

	clock func() time.Time
}

func NewDraft(serviceID int64) *Draft {
	return &Draft{
		serviceID: serviceID,
		state:     DraftEmpty,
		clock:     time.Now,
	}
}

func (d *Draft) State() DraftState { return d.state }
func (d *Draft) ServiceID() int64  { return d.serviceID }

// Err returns the most recent validation or submission error, nil when the
// draft is clean.
func (d *Draft) Err() error { return d.lastErr }

// Instant returns the validated booking instant; ok is false unless the
// draft currently passes the time window rule. A FAILED draft keeps its
// instant so the user can retry without re-entering anything.
func (d *Draft) Instant() (time.Time, bool) {
	switch d.state {
	case DraftValid, DraftSubmitting, DraftFailed:
		return d.instant, true
	}
	return time.Time{}, false
}

// SetDate updates the date input. Edits are ignored while a submission is in
// flight or after one succeeded.
func (d *Draft) SetDate(date string) {
	if d.state == DraftSubmitting || d.state == DraftSubmitted {
		return
	}
	d.date = date
	d.revalidate()
}

func (d *Draft) SetTime(tod string) {
	if d.state == DraftSubmitting || d.state == DraftSubmitted {
		return
	}
	d.tod = tod
	d.revalidate()
}

func (d *Draft) revalidate() {
	if d.date == "" && d.tod == "" {
		d.state = DraftEmpty
		d.lastErr = nil
		return
	}

	instant, err := ValidateWindow(d.date, d.tod, d.clock())
	if err != nil {
		d.state = DraftPartial
		d.lastErr = err
		return
	}

	d.state = DraftValid
	d.instant = instant
	d.lastErr = nil
}

// Reset discards everything entered, as when the form is closed. Allowed
// from any state except an in-flight submission.
func (d *Draft) Reset() {
	if d.state == DraftSubmitting {
		return
	}
	d.date = ""
	d.tod = ""
	d.instant = time.Time{}
	d.lastErr = nil
	d.state = DraftEmpty
}

// BeginSubmit moves a VALID draft to SUBMITTING and hands back the instant
// for the create call. A FAILED draft is submittable again (retry); any
// other state is rejected.
func (d *Draft) BeginSubmit() (time.Time, error) {
	if d.state != DraftValid && d.state != DraftFailed {
		if d.lastErr != nil {
			return time.Time{}, d.lastErr
		}
		return time.Time{}, ErrNotSubmittable
	}
	d.state = DraftSubmitting
	d.lastErr = nil
	return d.instant, nil
}

// Succeed marks the in-flight submission as accepted by the server.
func (d *Draft) Succeed() {
	if d.state == DraftSubmitting {
		d.state = DraftSubmitted
		d.lastErr = nil
	}
}

// Fail records the surfaced error. Date and time are kept, so the next
// BeginSubmit retries with the same instant.
func (d *Draft) Fail(err error) {
	if d.state != DraftSubmitting {
		return
	}
	d.state = DraftFailed
	d.lastErr = err
}
