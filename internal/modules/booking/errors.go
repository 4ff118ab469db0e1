package booking

import "servicehub/internal/pkg/apperr"

var (
	// Time window rule failures.
	ErrMissingField = apperr.New(apperr.KindValidation, "please select both date and time")
	ErrPastInstant  = apperr.New(apperr.KindValidation, "please select a future date and time")
	ErrOutsideHours = apperr.New(apperr.KindValidation, "booking time must be between 8:00 AM and 5:00 PM")

	// Draft machine / submission failures.
	ErrNotSubmittable = apperr.New(apperr.KindValidation, "booking draft is not ready to submit")

	// Status transition failures.
	ErrIllegalTransition    = apperr.New(apperr.KindIllegalTransition, "this status change is not allowed")
	ErrConfirmationRequired = apperr.New(apperr.KindValidation, "this override must be confirmed first")
)
