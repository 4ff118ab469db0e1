package apperr

import "errors"

// Kind classifies every failure surfaced to a caller. Client-detected kinds
// (validation, illegal transition) are raised before any network call.
type Kind string

const (
	KindValidation        Kind = "VALIDATION_ERROR"
	KindIllegalTransition Kind = "ILLEGAL_TRANSITION"
	KindServerRejected    Kind = "SERVER_REJECTED"
	KindNetworkFailure    Kind = "NETWORK_FAILURE"
	KindPermissionDenied  Kind = "PERMISSION_DENIED"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return string(e.Kind) + ": " + e.Message
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind carried by err, or "" for unclassified errors.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// MessageOf returns the human-readable message, falling back to Error().
func MessageOf(err error) string {
	var ae *Error
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
