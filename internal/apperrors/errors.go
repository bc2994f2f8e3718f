package apperrors

import "errors"

// Kind classifies a domain error so the transport layer can map it to an
// HTTP status without inspecting message strings.
type Kind int

const (
	KindValidation Kind = iota + 1 // malformed or out-of-range input
	KindNotFound                   // referenced entity absent
	KindConflict                   // uniqueness violation
)

// Error is a domain error raised by the service layer (and, for constraint
// violations, by the store).
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// KindOf returns the kind of err if it is a domain error, or 0 for
// unexpected errors (storage/transport failures).
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return 0
}
