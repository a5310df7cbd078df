package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a comment submission was rejected.
type ErrorKind string

const (
	KindMissingBody   ErrorKind = "missing_body"
	KindMissingFields ErrorKind = "missing_fields"
	KindInvalidEmail  ErrorKind = "invalid_email"
	KindInvalidFormat ErrorKind = "invalid_format"
)

// Client-facing messages, one per ErrorKind.
const (
	MsgMissingBody   = "Request body is missing"
	MsgMissingFields = "Name, email, and comment are required fields"
	MsgInvalidEmail  = "You missed something, Lets try again"
	MsgInvalidFormat = "Invalid request format"
)

// SubmitError is returned when a comment submission is rejected.
// Cause is kept for server-side logging and never reaches the client.
type SubmitError struct {
	Kind  ErrorKind
	Cause error
}

func (e *SubmitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
	}
	return string(e.Kind)
}

func (e *SubmitError) Unwrap() error {
	return e.Cause
}

// Message returns the fixed human-readable message for the error kind.
func (e *SubmitError) Message() string {
	return MessageFor(e.Kind)
}

// MessageFor maps an ErrorKind to its client-facing message.
// Unknown kinds fall back to the generic invalid format message.
func MessageFor(kind ErrorKind) string {
	switch kind {
	case KindMissingBody:
		return MsgMissingBody
	case KindMissingFields:
		return MsgMissingFields
	case KindInvalidEmail:
		return MsgInvalidEmail
	default:
		return MsgInvalidFormat
	}
}

// NewSubmitError creates a SubmitError of the given kind without a cause.
func NewSubmitError(kind ErrorKind) *SubmitError {
	return &SubmitError{Kind: kind}
}

// InvalidFormat wraps an arbitrary failure as the catch-all submission error.
func InvalidFormat(cause error) *SubmitError {
	return &SubmitError{Kind: KindInvalidFormat, Cause: cause}
}

// AsSubmitError converts any error into a SubmitError. Errors that are not
// already a SubmitError become KindInvalidFormat with err as the cause.
func AsSubmitError(err error) *SubmitError {
	if err == nil {
		return nil
	}
	var se *SubmitError
	if errors.As(err, &se) {
		return se
	}
	return InvalidFormat(err)
}
