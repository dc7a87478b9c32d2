package client

import (
	"errors"
	"fmt"
)

// Kind classifies client failures so callers can react to the failure mode
// instead of matching on message text.
type Kind string

// Failure kinds reported by the client.
const (
	// KindNetwork covers connection and transport failures.
	KindNetwork Kind = "network"

	// KindTimeout covers deadline expiry: the configured client timeout or
	// a context deadline, kept distinct from generic network failures.
	KindTimeout Kind = "timeout"

	// KindHTTPStatus covers responses with a status outside the 2xx range.
	KindHTTPStatus Kind = "http_status"

	// KindDecode covers response bodies that are not valid JSON.
	KindDecode Kind = "decode"

	// KindShape covers decoded JSON missing the structure an operation
	// requires.
	KindShape Kind = "shape"
)

// Error is a classified client failure.
type Error struct {
	// Kind is the failure class.
	Kind Kind

	// Message is a human-readable description of the failure.
	Message string

	// Status is the HTTP status code for KindHTTPStatus failures, zero
	// otherwise.
	Status int

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is and errors.As chains.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsKind reports whether err is a client Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var clientErr *Error
	return errors.As(err, &clientErr) && clientErr.Kind == kind
}
