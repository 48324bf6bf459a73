package emailgen

import (
	"errors"
	"fmt"
)

// ErrEmptyEmail is reported when the service answers 2xx without an email.
var ErrEmptyEmail = errors.New("generation service returned an empty email")

// TransportError means the request never produced an HTTP response
// (DNS, connection refused, reset, context cancellation).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("generation request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServiceError means the service answered but not with a usable email.
// Detail carries the service's own explanation when it sent one.
type ServiceError struct {
	Status int
	Detail string
	Err    error
}

func (e *ServiceError) Error() string {
	switch {
	case e.Detail != "":
		return fmt.Sprintf("generation service error (%d): %s", e.Status, e.Detail)
	case e.Err != nil:
		return fmt.Sprintf("generation service error (%d): %v", e.Status, e.Err)
	default:
		return fmt.Sprintf("generation service error (%d)", e.Status)
	}
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
