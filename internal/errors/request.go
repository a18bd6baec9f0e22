package errors

import (
	"errors"
	"fmt"
)

// RequestError means a request was rejected before anything was sent:
// an empty query or identifier, or an endpoint that does not form a valid URL.
type RequestError struct {
	Message string
}

func (e *RequestError) Error() string {
	return "invalid request: " + e.Message
}

// NewRequestError creates a RequestError with the given message.
func NewRequestError(message string) *RequestError {
	return &RequestError{Message: message}
}

// IsRequestError reports whether err is a RequestError (even when wrapped).
func IsRequestError(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr)
}

// TransportError covers network failures and non-2xx responses.
// StatusCode is zero when no response was received.
type TransportError struct {
	StatusCode int
	Cause      error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Cause != nil:
		return fmt.Sprintf("transport failure (HTTP %d): %v", e.StatusCode, e.Cause)
	case e.StatusCode != 0:
		return fmt.Sprintf("transport failure (HTTP %d)", e.StatusCode)
	case e.Cause != nil:
		return fmt.Sprintf("transport failure: %v", e.Cause)
	default:
		return "transport failure"
	}
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// NewTransportError creates a TransportError.
func NewTransportError(statusCode int, cause error) *TransportError {
	return &TransportError{StatusCode: statusCode, Cause: cause}
}

// IsTransportError reports whether err is a TransportError (even when wrapped).
func IsTransportError(err error) bool {
	var tErr *TransportError
	return errors.As(err, &tErr)
}

// DecodeError means the response body could not be decoded into the expected shape.
type DecodeError struct {
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response: %v", e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// NewDecodeError creates a DecodeError wrapping cause.
func NewDecodeError(cause error) *DecodeError {
	return &DecodeError{Cause: cause}
}

// IsDecodeError reports whether err is a DecodeError (even when wrapped).
func IsDecodeError(err error) bool {
	var dErr *DecodeError
	return errors.As(err, &dErr)
}
