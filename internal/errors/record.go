package errors

import "errors"

// NotFoundError is produced when OMDb answers with a failing Response flag.
// Message carries the API's own explanation, e.g. "Movie not found!".
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message == "" {
		return "record not found"
	}
	return "record not found: " + e.Message
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

// IsNotFoundError reports whether err is a NotFoundError (even when wrapped).
func IsNotFoundError(err error) bool {
	var nfErr *NotFoundError
	return errors.As(err, &nfErr)
}

// MissingIdentifierError means a successful record carried no imdbID.
type MissingIdentifierError struct{}

func (e *MissingIdentifierError) Error() string {
	return "record has no identifier"
}

// NewMissingIdentifierError creates a MissingIdentifierError.
func NewMissingIdentifierError() *MissingIdentifierError {
	return &MissingIdentifierError{}
}

// IsMissingIdentifierError reports whether err is a MissingIdentifierError (even when wrapped).
func IsMissingIdentifierError(err error) bool {
	var miErr *MissingIdentifierError
	return errors.As(err, &miErr)
}
