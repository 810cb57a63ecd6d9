package errors

import "errors"

// This package defines a centralized set of sentinel errors for the application.
// Packages wrap these with fmt.Errorf("%w: ...") so callers can check them with
// errors.Is, and the API layer maps them to HTTP status codes in one place.

var (
	// ErrNotFound signifies that a requested resource could not be located.
	// This is typically mapped to a 404 Not Found HTTP status.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that input data provided by a client failed
	// validation: a blank message, an out-of-range option, a malformed quiz.
	// This is typically mapped to a 400 Bad Request HTTP status.
	ErrValidation = errors.New("validation failed")

	// ErrConflict signifies that an operation is not allowed in the current
	// state of a resource, e.g. submitting while a reply is still streaming.
	// This is typically mapped to a 409 Conflict HTTP status.
	ErrConflict = errors.New("resource conflict")

	// ErrInternal signifies an unexpected error on the server. This is a generic
	// error used to prevent leaking sensitive implementation details to the client.
	// This is typically mapped to a 500 Internal Server Error HTTP status.
	ErrInternal = errors.New("internal server error")
)
