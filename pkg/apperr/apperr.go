package apperr

import "errors"

// Failure taxonomy shared by services and the HTTP layer. Services wrap
// these with fmt.Errorf("%w: ...") and handlers map them with errors.Is.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrUnauthorized    = errors.New("operation not permitted")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("order is not available")
	ErrInvalid         = errors.New("invalid request")
	ErrStorage         = errors.New("storage failure")
)
