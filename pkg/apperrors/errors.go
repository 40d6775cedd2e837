// Package apperrors defines the error kinds the resolver layer is allowed to
// surface. Resolvers never recover; they classify and rethrow.
package apperrors

import "errors"

var (
	// ErrAuthenticationRequired means no identity was attached to the request.
	ErrAuthenticationRequired = errors.New("authentication required")

	// ErrAuthorizationDenied means an identity was present but its role is
	// insufficient for the requested field.
	ErrAuthorizationDenied = errors.New("admin access required")

	// ErrNotFound means the requested row does not exist.
	ErrNotFound = errors.New("not found")
)

// ServerError wraps an unexpected data-store failure. The cause stays
// available for logging; callers present only the generic message.
type ServerError struct {
	cause error
}

func Server(cause error) *ServerError {
	return &ServerError{cause: cause}
}

func (e *ServerError) Error() string {
	return "internal server error"
}

func (e *ServerError) Unwrap() error {
	return e.cause
}

// Code maps an error to its protocol-level extension code.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrAuthenticationRequired):
		return "UNAUTHENTICATED"
	case errors.Is(err, ErrAuthorizationDenied):
		return "FORBIDDEN"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}
