// Package apperr defines the application error taxonomy and its single mapping
// to HTTP responses. Core packages return wrapped sentinels; handlers hand the
// error to Respond and never pick status codes themselves.
package apperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	// ErrValidation covers missing or blank required fields.
	ErrValidation = errors.New("validation failed")
	// ErrUnauthorized covers missing, malformed, invalid, or expired credentials.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden covers authenticated subjects the access policy rejects.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound covers updates/deletes that affected zero rows.
	ErrNotFound = errors.New("not found")
	// ErrConflict covers unique-key collisions (duplicate signup email).
	ErrConflict = errors.New("conflict")
	// ErrStore covers faults from the underlying database.
	ErrStore = errors.New("store error")
)

// Error pairs a taxonomy kind with a client-facing message. errors.Is against
// the sentinel still matches through Unwrap.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }
func (e *Error) Unwrap() error { return e.kind }

// E builds a taxonomy error carrying a specific message.
func E(kind error, msg string) error {
	return &Error{kind: kind, msg: msg}
}

// Status maps an error to its HTTP status code. Unrecognized errors are
// treated as store faults.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes the JSON error body for err and aborts the request. Store
// faults get a generic message so driver details never reach clients.
func Respond(c *gin.Context, err error) {
	status := Status(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "database error"
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
