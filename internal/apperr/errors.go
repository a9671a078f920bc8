// Package apperr holds the error kinds shared by every feature package.
// Adapters wrap them with fmt.Errorf("%s: %w", msg, ErrX) and handlers map
// them to HTTP statuses with HTTPStatus.
package apperr

import (
	"errors"
	"net/http"
)

var (
	// ErrValidation marks bad or empty user input.
	ErrValidation = errors.New("validation error")

	// ErrFetch marks a transcript retrieval failure.
	ErrFetch = errors.New("fetch error")

	// ErrParse marks a completion response that is not well-formed.
	ErrParse = errors.New("parse error")

	// ErrConflict marks a duplicate content set or waitlist entry.
	ErrConflict = errors.New("conflict")

	// ErrStore marks a persistence failure.
	ErrStore = errors.New("store error")

	// ErrAuth marks a missing or expired session.
	ErrAuth = errors.New("unauthorized")

	ErrNotFound = errors.New("not found")

	// ErrUpstream marks a completion endpoint failure that is not a parse problem.
	ErrUpstream = errors.New("upstream error")
)

func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrParse), errors.Is(err, ErrFetch), errors.Is(err, ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the text shown to the user. Store and unknown errors are
// replaced by a generic message so internals do not leak.
func Message(err error) string {
	switch HTTPStatus(err) {
	case http.StatusInternalServerError:
		return "internal server error"
	case http.StatusBadGateway:
		if errors.Is(err, ErrUpstream) {
			return "failed to generate content"
		}
	}
	return err.Error()
}
