// Package httpx provides HTTP response utilities.
package httpx

import (
	"errors"
	"net/http"
)

// Sentinel errors for domain layer.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrDuplicate    = errors.New("duplicate entry")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUpstream     = errors.New("upstream request failed")
	ErrConfig       = errors.New("service not configured")
)

// RespondError maps domain errors to HTTP status codes. Duplicate entries
// answer 400 rather than 409 to keep the public contract stable for the
// storefront client.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrDuplicate):
		Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrValidation):
		Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUnauthorized):
		Error(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrUpstream), errors.Is(err, ErrConfig):
		Error(w, http.StatusInternalServerError, err.Error())
	default:
		Error(w, http.StatusInternalServerError, "internal server error")
	}
}
