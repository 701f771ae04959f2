package http

import (
	"errors"
	"net/http"

	"maya-nlp/internal/nlp"
	"maya-nlp/pkg/response"
)

// mapError translates use-case errors into HTTP errors. It returns nil for
// errors that must be reported as internal.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, nlp.ErrInvalidInput):
		return response.NewHTTPError(http.StatusBadRequest, nlp.ErrInvalidInput.Error())
	case errors.Is(err, nlp.ErrUnknownBackend):
		return response.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, nlp.ErrBackendUnavailable):
		return response.NewHTTPError(http.StatusServiceUnavailable, nlp.ErrBackendUnavailable.Error())
	default:
		return nil
	}
}
