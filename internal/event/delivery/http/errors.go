package http

import (
	"errors"
	"net/http"

	"event-calendar/internal/event"
	"event-calendar/internal/event/repository"
	pkgErrors "event-calendar/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var te *repository.TransportError
	switch {
	case errors.Is(err, event.ErrEventNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Event not found")
	case errors.As(err, &te):
		if te.Message == "" {
			return pkgErrors.ErrBadGateway
		}
		return pkgErrors.NewHTTPError(http.StatusBadGateway, te.Message)
	case errors.Is(err, event.ErrInvalidID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid event id")
	case errors.Is(err, event.ErrSubmissionInFlight):
		return pkgErrors.NewHTTPError(http.StatusConflict, "a submission is already in progress")
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// statusOf is the HTTP status of err after mapping.
func (h *handler) statusOf(err error) int {
	var httpErr *pkgErrors.HTTPError
	if errors.As(h.mapError(err), &httpErr) {
		return httpErr.StatusCode()
	}
	return http.StatusInternalServerError
}
