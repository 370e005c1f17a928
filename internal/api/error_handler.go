package api

import (
	"errors"
	"fmt"
	"net/http"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/doctors-portal/portal-server/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Reports server-side failures to Sentry when the request carries a hub.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if code >= http.StatusInternalServerError {
			if hub := sentryecho.GetHubFromContext(c); hub != nil {
				hub.CaptureException(err)
			}
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, body limit, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrAppointmentNotFound):
		return http.StatusNotFound, domain.ErrAppointmentNotFound.Error()
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest, domain.ErrInvalidID.Error()
	case errors.Is(err, domain.ErrInvalidDate):
		return http.StatusBadRequest, domain.ErrInvalidDate.Error()
	case errors.Is(err, domain.ErrInvalidPrice):
		return http.StatusBadRequest, domain.ErrInvalidPrice.Error()
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, domain.ErrForbidden.Error()
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, domain.ErrUserExists.Error()
	case errors.Is(err, domain.ErrIdempotencyMismatch):
		return http.StatusConflict, domain.ErrIdempotencyMismatch.Error()
	case errors.Is(err, domain.ErrPaymentFailed):
		log.Warn().Err(err).Str("path", c.Path()).Msg("payment provider error")
		return http.StatusBadGateway, domain.ErrPaymentFailed.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
