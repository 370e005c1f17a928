package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/doctors-portal/portal-server/internal/core/domain"
)

func TestHTTPErrorHandler_MapsDomainErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"not found", fmt.Errorf("get: %w", domain.ErrAppointmentNotFound), http.StatusNotFound, "appointment not found"},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest, "invalid identifier"},
		{"invalid date", fmt.Errorf("list appointments: %w", domain.ErrInvalidDate), http.StatusBadRequest, "invalid date"},
		{"invalid price", domain.ErrInvalidPrice, http.StatusBadRequest, "price must be greater than zero"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "you do not have access to make admin"},
		{"duplicate user", domain.ErrUserExists, http.StatusConflict, "user already exists"},
		{"reused idempotency key", fmt.Errorf("create intent: %w", domain.ErrIdempotencyMismatch), http.StatusConflict, "idempotency key was already used for a different amount"},
		{"payment", fmt.Errorf("create payment intent: %w: card declined", domain.ErrPaymentFailed), http.StatusBadGateway, "payment provider error"},
		{"echo error", echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"), http.StatusRequestEntityTooLarge, "Request Entity Too Large"},
		{"unexpected", errors.New("socket closed"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			NewHTTPErrorHandler(zerolog.Nop())(tt.err, c)

			if rec.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, rec.Code)
			}
			if want := `{"error":"` + tt.msg + `"}`; strings.TrimSpace(rec.Body.String()) != want {
				t.Fatalf("expected %s, got %s", want, rec.Body.String())
			}
		})
	}
}

func TestHTTPErrorHandler_SkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = c.String(http.StatusOK, "done")

	NewHTTPErrorHandler(zerolog.Nop())(errors.New("late"), c)

	if rec.Code != http.StatusOK || rec.Body.String() != "done" {
		t.Fatalf("committed response was modified: %d %s", rec.Code, rec.Body.String())
	}
}
