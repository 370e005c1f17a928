package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/doctors-portal/portal-server/internal/api/middleware"
	"github.com/doctors-portal/portal-server/internal/core/domain"
)

// requester returns the identity attached by middleware.VerifyToken. Routes
// mounted without the middleware see an anonymous requester.
func requester(c echo.Context) domain.Identity {
	if id, ok := c.Get(middleware.IdentityKey).(domain.Identity); ok {
		return id
	}
	return domain.Anonymous()
}
