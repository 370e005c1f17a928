package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/doctors-portal/portal-server/internal/api/metrics"
	"github.com/doctors-portal/portal-server/internal/core/domain"
	"github.com/doctors-portal/portal-server/internal/core/ports"
)

// IdentityKey is the echo context key holding the request's domain.Identity.
const IdentityKey = "identity"

// VerifyToken attaches the bearer token's verified email to the request as a
// domain.Identity. It never rejects a request: a missing, malformed or
// unverifiable token leaves the request anonymous.
func VerifyToken(verifier ports.TokenVerifier, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(IdentityKey, resolveIdentity(c, verifier, log))
			return next(c)
		}
	}
}

func resolveIdentity(c echo.Context, verifier ports.TokenVerifier, log zerolog.Logger) domain.Identity {
	token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
	if !ok {
		metrics.IdentityVerificationsTotal.WithLabelValues("absent").Inc()
		return domain.Anonymous()
	}

	email, err := verifier.VerifyEmail(c.Request().Context(), token)
	if err != nil {
		metrics.IdentityVerificationsTotal.WithLabelValues("failed").Inc()
		log.Debug().Err(err).Str("path", c.Path()).Msg("token verification failed")
		return domain.Anonymous()
	}

	metrics.IdentityVerificationsTotal.WithLabelValues("verified").Inc()
	return domain.Verified(email)
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
