package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/visapro/visapro-api/internal/api/metrics"
	"github.com/visapro/visapro-api/internal/core/domain"
	"github.com/visapro/visapro-api/internal/core/service"
)

// identityKey is the echo context key the resolved identity is stored under.
const identityKey = "identity"

// Authenticate resolves the bearer credential through the auth gate and
// injects the identity into the request context. Requests without a valid
// credential never reach the handler.
func Authenticate(gate *service.AuthGate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident, err := gate.Authenticate(c.Request().Context(), bearerToken(c))
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues(failureReason(err)).Inc()
				return err
			}
			c.Set(identityKey, ident)
			return next(c)
		}
	}
}

// RequireRoles gates the route to the given roles. It must run after
// Authenticate.
func RequireRoles(gate *service.AuthGate, roles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident, ok := Identity(c)
			if !ok {
				metrics.AuthFailuresTotal.WithLabelValues(failureReason(domain.ErrMissingCredential)).Inc()
				return domain.ErrMissingCredential
			}
			if err := gate.Authorize(ident, roles...); err != nil {
				metrics.AuthFailuresTotal.WithLabelValues(failureReason(err)).Inc()
				return err
			}
			return next(c)
		}
	}
}

// OptionalAuth attaches an identity when a valid credential is present and
// lets the request through anonymously otherwise. Used on routes that serve
// both guests and known users.
func OptionalAuth(gate *service.AuthGate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if ident, ok := gate.TryAuthenticate(c.Request().Context(), bearerToken(c)); ok {
				c.Set(identityKey, ident)
			}
			return next(c)
		}
	}
}

// Identity returns the identity stored by Authenticate or OptionalAuth.
func Identity(c echo.Context) (domain.Identity, bool) {
	ident, ok := c.Get(identityKey).(domain.Identity)
	return ident, ok
}

// bearerToken extracts the token from the Authorization header. Anything
// other than a well-formed "Bearer <token>" yields the empty credential,
// which the gate reports as missing.
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingCredential):
		return "missing_credential"
	case errors.Is(err, domain.ErrInvalidCredential):
		return "invalid_credential"
	case errors.Is(err, domain.ErrUnknownSubject):
		return "unknown_subject"
	case errors.Is(err, domain.ErrAccountDeleted):
		return "account_deleted"
	case errors.Is(err, domain.ErrAccountBlocked):
		return "account_blocked"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	default:
		return "internal"
	}
}
