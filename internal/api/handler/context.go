package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/visapro/visapro-api/internal/api/middleware"
	"github.com/visapro/visapro-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Authenticate middleware
// and fast-fails before any service call when it is absent. Absence means a
// route was wired without the middleware, which is a server bug, but the
// caller still gets a clean 401 rather than a panic.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	ident, ok := middleware.Identity(c)
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication identity")
	}
	return ident, nil
}
