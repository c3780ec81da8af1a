package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/visapro/visapro-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes. Authentication
	// failures are 401, authorization and account-state refusals 403.
	switch {
	case errors.Is(err, domain.ErrMissingCredential),
		errors.Is(err, domain.ErrInvalidCredential),
		errors.Is(err, domain.ErrUnknownSubject),
		errors.Is(err, domain.ErrAccountDeleted),
		errors.Is(err, domain.ErrPasswordChanged):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrInvalidLogin):
		return http.StatusUnauthorized, "invalid email or password"
	case errors.Is(err, domain.ErrAccountBlocked),
		errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "user already exists"
	case errors.Is(err, domain.ErrSlugConflict):
		return http.StatusConflict, "slug already in use"
	case errors.Is(err, domain.ErrResetTokenBad),
		errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCountryNotFound),
		errors.Is(err, domain.ErrHotelNotFound),
		errors.Is(err, domain.ErrTourNotFound),
		errors.Is(err, domain.ErrPackageNotFound),
		errors.Is(err, domain.ErrVisaCategoryNotFound),
		errors.Is(err, domain.ErrVisaDocumentNotFound):
		return http.StatusNotFound, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
