package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/visapro/visapro-api/internal/core/domain"
)

func handleErr(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrMissingCredential, http.StatusUnauthorized},
		{domain.ErrInvalidCredential, http.StatusUnauthorized},
		{domain.ErrUnknownSubject, http.StatusUnauthorized},
		{domain.ErrAccountDeleted, http.StatusUnauthorized},
		{domain.ErrPasswordChanged, http.StatusUnauthorized},
		{domain.ErrInvalidLogin, http.StatusUnauthorized},
		{domain.ErrAccountBlocked, http.StatusForbidden},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrUserExists, http.StatusConflict},
		{domain.ErrSlugConflict, http.StatusConflict},
		{domain.ErrResetTokenBad, http.StatusBadRequest},
		{domain.ErrInvalidRole, http.StatusBadRequest},
		{domain.ErrCountryNotFound, http.StatusNotFound},
		{domain.ErrVisaDocumentNotFound, http.StatusNotFound},
	}

	for _, tc := range cases {
		rec := handleErr(t, tc.err)
		if rec.Code != tc.code {
			t.Errorf("%v: expected status %d, got %d", tc.err, tc.code, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"error"`) {
			t.Errorf("%v: missing error envelope: %s", tc.err, rec.Body.String())
		}
	}
}

func TestErrorHandler_WrappedErrorsStillMap(t *testing.T) {
	wrapped := errors.Join(errors.New("find country"), domain.ErrCountryNotFound)
	rec := handleErr(t, wrapped)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for wrapped not-found, got %d", rec.Code)
	}
}

func TestErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	rec := handleErr(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid payload") {
		t.Fatalf("expected message passthrough, got %s", rec.Body.String())
	}
}

func TestErrorHandler_UnknownErrorIsGeneric(t *testing.T) {
	rec := handleErr(t, errors.New("cursor exhausted"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "cursor") {
		t.Fatalf("internal detail leaked to client: %s", rec.Body.String())
	}
}
