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

	"github.com/galeria/admin-api/internal/core/domain"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{fmt.Errorf("login: %w", domain.ErrInvalidCredentials), http.StatusUnauthorized, "invalid credentials"},
		{fmt.Errorf("get: %w", domain.ErrGalleryNotFound), http.StatusNotFound, "gallery not found"},
		{fmt.Errorf("%w: title is required", domain.ErrInvalidInput), http.StatusUnprocessableEntity, "invalid input: title is required"},
		{domain.ErrTooManyAttempts, http.StatusTooManyRequests, "too many login attempts"},
		{echo.NewHTTPError(http.StatusBadRequest, "bad body"), http.StatusBadRequest, "bad body"},
		{errors.New("disk on fire"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tc := range cases {
		code, msg := statusOf(tc.err)
		if code != tc.code || msg != tc.msg {
			t.Errorf("statusOf(%v) = %d %q, want %d %q", tc.err, code, msg, tc.code, tc.msg)
		}
	}
}

func TestHTTPErrorHandler_HeadHasNoBody(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodHead, "/api/users/1", nil), rec)

	NewHTTPErrorHandler(zerolog.Nop())(domain.ErrUserNotFound, c)
	if rec.Code != http.StatusNotFound || rec.Body.Len() != 0 {
		t.Fatalf("expected bare 404, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestHTTPErrorHandler_HidesInternalErrors(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/users", nil), rec)

	NewHTTPErrorHandler(zerolog.Nop())(errors.New("mongo: connection reset"), c)
	if rec.Code != http.StatusInternalServerError || strings.Contains(rec.Body.String(), "mongo") {
		t.Fatalf("leaked internal error: %d %s", rec.Code, rec.Body.String())
	}
}
