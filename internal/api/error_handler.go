package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/galeria/admin-api/internal/core/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

// errorStatus maps a domain error to its status. When wrapped is set the full
// wrapped message is returned, otherwise only the sentinel text.
type errorStatus struct {
	err     error
	code    int
	wrapped bool
}

var errorStatuses = []errorStatus{
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, false},
	{domain.ErrForbidden, http.StatusForbidden, false},
	{domain.ErrUserNotFound, http.StatusNotFound, false},
	{domain.ErrActivityNotFound, http.StatusNotFound, false},
	{domain.ErrGalleryNotFound, http.StatusNotFound, false},
	{domain.ErrPhotoNotFound, http.StatusNotFound, false},
	{domain.ErrUserExists, http.StatusConflict, false},
	{domain.ErrInvalidInput, http.StatusUnprocessableEntity, true},
	{domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge, false},
	{domain.ErrUnsupportedMedia, http.StatusUnsupportedMediaType, true},
	{domain.ErrTooManyAttempts, http.StatusTooManyRequests, false},
}

// NewHTTPErrorHandler renders every error as {"error": "<message>"}. Domain
// errors get their mapped status; anything unknown is logged and becomes a
// generic 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := statusOf(err)
		if code == http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Msg("unhandled error")
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func statusOf(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprint(he.Message)
	}
	for _, s := range errorStatuses {
		if errors.Is(err, s.err) {
			if s.wrapped {
				return s.code, err.Error()
			}
			return s.code, s.err.Error()
		}
	}
	return http.StatusInternalServerError, "internal server error"
}
