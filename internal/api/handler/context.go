package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/galeria/admin-api/internal/api/middleware"
)

// ctxUserID returns the account id the Auth middleware extracted from the
// token. An empty id means the route was mounted without the middleware.
func ctxUserID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.UserIDKey).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
