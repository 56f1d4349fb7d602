package middleware

import (
	"slices"

	"github.com/labstack/echo/v4"

	"github.com/galeria/admin-api/internal/core/domain"
)

// RequireRole lets the request through only when the role stored by Auth is
// one of roles. Other requests fail with domain.ErrForbidden.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(RoleKey).(string)
			if !slices.Contains(roles, role) {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
