package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/galeria/admin-api/internal/core/domain"
)

// Context keys set by Auth.
const (
	UserIDKey = "user_id"
	EmailKey  = "email"
	RoleKey   = "role"
	UserKey   = "user"
)

type accessClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

var tokenParser = jwt.NewParser(
	jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	jwt.WithExpirationRequired(),
)

// Auth accepts requests carrying a valid HS256 bearer token and stores its
// subject, email and role on the context.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	secret := []byte(jwtSecret)
	keyFunc := func(*jwt.Token) (any, error) { return secret, nil }

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing or malformed bearer token")
			}

			var claims accessClaims
			if _, err := tokenParser.ParseWithClaims(raw, &claims, keyFunc); err != nil || claims.Subject == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(UserIDKey, claims.Subject)
			c.Set(EmailKey, claims.Email)
			c.Set(RoleKey, claims.Role)
			return next(c)
		}
	}
}

// UserResolver looks up the account a token was issued for.
type UserResolver interface {
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}

// LoadUser reloads the token's account on every request and replaces the
// email and role taken from the claims with the stored ones. It must run
// after Auth. Tokens of deleted accounts get a 401.
func LoadUser(users UserResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, _ := c.Get(UserIDKey).(string)
			user, err := users.CurrentUser(c.Request().Context(), id)
			if errors.Is(err, domain.ErrInvalidCredentials) {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}
			if err != nil {
				return err
			}

			c.Set(UserKey, user)
			c.Set(EmailKey, user.Email)
			c.Set(RoleKey, user.Role)
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
