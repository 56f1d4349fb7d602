package ports

import (
	"context"
	"time"

	"github.com/galeria/admin-api/internal/core/domain"
)

// RegisterInput carries the data needed to create an account.
type RegisterInput struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
	Role                 string
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	AccessToken string
	ExpiresIn   time.Duration
	User        *domain.User
}

// LoginLimiter throttles repeated login attempts per key.
type LoginLimiter interface {
	// Hit records an attempt and reports whether it is still allowed.
	Hit(ctx context.Context, key string) (bool, error)
	Reset(ctx context.Context, key string) error
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
	EnsureAdmin(ctx context.Context, name, email, password string) error
}
