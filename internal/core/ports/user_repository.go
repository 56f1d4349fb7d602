package ports

import (
	"context"

	"github.com/galeria/admin-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Email is unique; Create and Update return domain.ErrUserExists on conflict.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
