package ports

import (
	"context"

	"github.com/galeria/admin-api/internal/core/domain"
)

// ActivityRepository defines persistence operations for activities.
type ActivityRepository interface {
	Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error)
	FindByID(ctx context.Context, id string) (*domain.Activity, error)
	List(ctx context.Context) ([]*domain.Activity, error)
	Update(ctx context.Context, a *domain.Activity) (*domain.Activity, error)
	Delete(ctx context.Context, id string) error
}
