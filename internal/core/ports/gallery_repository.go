package ports

import (
	"context"

	"github.com/galeria/admin-api/internal/core/domain"
)

// GalleryRepository defines persistence operations for galleries.
// Returned galleries never carry photos; the service attaches them.
type GalleryRepository interface {
	Create(ctx context.Context, g *domain.Gallery) (*domain.Gallery, error)
	FindByID(ctx context.Context, id string) (*domain.Gallery, error)
	List(ctx context.Context) ([]*domain.Gallery, error)
	Update(ctx context.Context, g *domain.Gallery) (*domain.Gallery, error)
	Delete(ctx context.Context, id string) error
}

// PhotoRepository defines persistence operations for photos.
type PhotoRepository interface {
	Create(ctx context.Context, p *domain.Photo) (*domain.Photo, error)
	FindByID(ctx context.Context, id string) (*domain.Photo, error)
	// List returns all photos, or only those of galleryID when it is non-empty.
	List(ctx context.Context, galleryID string) ([]*domain.Photo, error)
	Update(ctx context.Context, p *domain.Photo) (*domain.Photo, error)
	Delete(ctx context.Context, id string) error
	// DeleteByGallery removes every photo of a gallery and returns what was removed.
	DeleteByGallery(ctx context.Context, galleryID string) ([]*domain.Photo, error)
}
