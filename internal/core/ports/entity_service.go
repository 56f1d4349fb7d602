package ports

import (
	"context"
	"io"

	"github.com/galeria/admin-api/internal/core/domain"
)

// UpdateUserInput carries a partial user update. Nil fields are left as they are.
// A nil or blank Password means "keep the current password".
type UpdateUserInput struct {
	Name                 *string
	Email                *string
	Role                 *string
	Password             *string
	PasswordConfirmation *string
}

type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

// ActivityInput carries activity fields for create and full update.
type ActivityInput struct {
	Title       string
	Description string
	Date        string
	Site        string
}

type ActivityService interface {
	List(ctx context.Context) ([]*domain.Activity, error)
	Get(ctx context.Context, id string) (*domain.Activity, error)
	Create(ctx context.Context, in ActivityInput) (*domain.Activity, error)
	Update(ctx context.Context, id string, in ActivityInput) (*domain.Activity, error)
	Delete(ctx context.Context, id string) error
}

// GalleryInput carries gallery fields for create and full update.
type GalleryInput struct {
	Title string
	Date  string
	Site  string
}

type GalleryService interface {
	List(ctx context.Context) ([]*domain.Gallery, error)
	Get(ctx context.Context, id string) (*domain.Gallery, error)
	Create(ctx context.Context, in GalleryInput) (*domain.Gallery, error)
	Update(ctx context.Context, id string, in GalleryInput) (*domain.Gallery, error)
	Delete(ctx context.Context, id string) error
}

// UploadPhotoInput carries one uploaded image.
type UploadPhotoInput struct {
	GalleryID string
	Title     string
	Filename  string
	Size      int64
	Content   io.Reader
}

// UpdatePhotoInput carries a partial photo update.
type UpdatePhotoInput struct {
	Title     *string
	GalleryID *string
}

type PhotoService interface {
	List(ctx context.Context, galleryID string) ([]*domain.Photo, error)
	Get(ctx context.Context, id string) (*domain.Photo, error)
	Upload(ctx context.Context, in UploadPhotoInput) (*domain.Photo, error)
	Update(ctx context.Context, id string, in UpdatePhotoInput) (*domain.Photo, error)
	Delete(ctx context.Context, id string) error
}
