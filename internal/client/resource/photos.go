package resource

import (
	"context"
	"errors"
	"net/url"

	"github.com/galeria/admin-api/internal/client/apiclient"
)

// PhotoFileField is the multipart field carrying the image.
const PhotoFileField = "location"

// PhotoFields creates or edits a photo. File is only used on create.
type PhotoFields struct {
	GalleryID string
	Title     string
	File      *File
}

type Photos struct {
	*Resource[Photo, PhotoFields]
}

func NewPhotos(client *apiclient.Client) *Photos {
	return &Photos{New[Photo](client, Endpoint[PhotoFields]{
		Path:       "/photos",
		Single:     "photo",
		Plural:     "photos",
		CreateBody: photoForm,
		UpdateBody: func(f PhotoFields) (any, error) {
			body := map[string]string{}
			if f.Title != "" {
				body["title"] = f.Title
			}
			if f.GalleryID != "" {
				body["gallery_id"] = f.GalleryID
			}
			return body, nil
		},
	})}
}

// ListByGallery returns the photos of one gallery.
func (p *Photos) ListByGallery(ctx context.Context, galleryID string) ([]*Photo, error) {
	return p.list(ctx, url.Values{"gallery_id": {galleryID}})
}

func photoForm(f PhotoFields) (any, apiclient.ContentKind, error) {
	if f.File == nil {
		return nil, 0, errors.New("photo: file is required")
	}
	form := apiclient.NewMultipartForm().Set("gallery_id", f.GalleryID)
	if f.Title != "" {
		form.Set("title", f.Title)
	}
	form.AddFile(apiclient.FilePart{
		Field:       PhotoFileField,
		Filename:    f.File.Name,
		ContentType: f.File.ContentType,
		Data:        f.File.Data,
	})
	return form, apiclient.ContentMultipart, nil
}
