package resource

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/galeria/admin-api/internal/client/apiclient"
)

type GalleryFields struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Site  string `json:"site"`
}

type Galleries struct {
	*Resource[Gallery, GalleryFields]
	photos *Photos
}

func NewGalleries(client *apiclient.Client, photos *Photos) *Galleries {
	return &Galleries{
		Resource: New[Gallery](client, Endpoint[GalleryFields]{
			Path:   "/galleries",
			Single: "gallery",
			Plural: "galleries",
		}),
		photos: photos,
	}
}

// UploadError reports the uploads of a batch that failed. Uploads that
// succeeded are kept.
type UploadError struct {
	Failed int
	Total  int
	Err    error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("%d of %d uploads failed: %v", e.Failed, e.Total, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// UploadImages uploads files into the gallery concurrently and waits for all
// of them. It returns the photos that were created; if any upload failed the
// error is an *UploadError joining every failure.
func (g *Galleries) UploadImages(ctx context.Context, galleryID string, files []File) ([]*Photo, error) {
	created := make([]*Photo, len(files))
	errs := make([]error, len(files))

	var eg errgroup.Group
	for i := range files {
		i := i
		eg.Go(func() error {
			p, err := g.photos.Create(ctx, PhotoFields{GalleryID: galleryID, File: &files[i]})
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", files[i].Name, err)
				return errs[i]
			}
			created[i] = p
			return nil
		})
	}
	_ = eg.Wait()

	photos := make([]*Photo, 0, len(files))
	failed := 0
	for i, p := range created {
		if errs[i] != nil {
			failed++
			continue
		}
		photos = append(photos, p)
	}
	if failed > 0 {
		return photos, &UploadError{Failed: failed, Total: len(files), Err: errors.Join(errs...)}
	}
	return photos, nil
}

// CreateWithImages creates a gallery and then uploads files into it. The two
// steps are independent: when uploading fails the created gallery is still
// returned along with the error.
func (g *Galleries) CreateWithImages(ctx context.Context, fields GalleryFields, files []File) (*Gallery, error) {
	gallery, err := g.Create(ctx, fields)
	if err != nil {
		return nil, err
	}
	photos, err := g.UploadImages(ctx, gallery.ID, files)
	gallery.Photos = append(gallery.Photos, photos...)
	return gallery, err
}
