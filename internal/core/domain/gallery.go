package domain

import (
	"errors"
	"time"
)

var (
	ErrGalleryNotFound  = errors.New("gallery not found")
	ErrPhotoNotFound    = errors.New("photo not found")
	ErrUnsupportedMedia = errors.New("unsupported media type")
	ErrFileTooLarge     = errors.New("file too large")
)

// Gallery groups photos taken at a site on a given date.
type Gallery struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Date      string    `json:"date"`
	Site      string    `json:"site"`
	Photos    []*Photo  `json:"photos"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Photo is a stored image belonging to exactly one gallery.
// Location is the URL (or URL path) the file is served from.
type Photo struct {
	ID        string    `json:"id"`
	GalleryID string    `json:"gallery_id"`
	Title     string    `json:"title"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AcceptedImageTypes lists the MIME types a photo upload may have.
var AcceptedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// IsAcceptedImageType reports whether contentType is an accepted photo type.
func IsAcceptedImageType(contentType string) bool {
	for _, t := range AcceptedImageTypes {
		if t == contentType {
			return true
		}
	}
	return false
}
