// Package storage implements ports.PhotoStorage on the local filesystem and on
// S3-compatible object stores.
package storage

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var extensionByType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// objectName returns a fresh collision-free name. The extension follows the
// sniffed content type; the client's filename only serves as a fallback.
func objectName(filename, contentType string) string {
	ext, ok := extensionByType[contentType]
	if !ok {
		ext = strings.ToLower(filepath.Ext(filename))
	}
	return uuid.NewString() + ext
}
