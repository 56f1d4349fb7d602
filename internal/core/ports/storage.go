package ports

import (
	"context"
	"io"
)

// PhotoStorage persists uploaded image files.
type PhotoStorage interface {
	// Put stores the content under a fresh name derived from filename and
	// returns the location clients use to fetch it.
	Put(ctx context.Context, filename, contentType string, r io.Reader, size int64) (string, error)
	// Delete removes the file served at location. Missing files are not an error.
	Delete(ctx context.Context, location string) error
}

// BlobCleaner schedules asynchronous removal of stored files.
type BlobCleaner interface {
	Enqueue(job CleanupJob)
	EnqueueBatch(jobs []CleanupJob)
}

// CleanupJob identifies one stored file to remove.
type CleanupJob struct {
	GalleryID string
	Location  string
}
