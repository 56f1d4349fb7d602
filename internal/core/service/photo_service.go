package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/galeria/admin-api/internal/core/domain"
	"github.com/galeria/admin-api/internal/core/ports"
)

const defaultMaxUploadBytes = 2 << 20

type photoService struct {
	photos    ports.PhotoRepository
	galleries ports.GalleryRepository
	storage   ports.PhotoStorage
	cleaner   ports.BlobCleaner
	maxBytes  int64
	log       zerolog.Logger
}

// NewPhotoService returns a PhotoService. maxBytes <= 0 selects the 2 MiB default.
func NewPhotoService(
	photos ports.PhotoRepository,
	galleries ports.GalleryRepository,
	storage ports.PhotoStorage,
	cleaner ports.BlobCleaner,
	maxBytes int64,
	log zerolog.Logger,
) ports.PhotoService {
	if maxBytes <= 0 {
		maxBytes = defaultMaxUploadBytes
	}
	return &photoService{
		photos:    photos,
		galleries: galleries,
		storage:   storage,
		cleaner:   cleaner,
		maxBytes:  maxBytes,
		log:       log,
	}
}

func (s *photoService) List(ctx context.Context, galleryID string) ([]*domain.Photo, error) {
	photos, err := s.photos.List(ctx, galleryID)
	if err != nil {
		return nil, err
	}
	return nonNil(photos), nil
}

func (s *photoService) Get(ctx context.Context, id string) (*domain.Photo, error) {
	return s.photos.FindByID(ctx, id)
}

// Upload validates and stores one image, then records it in its gallery.
// The content type is sniffed from the bytes; the client's claim is ignored.
func (s *photoService) Upload(ctx context.Context, in ports.UploadPhotoInput) (*domain.Photo, error) {
	if in.GalleryID == "" {
		return nil, fmt.Errorf("%w: gallery_id is required", domain.ErrInvalidInput)
	}
	if in.Size > s.maxBytes {
		return nil, domain.ErrFileTooLarge
	}
	if _, err := s.galleries.FindByID(ctx, in.GalleryID); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(in.Content, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, domain.ErrFileTooLarge
	}
	contentType := http.DetectContentType(data)
	if !domain.IsAcceptedImageType(contentType) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedMedia, contentType)
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(in.Filename), filepath.Ext(in.Filename))
	}

	location, err := s.storage.Put(ctx, in.Filename, contentType, bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("store photo: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.photos.Create(ctx, &domain.Photo{
		GalleryID: in.GalleryID,
		Title:     title,
		Location:  location,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		s.cleaner.Enqueue(ports.CleanupJob{GalleryID: in.GalleryID, Location: location})
		return nil, err
	}

	s.log.Info().
		Str("photo_id", created.ID).
		Str("gallery_id", in.GalleryID).
		Str("content_type", contentType).
		Int("bytes", len(data)).
		Msg("photo uploaded")
	return created, nil
}

func (s *photoService) Update(ctx context.Context, id string, in ports.UpdatePhotoInput) (*domain.Photo, error) {
	p, err := s.photos.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", domain.ErrInvalidInput)
		}
		p.Title = title
	}
	if in.GalleryID != nil && *in.GalleryID != p.GalleryID {
		if _, err := s.galleries.FindByID(ctx, *in.GalleryID); err != nil {
			return nil, err
		}
		p.GalleryID = *in.GalleryID
	}
	p.UpdatedAt = time.Now().UTC()
	return s.photos.Update(ctx, p)
}

func (s *photoService) Delete(ctx context.Context, id string) error {
	p, err := s.photos.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.photos.Delete(ctx, id); err != nil {
		return err
	}
	s.cleaner.Enqueue(ports.CleanupJob{GalleryID: p.GalleryID, Location: p.Location})
	s.log.Info().Str("photo_id", id).Msg("photo deleted")
	return nil
}
