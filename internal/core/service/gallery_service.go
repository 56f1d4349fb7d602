package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/galeria/admin-api/internal/core/domain"
	"github.com/galeria/admin-api/internal/core/ports"
)

type galleryService struct {
	galleries ports.GalleryRepository
	photos    ports.PhotoRepository
	cleaner   ports.BlobCleaner
	log       zerolog.Logger
}

// NewGalleryService returns a GalleryService. Photos removed together with a
// gallery are handed to cleaner for asynchronous file removal.
func NewGalleryService(
	galleries ports.GalleryRepository,
	photos ports.PhotoRepository,
	cleaner ports.BlobCleaner,
	log zerolog.Logger,
) ports.GalleryService {
	return &galleryService{galleries: galleries, photos: photos, cleaner: cleaner, log: log}
}

func (s *galleryService) List(ctx context.Context) ([]*domain.Gallery, error) {
	galleries, err := s.galleries.List(ctx)
	if err != nil {
		return nil, err
	}
	all, err := s.photos.List(ctx, "")
	if err != nil {
		return nil, err
	}
	byGallery := make(map[string][]*domain.Photo, len(galleries))
	for _, p := range all {
		byGallery[p.GalleryID] = append(byGallery[p.GalleryID], p)
	}
	for _, g := range galleries {
		g.Photos = nonNil(byGallery[g.ID])
	}
	return galleries, nil
}

func (s *galleryService) Get(ctx context.Context, id string) (*domain.Gallery, error) {
	g, err := s.galleries.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	photos, err := s.photos.List(ctx, g.ID)
	if err != nil {
		return nil, err
	}
	g.Photos = nonNil(photos)
	return g, nil
}

func (s *galleryService) Create(ctx context.Context, in ports.GalleryInput) (*domain.Gallery, error) {
	if err := validateGallery(in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	created, err := s.galleries.Create(ctx, &domain.Gallery{
		Title:     strings.TrimSpace(in.Title),
		Date:      in.Date,
		Site:      in.Site,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}
	created.Photos = []*domain.Photo{}
	s.log.Info().Str("gallery_id", created.ID).Msg("gallery created")
	return created, nil
}

func (s *galleryService) Update(ctx context.Context, id string, in ports.GalleryInput) (*domain.Gallery, error) {
	if err := validateGallery(in); err != nil {
		return nil, err
	}
	g, err := s.galleries.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	g.Title = strings.TrimSpace(in.Title)
	g.Date = in.Date
	g.Site = in.Site
	g.UpdatedAt = time.Now().UTC()
	if _, err := s.galleries.Update(ctx, g); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete removes the gallery and its photos. Stored files are cleaned up
// in the background; a failed cleanup never fails the request.
// Delete removes the gallery's photos before the gallery itself, so a failure
// part way never leaves photos pointing at a missing gallery.
func (s *galleryService) Delete(ctx context.Context, id string) error {
	if _, err := s.galleries.FindByID(ctx, id); err != nil {
		return err
	}
	removed, err := s.photos.DeleteByGallery(ctx, id)
	if err != nil {
		return fmt.Errorf("delete gallery photos: %w", err)
	}
	jobs := make([]ports.CleanupJob, len(removed))
	for i, p := range removed {
		jobs[i] = ports.CleanupJob{GalleryID: id, Location: p.Location}
	}
	s.cleaner.EnqueueBatch(jobs)

	if err := s.galleries.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("gallery_id", id).Int("photos", len(removed)).Msg("gallery deleted")
	return nil
}

func validateGallery(in ports.GalleryInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	return validateDate(in.Date, true)
}

func nonNil(photos []*domain.Photo) []*domain.Photo {
	if photos == nil {
		return []*domain.Photo{}
	}
	return photos
}
