package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/galeria/admin-api/internal/core/domain"
	"github.com/galeria/admin-api/internal/core/ports"
	"github.com/galeria/admin-api/internal/infrastructure/db/memory"
)

// pngHeader is enough for content sniffing to report image/png.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type stubStorage struct {
	mu    sync.Mutex
	n     int
	files map[string][]byte
	err   error
}

func newStubStorage() *stubStorage {
	return &stubStorage{files: make(map[string][]byte)}
}

func (s *stubStorage) Put(_ context.Context, filename, _ string, r io.Reader, _ int64) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	loc := fmt.Sprintf("/storage/%d-%s", s.n, filename)
	s.files[loc] = data
	return loc, nil
}

func (s *stubStorage) Delete(_ context.Context, location string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, location)
	return nil
}

type stubCleaner struct {
	jobs    []ports.CleanupJob
	batches int
}

func (c *stubCleaner) Enqueue(job ports.CleanupJob) {
	c.jobs = append(c.jobs, job)
}

func (c *stubCleaner) EnqueueBatch(jobs []ports.CleanupJob) {
	c.batches++
	c.jobs = append(c.jobs, jobs...)
}

type failingPhotoRepo struct {
	*memory.PhotoRepository
}

func (failingPhotoRepo) DeleteByGallery(context.Context, string) ([]*domain.Photo, error) {
	return nil, errors.New("connection reset")
}

type galleryFixture struct {
	galleries ports.GalleryService
	photos    ports.PhotoService
	storage   *stubStorage
	cleaner   *stubCleaner
}

func newGalleryFixture(maxBytes int64) *galleryFixture {
	galleryRepo := memory.NewGalleryRepository()
	photoRepo := memory.NewPhotoRepository()
	storage := newStubStorage()
	cleaner := &stubCleaner{}
	return &galleryFixture{
		galleries: NewGalleryService(galleryRepo, photoRepo, cleaner, zerolog.Nop()),
		photos:    NewPhotoService(photoRepo, galleryRepo, storage, cleaner, maxBytes, zerolog.Nop()),
		storage:   storage,
		cleaner:   cleaner,
	}
}

func (f *galleryFixture) upload(t *testing.T, galleryID, filename string) *domain.Photo {
	t.Helper()
	p, err := f.photos.Upload(context.Background(), ports.UploadPhotoInput{
		GalleryID: galleryID,
		Filename:  filename,
		Size:      int64(len(pngHeader)),
		Content:   bytes.NewReader(pngHeader),
	})
	if err != nil {
		t.Fatalf("upload %s failed: %v", filename, err)
	}
	return p
}

func TestGalleryService_Create_Validation(t *testing.T) {
	f := newGalleryFixture(0)

	cases := []ports.GalleryInput{
		{Title: "", Date: "2024-05-01"},
		{Title: "Fair", Date: ""},
		{Title: "Fair", Date: "01/05/2024"},
	}
	for _, in := range cases {
		if _, err := f.galleries.Create(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("input %+v: expected ErrInvalidInput, got %v", in, err)
		}
	}

	g, err := f.galleries.Create(context.Background(), ports.GalleryInput{Title: "Fair", Date: "2024-05-01", Site: "Lima"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID == "" || g.Photos == nil || len(g.Photos) != 0 {
		t.Fatalf("unexpected gallery: %+v", g)
	}
}

func TestGalleryService_GetAttachesPhotos(t *testing.T) {
	f := newGalleryFixture(0)
	a, _ := f.galleries.Create(context.Background(), ports.GalleryInput{Title: "A", Date: "2024-01-01"})
	b, _ := f.galleries.Create(context.Background(), ports.GalleryInput{Title: "B", Date: "2024-01-02"})
	f.upload(t, a.ID, "one.png")
	f.upload(t, a.ID, "two.png")
	f.upload(t, b.ID, "three.png")

	got, err := f.galleries.Get(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(got.Photos) != 2 {
		t.Fatalf("expected 2 photos, got %d", len(got.Photos))
	}

	all, err := f.galleries.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 2 || len(all[0].Photos) != 2 || len(all[1].Photos) != 1 {
		t.Fatalf("unexpected listing: %+v", all)
	}
}

func TestGalleryService_Delete_CascadesAndSchedulesCleanup(t *testing.T) {
	f := newGalleryFixture(0)
	g, _ := f.galleries.Create(context.Background(), ports.GalleryInput{Title: "A", Date: "2024-01-01"})
	p1 := f.upload(t, g.ID, "one.png")
	p2 := f.upload(t, g.ID, "two.png")

	if err := f.galleries.Delete(context.Background(), g.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := f.photos.Get(context.Background(), p1.ID); !errors.Is(err, domain.ErrPhotoNotFound) {
		t.Fatalf("expected photo to be gone, got %v", err)
	}
	if len(f.cleaner.jobs) != 2 || f.cleaner.batches != 1 {
		t.Fatalf("expected 2 cleanup jobs in one batch, got %d in %d", len(f.cleaner.jobs), f.cleaner.batches)
	}
	if f.cleaner.jobs[0].Location != p1.Location || f.cleaner.jobs[1].Location != p2.Location {
		t.Fatalf("unexpected cleanup jobs: %+v", f.cleaner.jobs)
	}
	if err := f.galleries.Delete(context.Background(), g.ID); !errors.Is(err, domain.ErrGalleryNotFound) {
		t.Fatalf("expected ErrGalleryNotFound on second delete, got %v", err)
	}
}

func TestGalleryService_Delete_KeepsGalleryWhenPhotosFail(t *testing.T) {
	galleryRepo := memory.NewGalleryRepository()
	cleaner := &stubCleaner{}
	svc := NewGalleryService(galleryRepo, failingPhotoRepo{memory.NewPhotoRepository()}, cleaner, zerolog.Nop())

	g, err := svc.Create(context.Background(), ports.GalleryInput{Title: "A", Date: "2024-01-01"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := svc.Delete(context.Background(), g.ID); err == nil {
		t.Fatal("expected delete to fail")
	}
	if _, err := galleryRepo.FindByID(context.Background(), g.ID); err != nil {
		t.Fatalf("gallery must survive a failed photo delete, got %v", err)
	}
	if len(cleaner.jobs) != 0 {
		t.Fatalf("expected no cleanup jobs, got %+v", cleaner.jobs)
	}
}
