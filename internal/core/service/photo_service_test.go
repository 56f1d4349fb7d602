package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/galeria/admin-api/internal/core/domain"
	"github.com/galeria/admin-api/internal/core/ports"
)

func TestPhotoService_Upload_DefaultsTitleToFilename(t *testing.T) {
	f := newGalleryFixture(0)
	g, _ := f.galleries.Create(context.Background(), ports.GalleryInput{Title: "A", Date: "2024-01-01"})

	p := f.upload(t, g.ID, "sunset.png")
	if p.Title != "sunset" {
		t.Fatalf("expected title sunset, got %q", p.Title)
	}
	if p.GalleryID != g.ID {
		t.Fatalf("expected gallery %s, got %s", g.ID, p.GalleryID)
	}
	if _, ok := f.storage.files[p.Location]; !ok {
		t.Fatalf("expected file stored at %s", p.Location)
	}
}

func TestPhotoService_Upload_Rejections(t *testing.T) {
	f := newGalleryFixture(16)
	g, _ := f.galleries.Create(context.Background(), ports.GalleryInput{Title: "A", Date: "2024-01-01"})

	cases := []struct {
		name string
		in   ports.UploadPhotoInput
		want error
	}{
		{
			name: "unknown gallery",
			in:   ports.UploadPhotoInput{GalleryID: "nope", Filename: "a.png", Content: strings.NewReader(string(pngHeader))},
			want: domain.ErrGalleryNotFound,
		},
		{
			name: "missing gallery id",
			in:   ports.UploadPhotoInput{Filename: "a.png", Content: strings.NewReader(string(pngHeader))},
			want: domain.ErrInvalidInput,
		},
		{
			name: "not an image",
			in:   ports.UploadPhotoInput{GalleryID: g.ID, Filename: "a.png", Content: strings.NewReader("plain text")},
			want: domain.ErrUnsupportedMedia,
		},
		{
			name: "declared size too large",
			in:   ports.UploadPhotoInput{GalleryID: g.ID, Filename: "a.png", Size: 17, Content: strings.NewReader("")},
			want: domain.ErrFileTooLarge,
		},
		{
			name: "actual size too large",
			in:   ports.UploadPhotoInput{GalleryID: g.ID, Filename: "a.png", Content: strings.NewReader(string(pngHeader) + "0123456789")},
			want: domain.ErrFileTooLarge,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := f.photos.Upload(context.Background(), tc.in); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
	if len(f.storage.files) != 0 {
		t.Fatalf("rejected uploads must not reach storage, got %d files", len(f.storage.files))
	}
}

func TestPhotoService_Update_MovesBetweenGalleries(t *testing.T) {
	f := newGalleryFixture(0)
	a, _ := f.galleries.Create(context.Background(), ports.GalleryInput{Title: "A", Date: "2024-01-01"})
	b, _ := f.galleries.Create(context.Background(), ports.GalleryInput{Title: "B", Date: "2024-01-01"})
	p := f.upload(t, a.ID, "x.png")

	if _, err := f.photos.Update(context.Background(), p.ID, ports.UpdatePhotoInput{GalleryID: strPtr("missing")}); !errors.Is(err, domain.ErrGalleryNotFound) {
		t.Fatalf("expected ErrGalleryNotFound, got %v", err)
	}

	moved, err := f.photos.Update(context.Background(), p.ID, ports.UpdatePhotoInput{GalleryID: &b.ID, Title: strPtr("renamed")})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if moved.GalleryID != b.ID || moved.Title != "renamed" {
		t.Fatalf("unexpected photo: %+v", moved)
	}

	inB, _ := f.photos.List(context.Background(), b.ID)
	if len(inB) != 1 {
		t.Fatalf("expected 1 photo in gallery B, got %d", len(inB))
	}
}

func TestPhotoService_Delete_SchedulesCleanup(t *testing.T) {
	f := newGalleryFixture(0)
	g, _ := f.galleries.Create(context.Background(), ports.GalleryInput{Title: "A", Date: "2024-01-01"})
	p := f.upload(t, g.ID, "x.png")

	if err := f.photos.Delete(context.Background(), p.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(f.cleaner.jobs) != 1 || f.cleaner.jobs[0].Location != p.Location {
		t.Fatalf("unexpected cleanup jobs: %+v", f.cleaner.jobs)
	}
}
