package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/galeria/admin-api/internal/core/domain"
	"github.com/galeria/admin-api/internal/core/ports"
)

type stubPhotoService struct {
	ports.PhotoService
	uploadFn func(ctx context.Context, in ports.UploadPhotoInput) (*domain.Photo, error)
}

func (s *stubPhotoService) Upload(ctx context.Context, in ports.UploadPhotoInput) (*domain.Photo, error) {
	return s.uploadFn(ctx, in)
}

func multipartContext(t *testing.T, e *echo.Echo, fields map[string]string, file []byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if file != nil {
		fw, err := w.CreateFormFile(photoFileField, "beach.png")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		_, _ = fw.Write(file)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/photos", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestPhotoHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubPhotoService{
		uploadFn: func(_ context.Context, in ports.UploadPhotoInput) (*domain.Photo, error) {
			data, _ := io.ReadAll(in.Content)
			if in.GalleryID != "g1" || in.Title != "Beach" || in.Filename != "beach.png" || string(data) != "img" {
				t.Fatalf("unexpected input: %+v (%q)", in, data)
			}
			return &domain.Photo{ID: "p1", GalleryID: in.GalleryID, Title: in.Title, Location: "/storage/x.png"}, nil
		},
	}
	c, rec := multipartContext(t, e, map[string]string{"gallery_id": "g1", "title": "Beach"}, []byte("img"))

	if err := NewPhotoHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestPhotoHandler_Create_MissingParts(t *testing.T) {
	e := newTestEcho()
	stub := &stubPhotoService{
		uploadFn: func(context.Context, ports.UploadPhotoInput) (*domain.Photo, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}

	c, _ := multipartContext(t, e, map[string]string{"gallery_id": "g1"}, nil)
	if code := httpErrorCode(t, NewPhotoHandler(stub).Create(c)); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 without file, got %d", code)
	}

	c, _ = multipartContext(t, e, nil, []byte("img"))
	if code := httpErrorCode(t, NewPhotoHandler(stub).Create(c)); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 without gallery_id, got %d", code)
	}
}

func TestPhotoHandler_Create_PropagatesDomainError(t *testing.T) {
	e := newTestEcho()
	stub := &stubPhotoService{
		uploadFn: func(context.Context, ports.UploadPhotoInput) (*domain.Photo, error) {
			return nil, domain.ErrUnsupportedMedia
		},
	}
	c, _ := multipartContext(t, e, map[string]string{"gallery_id": "g1"}, []byte("text"))

	if err := NewPhotoHandler(stub).Create(c); !errors.Is(err, domain.ErrUnsupportedMedia) {
		t.Fatalf("expected ErrUnsupportedMedia, got %v", err)
	}
}
