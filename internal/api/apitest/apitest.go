// Package apitest runs the admin API over in-memory repositories for tests.
package apitest

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/galeria/admin-api/internal/api"
	"github.com/galeria/admin-api/internal/core/ports"
	"github.com/galeria/admin-api/internal/core/service"
	"github.com/galeria/admin-api/internal/infrastructure/db/memory"
	"github.com/galeria/admin-api/internal/infrastructure/storage"
)

// Seeded admin account.
const (
	AdminEmail    = "admin@admin.com"
	AdminPassword = "admin123"
)

const jwtSecret = "apitest-secret"

type nopCleaner struct{}

func (nopCleaner) Enqueue(ports.CleanupJob) {}

func (nopCleaner) EnqueueBatch([]ports.CleanupJob) {}

// NewServer starts an API server with the admin account seeded. It is closed
// when the test ends.
func NewServer(t testing.TB) *httptest.Server {
	t.Helper()
	log := zerolog.Nop()

	users := memory.NewUserRepository()
	galleries := memory.NewGalleryRepository()
	photos := memory.NewPhotoRepository()

	files, err := storage.NewLocalStorage(t.TempDir(), "/storage")
	if err != nil {
		t.Fatalf("apitest: storage: %v", err)
	}

	auth := service.NewAuthService(users, nil, jwtSecret, time.Hour, log)
	if err := auth.EnsureAdmin(context.Background(), "Administrator", AdminEmail, AdminPassword); err != nil {
		t.Fatalf("apitest: seed admin: %v", err)
	}

	e := api.NewRouter(api.Dependencies{
		Auth:         auth,
		Users:        service.NewUserService(users, log),
		Activities:   service.NewActivityService(memory.NewActivityRepository(), log),
		Galleries:    service.NewGalleryService(galleries, photos, nopCleaner{}, log),
		Photos:       service.NewPhotoService(photos, galleries, files, nopCleaner{}, 0, log),
		JWTSecret:    jwtSecret,
		Log:          log,
		StaticDir:    files.Dir(),
		StaticPrefix: files.PublicPrefix(),
	})

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

// PNG is a minimal payload that sniffs as image/png.
var PNG = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
