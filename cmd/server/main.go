// Command server runs the admin API.
//
// @title                       Galeria Admin API
// @version                     1.0
// @description                 Back-office API for users, activities, galleries and photos.
// @BasePath                    /api
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/galeria/admin-api/internal/api"
	"github.com/galeria/admin-api/internal/core/ports"
	"github.com/galeria/admin-api/internal/core/service"
	"github.com/galeria/admin-api/internal/infrastructure/config"
	"github.com/galeria/admin-api/internal/infrastructure/db/memory"
	mongodb "github.com/galeria/admin-api/internal/infrastructure/db/mongo"
	redisdb "github.com/galeria/admin-api/internal/infrastructure/db/redis"
	httpserver "github.com/galeria/admin-api/internal/infrastructure/http"
	"github.com/galeria/admin-api/internal/infrastructure/http/handlers"
	"github.com/galeria/admin-api/internal/infrastructure/queue"
	"github.com/galeria/admin-api/internal/infrastructure/storage"
	"github.com/galeria/admin-api/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "server:", err)
		os.Exit(1)
	}
}

type repositories struct {
	users      ports.UserRepository
	activities ports.ActivityRepository
	galleries  ports.GalleryRepository
	photos     ports.PhotoRepository
}

func run() error {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "admin-api",
	})

	readiness := map[string]handlers.Pinger{}

	// --- Persistence ---
	var repos repositories
	switch cfg.StoreDriver {
	case config.StoreMongo:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		m := mongodb.NewRepositories(db)
		if err := m.EnsureIndexes(ctx); err != nil {
			return err
		}
		repos = repositories{users: m.Users, activities: m.Activities, galleries: m.Galleries, photos: m.Photos}
		readiness["mongodb"] = handlers.MongoPinger(db)
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")
	default:
		repos = repositories{
			users:      memory.NewUserRepository(),
			activities: memory.NewActivityRepository(),
			galleries:  memory.NewGalleryRepository(),
			photos:     memory.NewPhotoRepository(),
		}
		log.Warn().Msg("using in-memory store, data will not survive a restart")
	}

	// --- Login throttling ---
	var limiter ports.LoginLimiter
	if cfg.Redis.Enabled {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer rdb.Close()
		limiter = redisdb.NewLoginLimiter(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)
		readiness["redis"] = handlers.RedisPinger(rdb)
	}

	// --- Photo storage ---
	deps := api.Dependencies{JWTSecret: cfg.JWTSecret, Log: logger.Component("http"), Readiness: readiness}
	var photoStorage ports.PhotoStorage
	switch cfg.Storage.Driver {
	case config.StorageS3:
		s3, err := storage.NewS3Storage(ctx, storage.S3Config{
			Region:    cfg.Storage.S3.Region,
			Endpoint:  cfg.Storage.S3.Endpoint,
			Bucket:    cfg.Storage.S3.Bucket,
			AccessKey: cfg.Storage.S3.AccessKey,
			SecretKey: cfg.Storage.S3.SecretKey,
			PublicURL: cfg.Storage.S3.PublicURL,
		})
		if err != nil {
			return err
		}
		photoStorage = s3
	default:
		local, err := storage.NewLocalStorage(cfg.Storage.Dir, cfg.Storage.PublicPrefix)
		if err != nil {
			return err
		}
		photoStorage = local
		deps.StaticDir = local.Dir()
		deps.StaticPrefix = local.PublicPrefix()
	}

	cleaner := queue.NewDispatcher(cfg.Storage.CleanupWorkers, photoStorage, logger.Component("cleanup"))
	cleaner.Start(ctx)

	// --- Use cases ---
	authService := service.NewAuthService(repos.users, limiter, cfg.JWTSecret, cfg.TokenTTL, logger.Component("auth"))
	if err := authService.EnsureAdmin(ctx, cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	deps.Auth = authService
	deps.Users = service.NewUserService(repos.users, logger.Component("users"))
	deps.Activities = service.NewActivityService(repos.activities, logger.Component("activities"))
	deps.Galleries = service.NewGalleryService(repos.galleries, repos.photos, cleaner, logger.Component("galleries"))
	deps.Photos = service.NewPhotoService(repos.photos, repos.galleries, photoStorage, cleaner, cfg.Storage.MaxUploadBytes, logger.Component("photos"))

	srv := httpserver.NewServer(api.NewRouter(deps), cfg.Port, log)
	err = srv.Run(ctx)

	cancel()
	cleaner.Wait()
	logShutdown(log, err)
	return err
}

func logShutdown(log zerolog.Logger, err error) {
	if err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		return
	}
	log.Info().Msg("server stopped")
}
