// Package mongo stores users, activities, galleries and photos in MongoDB.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	connectTimeout = 10 * time.Second
	// defaultTimeout bounds each repository query.
	defaultTimeout = 5 * time.Second
	appName        = "admin-api"
)

// Config locates the database.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect dials cfg.URI, waits for a primary and returns the client with
// its cfg.Database handle. The caller disconnects the client.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = connectTimeout
	}
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(appName).
		SetServerSelectionTimeout(timeout)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping %s: %w", cfg.Database, err)
	}
	return client, client.Database(cfg.Database), nil
}

// Repositories bundles the collection-backed repositories of one database.
type Repositories struct {
	Users      *UserRepository
	Activities *ActivityRepository
	Galleries  *GalleryRepository
	Photos     *PhotoRepository
}

func NewRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Users:      NewUserRepository(db),
		Activities: NewActivityRepository(db),
		Galleries:  NewGalleryRepository(db),
		Photos:     NewPhotoRepository(db),
	}
}

// EnsureIndexes creates the indexes the repositories rely on.
func (r *Repositories) EnsureIndexes(ctx context.Context) error {
	if err := r.Users.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}
	if err := r.Photos.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("photos indexes: %w", err)
	}
	return nil
}
