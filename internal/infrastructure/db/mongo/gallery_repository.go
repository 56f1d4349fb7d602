package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/galeria/admin-api/internal/core/domain"
)

const (
	collectionGalleries = "galleries"
	collectionPhotos    = "photos"
)

type GalleryRepository struct {
	col *mongo.Collection
}

func NewGalleryRepository(db *mongo.Database) *GalleryRepository {
	return &GalleryRepository{col: db.Collection(collectionGalleries)}
}

type galleryDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Date      string             `bson:"date"`
	Site      string             `bson:"site"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d galleryDoc) toDomain() *domain.Gallery {
	return &domain.Gallery{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Date:      d.Date,
		Site:      d.Site,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

func (r *GalleryRepository) Create(ctx context.Context, g *domain.Gallery) (*domain.Gallery, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := galleryDoc{
		ID:        primitive.NewObjectID(),
		Title:     g.Title,
		Date:      g.Date,
		Site:      g.Site,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert gallery: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *GalleryRepository) FindByID(ctx context.Context, id string) (*domain.Gallery, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrGalleryNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc galleryDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGalleryNotFound
		}
		return nil, fmt.Errorf("find gallery: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *GalleryRepository) List(ctx context.Context) ([]*domain.Gallery, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list galleries: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []galleryDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode galleries: %w", err)
	}
	out := make([]*domain.Gallery, len(docs))
	for i, d := range docs {
		out[i] = d.toDomain()
	}
	return out, nil
}

func (r *GalleryRepository) Update(ctx context.Context, g *domain.Gallery) (*domain.Gallery, error) {
	oid, err := primitive.ObjectIDFromHex(g.ID)
	if err != nil {
		return nil, domain.ErrGalleryNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"title":      g.Title,
		"date":       g.Date,
		"site":       g.Site,
		"updated_at": g.UpdatedAt,
	}})
	if err != nil {
		return nil, fmt.Errorf("update gallery: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrGalleryNotFound
	}
	return g, nil
}

func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
	return deleteByHex(ctx, r.col, id, domain.ErrGalleryNotFound)
}

type PhotoRepository struct {
	col *mongo.Collection
}

func NewPhotoRepository(db *mongo.Database) *PhotoRepository {
	return &PhotoRepository{col: db.Collection(collectionPhotos)}
}

type photoDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	GalleryID string             `bson:"gallery_id"`
	Title     string             `bson:"title"`
	Location  string             `bson:"location"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d photoDoc) toDomain() *domain.Photo {
	return &domain.Photo{
		ID:        d.ID.Hex(),
		GalleryID: d.GalleryID,
		Title:     d.Title,
		Location:  d.Location,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

func (r *PhotoRepository) Create(ctx context.Context, p *domain.Photo) (*domain.Photo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := photoDoc{
		ID:        primitive.NewObjectID(),
		GalleryID: p.GalleryID,
		Title:     p.Title,
		Location:  p.Location,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert photo: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PhotoRepository) FindByID(ctx context.Context, id string) (*domain.Photo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPhotoNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc photoDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPhotoNotFound
		}
		return nil, fmt.Errorf("find photo: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PhotoRepository) List(ctx context.Context, galleryID string) ([]*domain.Photo, error) {
	filter := bson.M{}
	if galleryID != "" {
		filter["gallery_id"] = galleryID
	}
	return r.find(ctx, filter)
}

func (r *PhotoRepository) find(ctx context.Context, filter bson.M) ([]*domain.Photo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []photoDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode photos: %w", err)
	}
	out := make([]*domain.Photo, len(docs))
	for i, d := range docs {
		out[i] = d.toDomain()
	}
	return out, nil
}

func (r *PhotoRepository) Update(ctx context.Context, p *domain.Photo) (*domain.Photo, error) {
	oid, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		return nil, domain.ErrPhotoNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"gallery_id": p.GalleryID,
		"title":      p.Title,
		"updated_at": p.UpdatedAt,
	}})
	if err != nil {
		return nil, fmt.Errorf("update photo: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrPhotoNotFound
	}
	return p, nil
}

func (r *PhotoRepository) Delete(ctx context.Context, id string) error {
	return deleteByHex(ctx, r.col, id, domain.ErrPhotoNotFound)
}

// DeleteByGallery reads the gallery's photos before removing them so the
// caller can clean up the stored files.
func (r *PhotoRepository) DeleteByGallery(ctx context.Context, galleryID string) ([]*domain.Photo, error) {
	photos, err := r.find(ctx, bson.M{"gallery_id": galleryID})
	if err != nil {
		return nil, err
	}
	if len(photos) == 0 {
		return photos, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteMany(ctx, bson.M{"gallery_id": galleryID}); err != nil {
		return nil, fmt.Errorf("delete gallery photos: %w", err)
	}
	return photos, nil
}

func (r *PhotoRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "gallery_id", Value: 1}},
	})
	return err
}
