package memory

import (
	"context"

	"github.com/galeria/admin-api/internal/core/domain"
)

type GalleryRepository struct {
	t *table[domain.Gallery]
}

func NewGalleryRepository() *GalleryRepository {
	return &GalleryRepository{t: newTable[domain.Gallery]()}
}

func (r *GalleryRepository) Create(_ context.Context, g *domain.Gallery) (*domain.Gallery, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	row := *g
	row.Photos = nil
	id, _ := r.t.insert(row)
	row.ID = id
	r.t.rows[id] = row
	return &row, nil
}

func (r *GalleryRepository) FindByID(_ context.Context, id string) (*domain.Gallery, error) {
	r.t.mu.RLock()
	defer r.t.mu.RUnlock()

	g, ok := r.t.get(id)
	if !ok {
		return nil, domain.ErrGalleryNotFound
	}
	return &g, nil
}

func (r *GalleryRepository) List(_ context.Context) ([]*domain.Gallery, error) {
	r.t.mu.RLock()
	defer r.t.mu.RUnlock()

	rows := r.t.scan(nil)
	out := make([]*domain.Gallery, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}

func (r *GalleryRepository) Update(_ context.Context, g *domain.Gallery) (*domain.Gallery, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	row := *g
	row.Photos = nil
	if !r.t.replace(g.ID, row) {
		return nil, domain.ErrGalleryNotFound
	}
	return &row, nil
}

func (r *GalleryRepository) Delete(_ context.Context, id string) error {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	if !r.t.remove(id) {
		return domain.ErrGalleryNotFound
	}
	return nil
}

type PhotoRepository struct {
	t *table[domain.Photo]
}

func NewPhotoRepository() *PhotoRepository {
	return &PhotoRepository{t: newTable[domain.Photo]()}
}

func (r *PhotoRepository) Create(_ context.Context, p *domain.Photo) (*domain.Photo, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	row := *p
	id, _ := r.t.insert(row)
	row.ID = id
	r.t.rows[id] = row
	return &row, nil
}

func (r *PhotoRepository) FindByID(_ context.Context, id string) (*domain.Photo, error) {
	r.t.mu.RLock()
	defer r.t.mu.RUnlock()

	p, ok := r.t.get(id)
	if !ok {
		return nil, domain.ErrPhotoNotFound
	}
	return &p, nil
}

func (r *PhotoRepository) List(_ context.Context, galleryID string) ([]*domain.Photo, error) {
	r.t.mu.RLock()
	defer r.t.mu.RUnlock()

	rows := r.t.scan(func(p domain.Photo) bool {
		return galleryID == "" || p.GalleryID == galleryID
	})
	out := make([]*domain.Photo, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}

func (r *PhotoRepository) Update(_ context.Context, p *domain.Photo) (*domain.Photo, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	row := *p
	if !r.t.replace(p.ID, row) {
		return nil, domain.ErrPhotoNotFound
	}
	return &row, nil
}

func (r *PhotoRepository) Delete(_ context.Context, id string) error {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	if !r.t.remove(id) {
		return domain.ErrPhotoNotFound
	}
	return nil
}

func (r *PhotoRepository) DeleteByGallery(_ context.Context, galleryID string) ([]*domain.Photo, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	rows := r.t.scan(func(p domain.Photo) bool { return p.GalleryID == galleryID })
	out := make([]*domain.Photo, len(rows))
	for i := range rows {
		r.t.remove(rows[i].ID)
		out[i] = &rows[i]
	}
	return out, nil
}
