package memory

import (
	"context"

	"github.com/galeria/admin-api/internal/core/domain"
)

type ActivityRepository struct {
	t *table[domain.Activity]
}

func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{t: newTable[domain.Activity]()}
}

func (r *ActivityRepository) Create(_ context.Context, a *domain.Activity) (*domain.Activity, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	row := *a
	id, _ := r.t.insert(row)
	row.ID = id
	r.t.rows[id] = row
	return &row, nil
}

func (r *ActivityRepository) FindByID(_ context.Context, id string) (*domain.Activity, error) {
	r.t.mu.RLock()
	defer r.t.mu.RUnlock()

	a, ok := r.t.get(id)
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	return &a, nil
}

func (r *ActivityRepository) List(_ context.Context) ([]*domain.Activity, error) {
	r.t.mu.RLock()
	defer r.t.mu.RUnlock()

	rows := r.t.scan(nil)
	out := make([]*domain.Activity, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}

func (r *ActivityRepository) Update(_ context.Context, a *domain.Activity) (*domain.Activity, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	row := *a
	if !r.t.replace(a.ID, row) {
		return nil, domain.ErrActivityNotFound
	}
	return &row, nil
}

func (r *ActivityRepository) Delete(_ context.Context, id string) error {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	if !r.t.remove(id) {
		return domain.ErrActivityNotFound
	}
	return nil
}
