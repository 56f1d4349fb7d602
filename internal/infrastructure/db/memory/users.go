package memory

import (
	"context"
	"strings"

	"github.com/galeria/admin-api/internal/core/domain"
)

type UserRepository struct {
	t *table[domain.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{t: newTable[domain.User]()}
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	if r.emailTaken(user.Email, "") {
		return nil, domain.ErrUserExists
	}
	row := *user
	id, _ := r.t.insert(row)
	row.ID = id
	r.t.rows[id] = row
	return &row, nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.t.mu.RLock()
	defer r.t.mu.RUnlock()

	u, ok := r.t.get(id)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.t.mu.RLock()
	defer r.t.mu.RUnlock()

	for _, u := range r.t.scan(nil) {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) List(_ context.Context) ([]*domain.User, error) {
	r.t.mu.RLock()
	defer r.t.mu.RUnlock()

	rows := r.t.scan(nil)
	out := make([]*domain.User, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}

func (r *UserRepository) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	if r.emailTaken(user.Email, user.ID) {
		return nil, domain.ErrUserExists
	}
	row := *user
	if !r.t.replace(user.ID, row) {
		return nil, domain.ErrUserNotFound
	}
	return &row, nil
}

func (r *UserRepository) Delete(_ context.Context, id string) error {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	if !r.t.remove(id) {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) emailTaken(email, exceptID string) bool {
	for _, u := range r.t.scan(nil) {
		if u.ID != exceptID && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}
