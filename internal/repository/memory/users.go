package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/baharkarakas/marina-backend/internal/models"
	"github.com/baharkarakas/marina-backend/internal/repository"
)

var _ repository.Users = (*Users)(nil)

type Users struct{ s *store }

func (r *Users) Create(ctx context.Context, u models.User) (models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, taken := r.s.emails[u.Email]; taken {
		return models.User{}, models.ErrEmailTaken
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if _, ok := r.s.users[u.ID]; ok {
		return models.User{}, models.ErrDuplicateKey
	}
	now := r.s.now()
	u.CreatedAt, u.UpdatedAt = now, now
	r.s.users[u.ID] = u
	r.s.emails[u.Email] = u.ID
	return u, nil
}

func (r *Users) GetByID(ctx context.Context, id string) (models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return models.User{}, models.ErrUserNotFound
	}
	return u, nil
}

func (r *Users) GetByEmail(ctx context.Context, email string) (models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.emails[email]
	if !ok {
		return models.User{}, models.ErrUserNotFound
	}
	return r.s.users[id], nil
}

func (r *Users) List(ctx context.Context) ([]models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Email < out[j].Email
	})
	return out, nil
}

func (r *Users) Update(ctx context.Context, u models.User) (models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.users[u.ID]
	if !ok {
		return models.User{}, models.ErrUserNotFound
	}
	cur.Username = u.Username
	cur.PasswordHash = u.PasswordHash
	cur.UpdatedAt = r.s.now()
	r.s.users[u.ID] = cur
	return cur, nil
}

func (r *Users) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return models.ErrUserNotFound
	}
	delete(r.s.users, id)
	delete(r.s.emails, u.Email)
	return nil
}

func (r *Users) DeleteByEmail(ctx context.Context, email string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id, ok := r.s.emails[email]
	if !ok {
		return models.ErrUserNotFound
	}
	delete(r.s.users, id)
	delete(r.s.emails, email)
	return nil
}

func (r *Users) Count(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.users), nil
}
