package memory

import (
	"context"
	"time"

	"github.com/baharkarakas/marina-backend/internal/models"
	"github.com/baharkarakas/marina-backend/internal/repository"
	"github.com/baharkarakas/marina-backend/internal/validate"
)

var _ repository.Catways = (*Catways)(nil)

type Catways struct{ s *store }

func (r *Catways) Create(ctx context.Context, c models.Catway) (models.Catway, error) {
	if c.CatwayNumber <= 0 || !c.CatwayType.Valid() {
		return models.Catway{}, validate.Field("catway", validate.RuleFormat, "rejected by store constraint")
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.catways[c.CatwayNumber]; ok {
		return models.Catway{}, models.ErrCatwayExists
	}
	now := r.s.now()
	c.CreatedAt, c.UpdatedAt = now, now
	r.s.catways[c.CatwayNumber] = c
	return c, nil
}

func (r *Catways) GetByNumber(ctx context.Context, number int) (models.Catway, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.catways[number]
	if !ok {
		return models.Catway{}, models.ErrCatwayNotFound
	}
	return c, nil
}

func (r *Catways) Exists(ctx context.Context, number int) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.catways[number]
	return ok, nil
}

func (r *Catways) List(ctx context.Context) ([]models.Catway, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Catway, 0, len(r.s.catways))
	for _, c := range r.s.catways {
		out = append(out, c)
	}
	sortCatways(out)
	return out, nil
}

func (r *Catways) Update(ctx context.Context, c models.Catway) (models.Catway, error) {
	if !c.CatwayType.Valid() {
		return models.Catway{}, validate.Field("catwayType", validate.RuleFormat, "rejected by store constraint")
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.catways[c.CatwayNumber]
	if !ok {
		return models.Catway{}, models.ErrCatwayNotFound
	}
	cur.CatwayType = c.CatwayType
	cur.CatwayState = c.CatwayState
	cur.UpdatedAt = r.s.now()
	r.s.catways[c.CatwayNumber] = cur
	return cur, nil
}

func (r *Catways) Delete(ctx context.Context, number int, activeAfter time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.catways[number]; !ok {
		return models.ErrCatwayNotFound
	}
	for _, res := range r.s.reservations {
		if res.CatwayNumber == number && res.EndDate.After(activeAfter) {
			return models.ErrCatwayInUse
		}
	}
	delete(r.s.catways, number)
	return nil
}

func (r *Catways) Count(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.catways), nil
}
