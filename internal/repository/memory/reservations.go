package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/baharkarakas/marina-backend/internal/models"
	"github.com/baharkarakas/marina-backend/internal/repository"
	"github.com/baharkarakas/marina-backend/internal/validate"
)

var _ repository.Reservations = (*Reservations)(nil)

type Reservations struct{ s *store }

func checkRange(res models.Reservation) error {
	if !res.EndDate.After(res.StartDate) {
		return validate.Field("endDate", validate.RuleInvalidDateRange, "must be after startDate")
	}
	return nil
}

func (r *Reservations) Create(ctx context.Context, res models.Reservation) (models.Reservation, error) {
	if err := checkRange(res); err != nil {
		return models.Reservation{}, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	if _, ok := r.s.reservations[res.ID]; ok {
		return models.Reservation{}, models.ErrDuplicateKey
	}
	now := r.s.now()
	res.CreatedAt, res.UpdatedAt = now, now
	r.s.reservations[res.ID] = res
	return res, nil
}

func (r *Reservations) GetByID(ctx context.Context, id string) (models.Reservation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res, ok := r.s.reservations[id]
	if !ok {
		return models.Reservation{}, models.ErrReservationNotFound
	}
	return res, nil
}

func (r *Reservations) List(ctx context.Context) ([]models.Reservation, error) {
	return r.filter(func(models.Reservation) bool { return true }), nil
}

func (r *Reservations) ListByCatway(ctx context.Context, number int) ([]models.Reservation, error) {
	return r.filter(func(res models.Reservation) bool { return res.CatwayNumber == number }), nil
}

func (r *Reservations) ListActiveAt(ctx context.Context, at time.Time) ([]models.Reservation, error) {
	return r.filter(func(res models.Reservation) bool { return res.ActiveAt(at) }), nil
}

func (r *Reservations) filter(keep func(models.Reservation) bool) []models.Reservation {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.Reservation{}
	for _, res := range r.s.reservations {
		if keep(res) {
			out = append(out, res)
		}
	}
	sortReservations(out)
	return out
}

func (r *Reservations) Update(ctx context.Context, res models.Reservation) (models.Reservation, error) {
	if err := checkRange(res); err != nil {
		return models.Reservation{}, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.reservations[res.ID]
	if !ok {
		return models.Reservation{}, models.ErrReservationNotFound
	}
	res.CreatedAt = cur.CreatedAt
	res.UpdatedAt = r.s.now()
	r.s.reservations[res.ID] = res
	return res, nil
}

func (r *Reservations) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.reservations[id]; !ok {
		return models.ErrReservationNotFound
	}
	delete(r.s.reservations, id)
	return nil
}

func (r *Reservations) Count(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.reservations), nil
}
