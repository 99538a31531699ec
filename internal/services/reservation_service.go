package services

import (
	"context"

	"github.com/baharkarakas/marina-backend/internal/models"
	repo "github.com/baharkarakas/marina-backend/internal/repository"
	"github.com/baharkarakas/marina-backend/internal/validate"
)

type ReservationService struct {
	reservations repo.Reservations
	catways      repo.Catways
	audit        *Auditor
}

func NewReservationService(r repo.Reservations, c repo.Catways, a *Auditor) *ReservationService {
	return &ReservationService{reservations: r, catways: c, audit: a}
}

func (s *ReservationService) List(ctx context.Context) ([]models.Reservation, error) {
	return s.reservations.List(ctx)
}

// ListByCatway fails with models.ErrCatwayNotFound for an unknown catway.
func (s *ReservationService) ListByCatway(ctx context.Context, number int) ([]models.Reservation, error) {
	if err := s.ensureCatway(ctx, number); err != nil {
		return nil, err
	}
	return s.reservations.ListByCatway(ctx, number)
}

func (s *ReservationService) Get(ctx context.Context, id string) (models.Reservation, error) {
	id, ok := canonicalID(id)
	if !ok {
		return models.Reservation{}, models.ErrReservationNotFound
	}
	return s.reservations.GetByID(ctx, id)
}

// Create runs field checks, then the date range, then the catway lookup.
// Nothing is written unless all of them pass.
func (s *ReservationService) Create(ctx context.Context, r models.Reservation) (models.Reservation, error) {
	r.ID = ""
	if err := validate.Reservation(r); err != nil {
		return models.Reservation{}, err
	}
	if err := s.ensureCatway(ctx, r.CatwayNumber); err != nil {
		return models.Reservation{}, err
	}

	saved, err := s.reservations.Create(ctx, r)
	if err != nil {
		return models.Reservation{}, err
	}
	s.audit.record(ctx, entityReservation, saved.ID, models.AuditCreated, map[string]any{
		"catwayNumber": saved.CatwayNumber,
		"clientName":   saved.ClientName,
		"boatName":     saved.BoatName,
	})
	return saved, nil
}

// Update merges p onto the stored reservation and checks the merged record as
// a whole. Moving to another catway requires that catway to exist.
func (s *ReservationService) Update(ctx context.Context, id string, p models.ReservationPatch) (models.Reservation, error) {
	cur, err := s.Get(ctx, id)
	if err != nil {
		return models.Reservation{}, err
	}
	merged := p.Apply(cur)
	if err := validate.Reservation(merged); err != nil {
		return models.Reservation{}, err
	}
	if merged.CatwayNumber != cur.CatwayNumber {
		if err := s.ensureCatway(ctx, merged.CatwayNumber); err != nil {
			return models.Reservation{}, err
		}
	}

	saved, err := s.reservations.Update(ctx, merged)
	if err != nil {
		return models.Reservation{}, err
	}
	s.audit.record(ctx, entityReservation, saved.ID, models.AuditUpdated, patchDetails(p))
	return saved, nil
}

func (s *ReservationService) Delete(ctx context.Context, id string) error {
	id, ok := canonicalID(id)
	if !ok {
		return models.ErrReservationNotFound
	}
	if err := s.reservations.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.record(ctx, entityReservation, id, models.AuditDeleted, nil)
	return nil
}

// The catway-scoped variants below treat a reservation of another catway as
// not found.

func (s *ReservationService) CreateForCatway(ctx context.Context, number int, r models.Reservation) (models.Reservation, error) {
	r.CatwayNumber = number
	return s.Create(ctx, r)
}

func (s *ReservationService) GetForCatway(ctx context.Context, number int, id string) (models.Reservation, error) {
	if err := s.ensureCatway(ctx, number); err != nil {
		return models.Reservation{}, err
	}
	r, err := s.Get(ctx, id)
	if err != nil {
		return models.Reservation{}, err
	}
	if r.CatwayNumber != number {
		return models.Reservation{}, models.ErrReservationNotFound
	}
	return r, nil
}

func (s *ReservationService) UpdateForCatway(ctx context.Context, number int, id string, p models.ReservationPatch) (models.Reservation, error) {
	if _, err := s.GetForCatway(ctx, number, id); err != nil {
		return models.Reservation{}, err
	}
	return s.Update(ctx, id, p)
}

func (s *ReservationService) DeleteForCatway(ctx context.Context, number int, id string) error {
	if _, err := s.GetForCatway(ctx, number, id); err != nil {
		return err
	}
	return s.Delete(ctx, id)
}

func (s *ReservationService) ensureCatway(ctx context.Context, number int) error {
	ok, err := s.catways.Exists(ctx, number)
	if err != nil {
		return err
	}
	if !ok {
		return models.ErrCatwayNotFound
	}
	return nil
}

func patchDetails(p models.ReservationPatch) map[string]any {
	d := map[string]any{}
	if p.CatwayNumber != nil {
		d["catwayNumber"] = *p.CatwayNumber
	}
	if p.ClientName != nil {
		d["clientName"] = *p.ClientName
	}
	if p.BoatName != nil {
		d["boatName"] = *p.BoatName
	}
	if p.StartDate != nil {
		d["startDate"] = *p.StartDate
	}
	if p.EndDate != nil {
		d["endDate"] = *p.EndDate
	}
	return d
}
