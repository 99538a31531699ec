package services

import (
	"context"
	"strconv"
	"time"

	"github.com/baharkarakas/marina-backend/internal/models"
	repo "github.com/baharkarakas/marina-backend/internal/repository"
	"github.com/baharkarakas/marina-backend/internal/validate"
)

type CatwayService struct {
	catways repo.Catways
	audit   *Auditor
	now     func() time.Time
}

func NewCatwayService(c repo.Catways, a *Auditor) *CatwayService {
	return &CatwayService{catways: c, audit: a, now: time.Now}
}

func (s *CatwayService) List(ctx context.Context) ([]models.Catway, error) {
	return s.catways.List(ctx)
}

func (s *CatwayService) Get(ctx context.Context, number int) (models.Catway, error) {
	return s.catways.GetByNumber(ctx, number)
}

// Create rejects a number already in use. The pre-check only improves the
// common case; the store's key constraint settles concurrent creates.
func (s *CatwayService) Create(ctx context.Context, c models.Catway) (models.Catway, error) {
	if err := validate.Catway(c); err != nil {
		return models.Catway{}, err
	}
	exists, err := s.catways.Exists(ctx, c.CatwayNumber)
	if err != nil {
		return models.Catway{}, err
	}
	if exists {
		return models.Catway{}, models.ErrCatwayExists
	}

	saved, err := s.catways.Create(ctx, c)
	if err != nil {
		return models.Catway{}, err
	}
	s.audit.record(ctx, entityCatway, strconv.Itoa(saved.CatwayNumber), models.AuditCreated, map[string]any{
		"catwayType":  saved.CatwayType,
		"catwayState": saved.CatwayState,
	})
	return saved, nil
}

// Update changes the state of a catway. Number and type are fixed at creation.
func (s *CatwayService) Update(ctx context.Context, number int, p models.CatwayPatch) (models.Catway, error) {
	cur, err := s.catways.GetByNumber(ctx, number)
	if err != nil {
		return models.Catway{}, err
	}
	if err := validate.CatwayPatch(cur, p); err != nil {
		return models.Catway{}, err
	}
	if p.CatwayState == nil {
		return cur, nil
	}

	cur.CatwayState = *p.CatwayState
	saved, err := s.catways.Update(ctx, cur)
	if err != nil {
		return models.Catway{}, err
	}
	s.audit.record(ctx, entityCatway, strconv.Itoa(number), models.AuditUpdated, map[string]any{
		"catwayState": saved.CatwayState,
	})
	return saved, nil
}

// Delete refuses with models.ErrCatwayInUse while a reservation of the catway
// has not ended.
func (s *CatwayService) Delete(ctx context.Context, number int) error {
	if err := s.catways.Delete(ctx, number, s.now()); err != nil {
		return err
	}
	s.audit.record(ctx, entityCatway, strconv.Itoa(number), models.AuditDeleted, nil)
	return nil
}
