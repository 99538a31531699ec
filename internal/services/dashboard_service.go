package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/baharkarakas/marina-backend/internal/models"
	repo "github.com/baharkarakas/marina-backend/internal/repository"
)

// Dashboard summarizes the harbour at one instant.
type Dashboard struct {
	At                  time.Time            `json:"at"`
	Catways             int                  `json:"catways"`
	Reservations        int                  `json:"reservations"`
	Users               int                  `json:"users"`
	CurrentReservations []models.Reservation `json:"currentReservations"`
}

type DashboardService struct {
	catways      repo.Catways
	reservations repo.Reservations
	users        repo.Users
	now          func() time.Time
}

func NewDashboardService(c repo.Catways, r repo.Reservations, u repo.Users) *DashboardService {
	return &DashboardService{catways: c, reservations: r, users: u, now: time.Now}
}

// Stats runs the four queries concurrently and fails on the first error.
func (s *DashboardService) Stats(ctx context.Context) (Dashboard, error) {
	d := Dashboard{At: s.now().UTC()}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		d.Catways, err = s.catways.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.Reservations, err = s.reservations.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.Users, err = s.users.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.CurrentReservations, err = s.reservations.ListActiveAt(ctx, d.At)
		return err
	})
	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}
	return d, nil
}
