// Package memory is an in-process implementation of the repository
// interfaces. It enforces the same keys and constraints as the Postgres
// schema and is safe for concurrent use.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/baharkarakas/marina-backend/internal/models"
	repo "github.com/baharkarakas/marina-backend/internal/repository"
)

type store struct {
	mu           sync.RWMutex
	catways      map[int]models.Catway
	reservations map[string]models.Reservation
	users        map[string]models.User
	emails       map[string]string // email -> user id
	audit        []models.AuditLog
	now          func() time.Time
}

// Repositories mirrors postgres.Repositories over a shared in-memory store.
type Repositories struct {
	Catways      repo.Catways
	Reservations repo.Reservations
	Users        repo.Users
	AuditLogs    *AuditLogs

	s *store
}

func NewRepositories() Repositories {
	s := &store{
		catways:      map[int]models.Catway{},
		reservations: map[string]models.Reservation{},
		users:        map[string]models.User{},
		emails:       map[string]string{},
		now:          func() time.Time { return time.Now().UTC() },
	}
	return Repositories{
		Catways:      &Catways{s: s},
		Reservations: &Reservations{s: s},
		Users:        &Users{s: s},
		AuditLogs:    &AuditLogs{s: s},
		s:            s,
	}
}

func (r Repositories) Ping(ctx context.Context) error {
	return ctx.Err()
}

func sortCatways(cs []models.Catway) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].CatwayNumber < cs[j].CatwayNumber })
}

func sortReservations(rs []models.Reservation) {
	sort.Slice(rs, func(i, j int) bool {
		if !rs[i].StartDate.Equal(rs[j].StartDate) {
			return rs[i].StartDate.Before(rs[j].StartDate)
		}
		if !rs[i].CreatedAt.Equal(rs[j].CreatedAt) {
			return rs[i].CreatedAt.Before(rs[j].CreatedAt)
		}
		return rs[i].ID < rs[j].ID
	})
}
