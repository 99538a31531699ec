package repository

import (
	"context"
	"time"

	"github.com/baharkarakas/marina-backend/internal/models"
)

// Each operation is atomic for a single record. Not-found errors are the
// entity-specific sentinels of the models package; unique violations surface
// as models.ErrDuplicateKey.

type Catways interface {
	Create(ctx context.Context, c models.Catway) (models.Catway, error)
	GetByNumber(ctx context.Context, number int) (models.Catway, error)
	Exists(ctx context.Context, number int) (bool, error)
	List(ctx context.Context) ([]models.Catway, error)
	// Update writes type and state of the catway identified by c.CatwayNumber.
	Update(ctx context.Context, c models.Catway) (models.Catway, error)
	// Delete fails with models.ErrCatwayInUse when a reservation of the
	// catway ends after activeAfter.
	Delete(ctx context.Context, number int, activeAfter time.Time) error
	Count(ctx context.Context) (int, error)
}

type Reservations interface {
	Create(ctx context.Context, r models.Reservation) (models.Reservation, error)
	GetByID(ctx context.Context, id string) (models.Reservation, error)
	List(ctx context.Context) ([]models.Reservation, error)
	ListByCatway(ctx context.Context, number int) ([]models.Reservation, error)
	// ListActiveAt returns reservations with StartDate <= at <= EndDate.
	ListActiveAt(ctx context.Context, at time.Time) ([]models.Reservation, error)
	Update(ctx context.Context, r models.Reservation) (models.Reservation, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type Users interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	// Update writes username and password hash of the user identified by u.ID.
	Update(ctx context.Context, u models.User) (models.User, error)
	Delete(ctx context.Context, id string) error
	DeleteByEmail(ctx context.Context, email string) error
	Count(ctx context.Context) (int, error)
}

type AuditLogs interface {
	Create(ctx context.Context, l models.AuditLog) error
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
