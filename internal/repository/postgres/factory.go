package postgres

import (
	"context"
	"database/sql"

	repo "github.com/baharkarakas/marina-backend/internal/repository"
)

// Repositories bundles the Postgres gateway. It also answers health pings.
type Repositories struct {
	Catways      repo.Catways
	Reservations repo.Reservations
	Users        repo.Users
	AuditLogs    repo.AuditLogs

	db *sql.DB
}

func NewRepositories(db *sql.DB) Repositories {
	return Repositories{
		Catways:      NewCatways(db),
		Reservations: NewReservations(db),
		Users:        NewUsers(db),
		AuditLogs:    NewAuditLogs(db),
		db:           db,
	}
}

func (r Repositories) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
