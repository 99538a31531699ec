package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/baharkarakas/marina-backend/internal/dbx"
	"github.com/baharkarakas/marina-backend/internal/models"
	"github.com/baharkarakas/marina-backend/internal/repository"
)

var _ repository.Reservations = (*reservationsRepo)(nil)

type reservationsRepo struct{ db dbx.DBTX }

func NewReservations(db dbx.DBTX) repository.Reservations {
	return &reservationsRepo{db: db}
}

const reservationColumns = `id, catway_number, client_name, boat_name, start_date, end_date, created_at, updated_at`

func scanReservation(row rowScanner) (models.Reservation, error) {
	var r models.Reservation
	err := row.Scan(&r.ID, &r.CatwayNumber, &r.ClientName, &r.BoatName,
		&r.StartDate, &r.EndDate, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

func (r *reservationsRepo) Create(ctx context.Context, res models.Reservation) (models.Reservation, error) {
	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	saved, err := scanReservation(r.db.QueryRowContext(ctx,
		`INSERT INTO reservations (id, catway_number, client_name, boat_name, start_date, end_date)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+reservationColumns,
		res.ID, res.CatwayNumber, res.ClientName, res.BoatName, res.StartDate, res.EndDate,
	))
	if err != nil {
		return models.Reservation{}, mapErr(err, "create reservation", nil, models.ErrDuplicateKey)
	}
	return saved, nil
}

func (r *reservationsRepo) GetByID(ctx context.Context, id string) (models.Reservation, error) {
	res, err := scanReservation(r.db.QueryRowContext(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id,
	))
	if err != nil {
		return models.Reservation{}, mapErr(err, "get reservation", models.ErrReservationNotFound, nil)
	}
	return res, nil
}

func (r *reservationsRepo) List(ctx context.Context) ([]models.Reservation, error) {
	return r.list(ctx, "list reservations",
		`SELECT `+reservationColumns+` FROM reservations ORDER BY start_date, created_at`)
}

func (r *reservationsRepo) ListByCatway(ctx context.Context, number int) ([]models.Reservation, error) {
	return r.list(ctx, "list catway reservations",
		`SELECT `+reservationColumns+` FROM reservations WHERE catway_number = $1 ORDER BY start_date, created_at`,
		number)
}

func (r *reservationsRepo) ListActiveAt(ctx context.Context, at time.Time) ([]models.Reservation, error) {
	return r.list(ctx, "list current reservations",
		`SELECT `+reservationColumns+` FROM reservations WHERE start_date <= $1 AND end_date >= $1 ORDER BY start_date, created_at`,
		at)
}

func (r *reservationsRepo) list(ctx context.Context, op, query string, args ...any) ([]models.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapErr(err, op, nil, nil)
	}
	defer rows.Close()

	out := []models.Reservation{}
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, mapErr(err, op, nil, nil)
		}
		out = append(out, res)
	}
	return out, mapErr(rows.Err(), op, nil, nil)
}

func (r *reservationsRepo) Update(ctx context.Context, res models.Reservation) (models.Reservation, error) {
	saved, err := scanReservation(r.db.QueryRowContext(ctx,
		`UPDATE reservations
		    SET catway_number = $2, client_name = $3, boat_name = $4,
		        start_date = $5, end_date = $6, updated_at = now()
		  WHERE id = $1
		  RETURNING `+reservationColumns,
		res.ID, res.CatwayNumber, res.ClientName, res.BoatName, res.StartDate, res.EndDate,
	))
	if err != nil {
		return models.Reservation{}, mapErr(err, "update reservation", models.ErrReservationNotFound, nil)
	}
	return saved, nil
}

func (r *reservationsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return mapErr(err, "delete reservation", nil, nil)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return mapErr(err, "delete reservation", nil, nil)
	}
	if n == 0 {
		return models.ErrReservationNotFound
	}
	return nil
}

func (r *reservationsRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM reservations`).Scan(&n); err != nil {
		return 0, mapErr(err, "count reservations", nil, nil)
	}
	return n, nil
}
