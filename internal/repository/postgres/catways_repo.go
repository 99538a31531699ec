package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/baharkarakas/marina-backend/internal/dbx"
	"github.com/baharkarakas/marina-backend/internal/models"
	"github.com/baharkarakas/marina-backend/internal/repository"
)

var _ repository.Catways = (*catwaysRepo)(nil)

type catwaysRepo struct{ db *sql.DB }

func NewCatways(db *sql.DB) repository.Catways {
	return &catwaysRepo{db: db}
}

const catwayColumns = `catway_number, catway_type, catway_state, created_at, updated_at`

func scanCatway(row rowScanner) (models.Catway, error) {
	var c models.Catway
	err := row.Scan(&c.CatwayNumber, &c.CatwayType, &c.CatwayState, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *catwaysRepo) Create(ctx context.Context, c models.Catway) (models.Catway, error) {
	saved, err := scanCatway(r.db.QueryRowContext(ctx,
		`INSERT INTO catways (catway_number, catway_type, catway_state)
		 VALUES ($1, $2, $3)
		 RETURNING `+catwayColumns,
		c.CatwayNumber, string(c.CatwayType), c.CatwayState,
	))
	if err != nil {
		return models.Catway{}, mapErr(err, "create catway", nil, models.ErrCatwayExists)
	}
	return saved, nil
}

func (r *catwaysRepo) GetByNumber(ctx context.Context, number int) (models.Catway, error) {
	c, err := scanCatway(r.db.QueryRowContext(ctx,
		`SELECT `+catwayColumns+` FROM catways WHERE catway_number = $1`, number,
	))
	if err != nil {
		return models.Catway{}, mapErr(err, "get catway", models.ErrCatwayNotFound, nil)
	}
	return c, nil
}

func (r *catwaysRepo) Exists(ctx context.Context, number int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM catways WHERE catway_number = $1)`, number,
	).Scan(&exists)
	if err != nil {
		return false, mapErr(err, "check catway", nil, nil)
	}
	return exists, nil
}

func (r *catwaysRepo) List(ctx context.Context) ([]models.Catway, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+catwayColumns+` FROM catways ORDER BY catway_number`)
	if err != nil {
		return nil, mapErr(err, "list catways", nil, nil)
	}
	defer rows.Close()

	out := []models.Catway{}
	for rows.Next() {
		c, err := scanCatway(rows)
		if err != nil {
			return nil, mapErr(err, "scan catway", nil, nil)
		}
		out = append(out, c)
	}
	return out, mapErr(rows.Err(), "list catways", nil, nil)
}

func (r *catwaysRepo) Update(ctx context.Context, c models.Catway) (models.Catway, error) {
	saved, err := scanCatway(r.db.QueryRowContext(ctx,
		`UPDATE catways
		    SET catway_type = $2, catway_state = $3, updated_at = now()
		  WHERE catway_number = $1
		  RETURNING `+catwayColumns,
		c.CatwayNumber, string(c.CatwayType), c.CatwayState,
	))
	if err != nil {
		return models.Catway{}, mapErr(err, "update catway", models.ErrCatwayNotFound, nil)
	}
	return saved, nil
}

// Delete locks the catway row so the active-reservation check and the delete
// see the same catway.
func (r *catwaysRepo) Delete(ctx context.Context, number int, activeAfter time.Time) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var locked int
		err := tx.QueryRowContext(ctx,
			`SELECT catway_number FROM catways WHERE catway_number = $1 FOR UPDATE`, number,
		).Scan(&locked)
		if err != nil {
			return mapErr(err, "lock catway", models.ErrCatwayNotFound, nil)
		}

		var inUse bool
		err = tx.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM reservations WHERE catway_number = $1 AND end_date > $2)`,
			number, activeAfter,
		).Scan(&inUse)
		if err != nil {
			return mapErr(err, "check catway reservations", nil, nil)
		}
		if inUse {
			return models.ErrCatwayInUse
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM catways WHERE catway_number = $1`, number); err != nil {
			return mapErr(err, "delete catway", nil, nil)
		}
		return nil
	})
}

func (r *catwaysRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM catways`).Scan(&n); err != nil {
		return 0, mapErr(err, "count catways", nil, nil)
	}
	return n, nil
}
