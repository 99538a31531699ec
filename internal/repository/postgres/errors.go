package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/baharkarakas/marina-backend/internal/validate"
)

// SQLSTATE codes we translate.
const (
	uniqueViolation = "23505"
	checkViolation  = "23514"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// mapErr turns driver errors into the repository error taxonomy. op names the
// failed operation in wrapped internal errors.
func mapErr(err error, op string, notFound, duplicate error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) && notFound != nil {
		return notFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			if duplicate != nil {
				return duplicate
			}
		case checkViolation:
			if pgErr.ConstraintName == "reservations_date_range" {
				return validate.Field("endDate", validate.RuleInvalidDateRange, "must be after startDate")
			}
			return validate.Field(pgErr.ConstraintName, validate.RuleFormat, "rejected by store constraint")
		}
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
