package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/baharkarakas/marina-backend/internal/dbx"
	"github.com/baharkarakas/marina-backend/internal/models"
	"github.com/baharkarakas/marina-backend/internal/repository"
)

var _ repository.Users = (*usersRepo)(nil)

type usersRepo struct{ db dbx.DBTX }

func NewUsers(db dbx.DBTX) repository.Users {
	return &usersRepo{db: db}
}

const userColumns = `id, username, email, password_hash, created_at, updated_at`

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (r *usersRepo) Create(ctx context.Context, u models.User) (models.User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	saved, err := scanUser(r.db.QueryRowContext(ctx,
		`INSERT INTO users (id, username, email, password_hash)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+userColumns,
		u.ID, u.Username, u.Email, u.PasswordHash,
	))
	if err != nil {
		return models.User{}, mapErr(err, "create user", nil, models.ErrEmailTaken)
	}
	return saved, nil
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id,
	))
	if err != nil {
		return models.User{}, mapErr(err, "get user", models.ErrUserNotFound, nil)
	}
	return u, nil
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email,
	))
	if err != nil {
		return models.User{}, mapErr(err, "get user by email", models.ErrUserNotFound, nil)
	}
	return u, nil
}

func (r *usersRepo) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at, email`)
	if err != nil {
		return nil, mapErr(err, "list users", nil, nil)
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, mapErr(err, "scan user", nil, nil)
		}
		out = append(out, u)
	}
	return out, mapErr(rows.Err(), "list users", nil, nil)
}

func (r *usersRepo) Update(ctx context.Context, u models.User) (models.User, error) {
	saved, err := scanUser(r.db.QueryRowContext(ctx,
		`UPDATE users
		    SET username = $2, password_hash = $3, updated_at = now()
		  WHERE id = $1
		  RETURNING `+userColumns,
		u.ID, u.Username, u.PasswordHash,
	))
	if err != nil {
		return models.User{}, mapErr(err, "update user", models.ErrUserNotFound, nil)
	}
	return saved, nil
}

func (r *usersRepo) Delete(ctx context.Context, id string) error {
	return r.deleteWhere(ctx, `DELETE FROM users WHERE id = $1`, id)
}

func (r *usersRepo) DeleteByEmail(ctx context.Context, email string) error {
	return r.deleteWhere(ctx, `DELETE FROM users WHERE email = $1`, email)
}

func (r *usersRepo) deleteWhere(ctx context.Context, query string, arg any) error {
	res, err := r.db.ExecContext(ctx, query, arg)
	if err != nil {
		return mapErr(err, "delete user", nil, nil)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return mapErr(err, "delete user", nil, nil)
	}
	if n == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

func (r *usersRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM users`).Scan(&n); err != nil {
		return 0, mapErr(err, "count users", nil, nil)
	}
	return n, nil
}
