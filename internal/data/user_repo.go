package data

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nexora/corpsite-api/internal/data/pgxutil"
	domainauth "github.com/nexora/corpsite-api/internal/domain/auth"
	"github.com/nexora/corpsite-api/internal/domain/model"
	apperrors "github.com/nexora/corpsite-api/internal/errors"
)

// UserRepo provides database operations for back-office accounts.
//
// The roles column is jsonb and historically holds a mix of bare strings and
// {"name": ...} objects; RoleRef absorbs both shapes on scan, so the repo
// never normalizes stored rows in place.
type UserRepo struct {
	DB *sql.DB
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{DB: db}
}

const userColumns = `id, name, email, password_hash, roles, created_at, updated_at`

const (
	userGetByIDQuery = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1`

	userGetByEmailQuery = `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1`

	userListQuery = `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
)

// Create inserts a new account. A duplicate email maps to a Conflict error.
func (r *UserRepo) Create(ctx context.Context, account *model.NewUser) (*model.User, error) {
	if account == nil {
		return nil, errors.New("new user is required")
	}

	rolesJSON, err := encodeRoles(account.Roles)
	if err != nil {
		return nil, err
	}

	var out model.User
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO users (name, email, password_hash, roles)
			VALUES ($1, $2, $3, $4::jsonb)
			RETURNING `+userColumns,
			account.Name, account.Email, account.PasswordHash, rolesJSON,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves an account by ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	return r.getByQuery(ctx, userGetByIDQuery, id)
}

// GetByEmail retrieves an account by its normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getByQuery(ctx, userGetByEmailQuery, email)
}

// List retrieves accounts with pagination, newest first.
func (r *UserRepo) List(ctx context.Context, limit, offset int) ([]*model.User, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rowsOut []model.User
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, userListQuery, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.User])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", apperrors.MapDBError(err))
	}

	res := make([]*model.User, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// UpdateRoles replaces an account's role set.
func (r *UserRepo) UpdateRoles(ctx context.Context, id string, roles []domainauth.RoleRef) (*model.User, error) {
	rolesJSON, err := encodeRoles(roles)
	if err != nil {
		return nil, err
	}

	var out model.User
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE users
			SET roles = $2::jsonb, updated_at = now()
			WHERE id = $1
			RETURNING `+userColumns,
			id, rolesJSON,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// Delete removes an account by ID. It reports whether a row was deleted.
func (r *UserRepo) Delete(ctx context.Context, id string) (bool, error) {
	var affected int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
		if err != nil {
			return err
		}
		affected = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete user: %w", apperrors.MapDBError(err))
	}
	return affected > 0, nil
}

func (r *UserRepo) getByQuery(ctx context.Context, q string, args ...any) (*model.User, error) {
	var user model.User
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		user, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &user, nil
}

// encodeRoles serializes role refs for the jsonb column. Empty input is stored
// as an empty array, never NULL.
func encodeRoles(roles []domainauth.RoleRef) ([]byte, error) {
	if roles == nil {
		roles = []domainauth.RoleRef{}
	}
	out, err := json.Marshal(roles)
	if err != nil {
		return nil, fmt.Errorf("encode roles: %w", err)
	}
	return out, nil
}
