package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nexora/corpsite-api/internal/data/pgxutil"
	"github.com/nexora/corpsite-api/internal/domain/model"
	apperrors "github.com/nexora/corpsite-api/internal/errors"
)

// CallbackRepo provides database operations for callback requests. It also
// serves as the pending-count source for the callback-requests badge.
type CallbackRepo struct {
	DB *sql.DB
}

// NewCallbackRepo creates a new CallbackRepo.
func NewCallbackRepo(db *sql.DB) *CallbackRepo {
	return &CallbackRepo{DB: db}
}

const callbackColumns = `id, name, phone, topic, handled, handled_by, created_at`

const (
	callbackListQuery = `
		SELECT ` + callbackColumns + `
		FROM callback_requests
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	callbackNewCountQuery = `
		SELECT count(*) FROM callback_requests WHERE NOT handled`
)

// Create inserts a new unhandled callback request.
func (r *CallbackRepo) Create(ctx context.Context, req *model.CreateCallbackRequest) (*model.CallbackRequest, error) {
	if req == nil {
		return nil, errors.New("create callback request is required")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.CallbackRequest
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO callback_requests (name, phone, topic)
			VALUES ($1, $2, $3)
			RETURNING `+callbackColumns,
			req.Name, req.Phone, req.Topic,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.CallbackRequest])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// List retrieves callback requests with pagination, newest first.
func (r *CallbackRepo) List(ctx context.Context, limit, offset int) ([]*model.CallbackRequest, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rowsOut []model.CallbackRequest
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, callbackListQuery, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.CallbackRequest])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list callback requests: %w", apperrors.MapDBError(err))
	}

	res := make([]*model.CallbackRequest, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// MarkHandled flags a request as handled and records who took it.
func (r *CallbackRepo) MarkHandled(ctx context.Context, id, handledBy string) (*model.CallbackRequest, error) {
	var out model.CallbackRequest
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE callback_requests
			SET handled = true, handled_by = $2
			WHERE id = $1
			RETURNING `+callbackColumns,
			id, handledBy,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.CallbackRequest])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// Category identifies this repo's badge category.
func (r *CallbackRepo) Category() model.CountCategory {
	return model.CountCallbackRequests
}

// PendingCount returns the number of unhandled callback requests.
func (r *CallbackRepo) PendingCount(ctx context.Context) (int, error) {
	var n int
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, callbackNewCountQuery).Scan(&n)
	})
	if err != nil {
		return 0, apperrors.MapDBError(err)
	}
	return n, nil
}
