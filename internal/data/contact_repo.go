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

// ContactRepo provides database operations for contact-form messages. It also
// serves as the pending-count source for the contacts badge.
type ContactRepo struct {
	DB *sql.DB
}

// NewContactRepo creates a new ContactRepo.
func NewContactRepo(db *sql.DB) *ContactRepo {
	return &ContactRepo{DB: db}
}

const contactColumns = `id, name, email, subject, message, read, created_at`

const (
	contactListQuery = `
		SELECT ` + contactColumns + `
		FROM contact_messages
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	contactUnreadCountQuery = `
		SELECT count(*) FROM contact_messages WHERE NOT read`
)

// Create inserts a new unread message.
func (r *ContactRepo) Create(ctx context.Context, req *model.CreateContactRequest) (*model.ContactMessage, error) {
	if req == nil {
		return nil, errors.New("create contact request is required")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.ContactMessage
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO contact_messages (name, email, subject, message)
			VALUES ($1, $2, $3, $4)
			RETURNING `+contactColumns,
			req.Name, req.Email, req.Subject, req.Message,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.ContactMessage])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// List retrieves messages with pagination, newest first.
func (r *ContactRepo) List(ctx context.Context, limit, offset int) ([]*model.ContactMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rowsOut []model.ContactMessage
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, contactListQuery, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.ContactMessage])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", apperrors.MapDBError(err))
	}

	res := make([]*model.ContactMessage, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// MarkRead flags a message as read.
func (r *ContactRepo) MarkRead(ctx context.Context, id string) (*model.ContactMessage, error) {
	var out model.ContactMessage
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE contact_messages
			SET read = true
			WHERE id = $1
			RETURNING `+contactColumns,
			id,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.ContactMessage])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// Category identifies this repo's badge category.
func (r *ContactRepo) Category() model.CountCategory {
	return model.CountContacts
}

// PendingCount returns the number of unread messages.
func (r *ContactRepo) PendingCount(ctx context.Context) (int, error) {
	var n int
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, contactUnreadCountQuery).Scan(&n)
	})
	if err != nil {
		return 0, apperrors.MapDBError(err)
	}
	return n, nil
}
