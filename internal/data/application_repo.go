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

// ApplicationRepo provides database operations for job applications. It also
// serves as the pending-count source for the applications badge.
type ApplicationRepo struct {
	DB *sql.DB
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(db *sql.DB) *ApplicationRepo {
	return &ApplicationRepo{DB: db}
}

const applicationColumns = `id, career_id, applicant, email, phone, resume_url, cover_note, status, reviewed_by, created_at, updated_at`

const (
	applicationListQuery = `
		SELECT ` + applicationColumns + `
		FROM job_applications
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	applicationListByStatusQuery = `
		SELECT ` + applicationColumns + `
		FROM job_applications
		WHERE status = $3
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	applicationPendingCountQuery = `
		SELECT count(*) FROM job_applications WHERE status = 'pending'`
)

// Create inserts a new application in pending status.
func (r *ApplicationRepo) Create(ctx context.Context, req *model.CreateApplicationRequest) (*model.JobApplication, error) {
	if req == nil {
		return nil, errors.New("create application request is required")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.JobApplication
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO job_applications (career_id, applicant, email, phone, resume_url, cover_note)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING `+applicationColumns,
			req.CareerID, req.Applicant, req.Email, req.Phone, req.ResumeURL, req.CoverNote,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.JobApplication])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// List retrieves applications with pagination, optionally filtered by status.
func (r *ApplicationRepo) List(ctx context.Context, limit, offset int, status *model.ApplicationStatus) ([]*model.JobApplication, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := applicationListQuery
	args := []any{limit, offset}
	if status != nil {
		query = applicationListByStatusQuery
		args = append(args, *status)
	}

	var rowsOut []model.JobApplication
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.JobApplication])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", apperrors.MapDBError(err))
	}

	res := make([]*model.JobApplication, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// UpdateStatus moves an application to a new review status and records who
// reviewed it.
func (r *ApplicationRepo) UpdateStatus(ctx context.Context, id string, status model.ApplicationStatus, reviewedBy string) (*model.JobApplication, error) {
	if !status.Valid() {
		return nil, apperrors.ValidationField("status", "Unknown application status.")
	}

	var out model.JobApplication
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE job_applications
			SET status = $2, reviewed_by = $3, updated_at = now()
			WHERE id = $1
			RETURNING `+applicationColumns,
			id, status, reviewedBy,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.JobApplication])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// Category identifies this repo's badge category.
func (r *ApplicationRepo) Category() model.CountCategory {
	return model.CountApplications
}

// PendingCount returns the number of applications awaiting review.
func (r *ApplicationRepo) PendingCount(ctx context.Context) (int, error) {
	var n int
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, applicationPendingCountQuery).Scan(&n)
	})
	if err != nil {
		return 0, apperrors.MapDBError(err)
	}
	return n, nil
}
