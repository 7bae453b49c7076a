package httpx

import (
	"context"
	"net/http"

	"github.com/nexora/corpsite-api/internal/domain/model"
	apperrors "github.com/nexora/corpsite-api/internal/errors"
)

// ApplicationsRepo is the slice of the application repository the handlers use.
type ApplicationsRepo interface {
	Create(ctx context.Context, req *model.CreateApplicationRequest) (*model.JobApplication, error)
	List(ctx context.Context, limit, offset int, status *model.ApplicationStatus) ([]*model.JobApplication, error)
	UpdateStatus(ctx context.Context, id string, status model.ApplicationStatus, reviewedBy string) (*model.JobApplication, error)
}

// ApplicationHandlers provides HTTP handlers for job applications.
type ApplicationHandlers struct {
	Repo ApplicationsRepo
}

// Submit accepts a public application.
// POST /api/applications.
func (h *ApplicationHandlers) Submit(w http.ResponseWriter, r *http.Request) {
	var req model.CreateApplicationRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	created, err := h.Repo.Create(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, created)
}

// List returns applications for review.
// GET /api/admin/applications?status=pending&limit=50&offset=0.
func (h *ApplicationHandlers) List(w http.ResponseWriter, r *http.Request) {
	var status *model.ApplicationStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed, ok := model.ParseApplicationStatus(raw)
		if !ok {
			WriteAppError(w, apperrors.ValidationField("status", "Unknown application status."))
			return
		}
		status = &parsed
	}

	limit, offset := listParams(r)
	apps, err := h.Repo.List(r.Context(), limit, offset, status)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"applications": apps})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus moves an application through review. The reviewer identity is
// taken from the session, never from the request body.
// PATCH /api/admin/applications/{id}/status.
func (h *ApplicationHandlers) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	status, ok := model.ParseApplicationStatus(req.Status)
	if !ok {
		WriteAppError(w, apperrors.ValidationField("status", "Unknown application status."))
		return
	}

	reviewer := MustSession(r.Context()).Email
	updated, err := h.Repo.UpdateStatus(r.Context(), r.PathValue("id"), status, reviewer)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, updated)
}
