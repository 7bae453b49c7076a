package httpx

import (
	"context"
	"net/http"

	domainauth "github.com/nexora/corpsite-api/internal/domain/auth"
	"github.com/nexora/corpsite-api/internal/domain/model"
	apperrors "github.com/nexora/corpsite-api/internal/errors"
)

// UsersRepo is the slice of the user repository the handlers use.
type UsersRepo interface {
	List(ctx context.Context, limit, offset int) ([]*model.User, error)
	UpdateRoles(ctx context.Context, id string, roles []domainauth.RoleRef) (*model.User, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// UserHandlers provides HTTP handlers for account administration.
type UserHandlers struct {
	Repo UsersRepo
}

// List returns accounts for administration.
// GET /api/admin/users?limit=50&offset=0.
func (h *UserHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := listParams(r)
	users, err := h.Repo.List(r.Context(), limit, offset)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"users": users})
}

type updateRolesRequest struct {
	Roles []domainauth.RoleRef `json:"roles"`
}

// UpdateRoles replaces an account's role set.
// PUT /api/admin/users/{id}/roles.
func (h *UserHandlers) UpdateRoles(w http.ResponseWriter, r *http.Request) {
	var req updateRolesRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	updated, err := h.Repo.UpdateRoles(r.Context(), r.PathValue("id"), req.Roles)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, updated)
}

// Delete removes an account. Administrators cannot delete themselves; losing
// the last admin mid-session would lock the back office.
// DELETE /api/admin/users/{id}.
func (h *UserHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if MustSession(r.Context()).UserID == id {
		WriteAppError(w, apperrors.Validation("You cannot delete your own account."))
		return
	}

	deleted, err := h.Repo.Delete(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	if !deleted {
		WriteAppError(w, apperrors.NotFound("User not found."))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
