package httpx

import (
	"context"
	"net/http"

	"github.com/nexora/corpsite-api/internal/domain/model"
)

// CallbacksRepo is the slice of the callback repository the handlers use.
type CallbacksRepo interface {
	Create(ctx context.Context, req *model.CreateCallbackRequest) (*model.CallbackRequest, error)
	List(ctx context.Context, limit, offset int) ([]*model.CallbackRequest, error)
	MarkHandled(ctx context.Context, id, handledBy string) (*model.CallbackRequest, error)
}

// CallbackHandlers provides HTTP handlers for callback requests.
type CallbackHandlers struct {
	Repo CallbacksRepo
}

// Submit accepts a public "call me back" request.
// POST /api/callback-requests.
func (h *CallbackHandlers) Submit(w http.ResponseWriter, r *http.Request) {
	var req model.CreateCallbackRequest
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

// List returns callback requests for the back office.
// GET /api/admin/callback-requests?limit=50&offset=0.
func (h *CallbackHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := listParams(r)
	reqs, err := h.Repo.List(r.Context(), limit, offset)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"callback_requests": reqs})
}

// MarkHandled flags a request as handled by the current session's user.
// POST /api/admin/callback-requests/{id}/handled.
func (h *CallbackHandlers) MarkHandled(w http.ResponseWriter, r *http.Request) {
	agent := MustSession(r.Context()).Email
	updated, err := h.Repo.MarkHandled(r.Context(), r.PathValue("id"), agent)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, updated)
}
