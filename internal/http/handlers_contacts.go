package httpx

import (
	"context"
	"net/http"

	"github.com/nexora/corpsite-api/internal/domain/model"
)

// ContactsRepo is the slice of the contact repository the handlers use.
type ContactsRepo interface {
	Create(ctx context.Context, req *model.CreateContactRequest) (*model.ContactMessage, error)
	List(ctx context.Context, limit, offset int) ([]*model.ContactMessage, error)
	MarkRead(ctx context.Context, id string) (*model.ContactMessage, error)
}

// ContactHandlers provides HTTP handlers for contact messages.
type ContactHandlers struct {
	Repo ContactsRepo
}

// Submit accepts a public contact-form message.
// POST /api/contact.
func (h *ContactHandlers) Submit(w http.ResponseWriter, r *http.Request) {
	var req model.CreateContactRequest
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

// List returns messages for the back office.
// GET /api/admin/contact-messages?limit=50&offset=0.
func (h *ContactHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := listParams(r)
	msgs, err := h.Repo.List(r.Context(), limit, offset)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"messages": msgs})
}

// MarkRead flags a message as read, dropping it from the pending badge.
// POST /api/admin/contact-messages/{id}/read.
func (h *ContactHandlers) MarkRead(w http.ResponseWriter, r *http.Request) {
	updated, err := h.Repo.MarkRead(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, updated)
}
