package httpx

import (
	"context"
	"net/http"

	"github.com/nexora/corpsite-api/internal/domain/model"
)

// CountsService supplies aggregate pending counts for navigation badges.
type CountsService interface {
	Snapshot(ctx context.Context) model.PendingCounts
	Refresh(ctx context.Context) model.PendingCounts
}

// CountHandlers provides HTTP handlers for the pending-count badges.
type CountHandlers struct {
	Svc CountsService
}

// PendingCounts returns the current badge snapshot.
// GET /api/admin/pending-counts?refresh=1.
//
// The snapshot is shared: every caller sees the same counts regardless of
// which tab or instance asked last. refresh=1 forces a fetch instead of
// serving the cached aggregate.
func (h *CountHandlers) PendingCounts(w http.ResponseWriter, r *http.Request) {
	var snap model.PendingCounts
	if r.URL.Query().Get("refresh") == "1" {
		snap = h.Svc.Refresh(r.Context())
	} else {
		snap = h.Svc.Snapshot(r.Context())
	}
	WriteJSON(w, http.StatusOK, snap)
}
