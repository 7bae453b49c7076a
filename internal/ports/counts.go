package ports

import (
	"context"

	"github.com/nexora/corpsite-api/internal/domain/model"
)

// PendingCountSource supplies the current actionable-item count for one
// badge category. Each category has its own source; the aggregator never
// assumes a shared response envelope across them.
type PendingCountSource interface {
	Category() model.CountCategory
	PendingCount(ctx context.Context) (int, error)
}

// CountSnapshotStore shares the aggregator snapshot across server instances
// (and therefore across browser tabs hitting different instances).
type CountSnapshotStore interface {
	SaveSnapshot(ctx context.Context, snap model.PendingCounts) error
	LoadSnapshot(ctx context.Context) (model.PendingCounts, error)
	ClearSnapshot(ctx context.Context) error
}
