package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexora/corpsite-api/internal/domain/model"
	mocksauth "github.com/nexora/corpsite-api/internal/mocks/auth"
	"github.com/nexora/corpsite-api/internal/ports"
)

// blockingSource parks PendingCount until release is closed, so tests can
// interleave an invalidation with an in-flight fetch deterministically.
type blockingSource struct {
	cat     model.CountCategory
	n       int
	release chan struct{}
}

func (b *blockingSource) Category() model.CountCategory { return b.cat }

func (b *blockingSource) PendingCount(ctx context.Context) (int, error) {
	select {
	case <-b.release:
		return b.n, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

func TestPendingCountsRefresh(t *testing.T) {
	ctx := context.Background()
	apps := mocksauth.NewStubCountSource(model.CountApplications, 4)
	contacts := mocksauth.NewStubCountSource(model.CountContacts, 2)
	callbacks := mocksauth.NewStubCountSource(model.CountCallbackRequests, 0)

	svc := NewPendingCountService(PendingCountServiceOptions{
		Sources: []ports.PendingCountSource{apps, contacts, callbacks},
	})

	snap := svc.Refresh(ctx)
	assert.False(t, snap.Loading)
	assert.False(t, snap.LastFetched.IsZero())
	assert.Equal(t, model.CategoryCount{Count: 4, Fresh: true}, snap.Counts[model.CountApplications])
	assert.Equal(t, model.CategoryCount{Count: 2, Fresh: true}, snap.Counts[model.CountContacts])
	assert.Equal(t, model.CategoryCount{Count: 0, Fresh: true}, snap.Counts[model.CountCallbackRequests])
}

func TestPendingCountsPartialFailure(t *testing.T) {
	ctx := context.Background()
	apps := mocksauth.NewStubCountSource(model.CountApplications, 4)
	contacts := mocksauth.NewStubCountSource(model.CountContacts, 2)

	svc := NewPendingCountService(PendingCountServiceOptions{
		Sources: []ports.PendingCountSource{apps, contacts},
	})

	first := svc.Refresh(ctx)
	require.Equal(t, 4, first.Counts[model.CountApplications].Count)

	// One source starts failing; its sibling keeps updating.
	apps.Fail(errors.New("relation does not exist"))
	contacts.Set(7)

	second := svc.Refresh(ctx)
	assert.Equal(t, model.CategoryCount{Count: 7, Fresh: true}, second.Counts[model.CountContacts])

	// The failed category keeps its previous value but is marked stale.
	assert.Equal(t, model.CategoryCount{Count: 4, Fresh: false}, second.Counts[model.CountApplications])
}

func TestPendingCountsInvalidateDiscardsInFlightResults(t *testing.T) {
	ctx := context.Background()
	src := &blockingSource{cat: model.CountApplications, n: 9, release: make(chan struct{})}

	svc := NewPendingCountService(PendingCountServiceOptions{
		Sources:      []ports.PendingCountSource{src},
		FetchTimeout: time.Minute,
	})

	done := make(chan model.PendingCounts, 1)
	go func() { done <- svc.Refresh(ctx) }()

	// Logout happens while the fetch is parked.
	time.Sleep(10 * time.Millisecond)
	svc.Invalidate(ctx)
	close(src.release)

	got := <-done
	assert.Equal(t, 0, got.Counts[model.CountApplications].Count)
	assert.False(t, got.Counts[model.CountApplications].Fresh)

	snap := svc.Snapshot(ctx)
	assert.True(t, snap.LastFetched.IsZero(), "stale refresh must not publish")
	assert.Equal(t, model.CategoryCount{}, snap.Counts[model.CountApplications])

	// The next session's refresh proceeds normally.
	next := svc.Refresh(ctx)
	assert.Equal(t, model.CategoryCount{Count: 9, Fresh: true}, next.Counts[model.CountApplications])
}

func TestPendingCountsSharedSnapshot(t *testing.T) {
	ctx := context.Background()
	shared := mocksauth.NewMemorySnapshotStore()

	seeded := model.EmptyPendingCounts()
	seeded.Counts[model.CountContacts] = model.CategoryCount{Count: 3, Fresh: true}
	seeded.LastFetched = time.Now()
	require.NoError(t, shared.SaveSnapshot(ctx, seeded))

	// A fresh instance without a local fetch serves the shared snapshot.
	svc := NewPendingCountService(PendingCountServiceOptions{
		Sources:   []ports.PendingCountSource{mocksauth.NewStubCountSource(model.CountContacts, 5)},
		Snapshots: shared,
	})
	snap := svc.Snapshot(ctx)
	assert.Equal(t, 3, snap.Counts[model.CountContacts].Count)

	// After a local refresh the local result wins and is written back.
	svc.Refresh(ctx)
	snap = svc.Snapshot(ctx)
	assert.Equal(t, 5, snap.Counts[model.CountContacts].Count)

	stored, err := shared.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Counts[model.CountContacts].Count)

	// Invalidation clears the shared copy too.
	svc.Invalidate(ctx)
	stored, err = shared.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.True(t, stored.LastFetched.IsZero())
}

func TestPendingCountsRunLoop(t *testing.T) {
	src := mocksauth.NewStubCountSource(model.CountApplications, 1)
	svc := NewPendingCountService(PendingCountServiceOptions{
		Sources:         []ports.PendingCountSource{src},
		RefreshInterval: 20 * time.Millisecond,
	})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Run(ctx) }()

	require.Eventually(t, func() bool { return src.Calls() >= 2 },
		time.Second, 5*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-errCh, context.Canceled)
}
