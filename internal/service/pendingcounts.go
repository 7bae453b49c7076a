package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nexora/corpsite-api/internal/domain/model"
	"github.com/nexora/corpsite-api/internal/ports"
)

const (
	defaultRefreshInterval = 30 * time.Second
	defaultFetchTimeout    = 5 * time.Second
)

// PendingCountServiceOptions groups dependencies for PendingCountService.
type PendingCountServiceOptions struct {
	Sources []ports.PendingCountSource

	// Snapshots optionally shares the latest snapshot across instances.
	Snapshots ports.CountSnapshotStore
	Logger    *slog.Logger

	RefreshInterval time.Duration
	FetchTimeout    time.Duration
}

// PendingCountService aggregates per-category pending counts into one
// snapshot for navigation badges. Each category is fetched independently and
// a failed category never blanks its siblings; it keeps its previous value
// and is marked stale instead.
//
// The service is generation-guarded: Invalidate bumps a counter and any fetch
// started under an older generation is discarded when it lands, so counts
// fetched for a session that has since logged out never reappear.
type PendingCountService struct {
	sources      []ports.PendingCountSource
	snapshots    ports.CountSnapshotStore
	logger       *slog.Logger
	interval     time.Duration
	fetchTimeout time.Duration

	mu   sync.Mutex
	snap model.PendingCounts
	gen  uint64
}

// NewPendingCountService constructs a new PendingCountService.
func NewPendingCountService(opts PendingCountServiceOptions) *PendingCountService {
	interval := opts.RefreshInterval
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	timeout := opts.FetchTimeout
	if timeout <= 0 || timeout > interval {
		timeout = min(defaultFetchTimeout, interval)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &PendingCountService{
		sources:      opts.Sources,
		snapshots:    opts.Snapshots,
		logger:       logger.With("component", "pending_counts"),
		interval:     interval,
		fetchTimeout: timeout,
		snap:         model.EmptyPendingCounts(),
	}
}

// Snapshot returns the current aggregate. Before the first local fetch it
// falls back to the shared snapshot store, so a freshly started instance (or
// a second browser tab landing on another instance) sees the same counts as
// everyone else.
func (s *PendingCountService) Snapshot(ctx context.Context) model.PendingCounts {
	s.mu.Lock()
	local := cloneCounts(s.snap)
	s.mu.Unlock()

	if !local.LastFetched.IsZero() || s.snapshots == nil {
		return local
	}

	shared, err := s.snapshots.LoadSnapshot(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "load shared snapshot failed", "err", err)
		return local
	}
	return shared
}

// Refresh fetches every category once and publishes a new snapshot, unless
// the service was invalidated while the fetch was in flight, in which case
// the results are discarded and the current (reset) snapshot is returned.
func (s *PendingCountService) Refresh(ctx context.Context) model.PendingCounts {
	s.mu.Lock()
	gen := s.gen
	s.snap.Loading = true
	prev := cloneCounts(s.snap)
	prev.Loading = false
	s.mu.Unlock()

	type fetchResult struct {
		count int
		err   error
	}
	results := make([]fetchResult, len(s.sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range s.sources {
		g.Go(func() error {
			fetchCtx, cancel := context.WithTimeout(gctx, s.fetchTimeout)
			defer cancel()
			n, err := src.PendingCount(fetchCtx)
			results[i] = fetchResult{count: n, err: err}
			// Per-category failures are recorded, not propagated, so one
			// broken source cannot cancel its siblings.
			return nil
		})
	}
	_ = g.Wait()

	now := time.Now()
	counts := prev.Counts
	if counts == nil {
		counts = model.EmptyPendingCounts().Counts
	}
	for i, src := range s.sources {
		cat := src.Category()
		if results[i].err != nil {
			s.logger.WarnContext(ctx, "pending count fetch failed", "category", cat, "err", results[i].err)
			stale := counts[cat]
			stale.Fresh = false
			counts[cat] = stale
			continue
		}
		counts[cat] = model.CategoryCount{Count: results[i].count, Fresh: true}
	}
	next := model.PendingCounts{Counts: counts, LastFetched: now}

	s.mu.Lock()
	if s.gen != gen {
		current := cloneCounts(s.snap)
		s.mu.Unlock()
		s.logger.InfoContext(ctx, "discarding stale refresh", "generation", gen)
		return current
	}
	s.snap = next
	s.mu.Unlock()

	if s.snapshots != nil {
		if err := s.snapshots.SaveSnapshot(ctx, next); err != nil {
			s.logger.WarnContext(ctx, "save shared snapshot failed", "err", err)
		}
	}
	return cloneCounts(next)
}

// Invalidate resets the aggregate to empty and discards any in-flight fetch.
// Called on logout so badge counts for the ended session cannot resurface.
func (s *PendingCountService) Invalidate(ctx context.Context) {
	s.mu.Lock()
	s.gen++
	s.snap = model.EmptyPendingCounts()
	s.mu.Unlock()

	if s.snapshots != nil {
		if err := s.snapshots.ClearSnapshot(ctx); err != nil {
			s.logger.WarnContext(ctx, "clear shared snapshot failed", "err", err)
		}
	}
}

// Run refreshes on an interval until ctx is canceled. It refreshes once
// immediately so badges are populated right after startup.
func (s *PendingCountService) Run(ctx context.Context) error {
	s.Refresh(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Refresh(ctx)
		}
	}
}

// cloneCounts deep-copies a snapshot so callers never share the internal map.
func cloneCounts(snap model.PendingCounts) model.PendingCounts {
	out := snap
	out.Counts = make(map[model.CountCategory]model.CategoryCount, len(snap.Counts))
	for k, v := range snap.Counts {
		out.Counts[k] = v
	}
	return out
}
