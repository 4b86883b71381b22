// internal/occupancy/refresher.go
package occupancy

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/coregymclub/core-gym-public/internal/scheduler"
)

// Refresher keeps the most recent snapshot available for serving and
// replaces it wholesale on every refresh cycle. Readers never wait on the
// upstream fetch.
type Refresher struct {
	fetcher *Fetcher

	mu       sync.RWMutex
	snapshot Snapshot
}

func NewRefresher(fetcher *Fetcher) *Refresher {
	return &Refresher{fetcher: fetcher}
}

// Refresh recomputes the snapshot now.
func (r *Refresher) Refresh(ctx context.Context) {
	snapshot := r.fetcher.Fetch(ctx)

	r.mu.Lock()
	r.snapshot = snapshot
	r.mu.Unlock()

	log.Ctx(ctx).Debug().
		Int("total", snapshot.Total).
		Int("sites", len(snapshot.Sites)).
		Msg("Occupancy snapshot refreshed")
}

// Latest returns the most recently computed snapshot. Before the first
// refresh completes it returns an empty snapshot with a zero timestamp.
func (r *Refresher) Latest() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot
}

// Schedule registers the periodic refresh job. The job also runs once at
// scheduler start so the first page load has data.
func (r *Refresher) Schedule(svc *scheduler.Service, interval time.Duration) error {
	_, err := svc.AddIntervalJob("occupancy-refresh", interval, func() {
		r.Refresh(context.Background())
	})
	return err
}
