// internal/occupancy/snapshot.go
package occupancy

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// SiteStats is the derived visitor count for one site. Gym and Group split
// the total between the gym floor and group training; the kiosk feed only
// reports floor entries today, so Group stays zero.
type SiteStats struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	ShortName  string     `json:"shortName"`
	Gym        int        `json:"gym"`
	Group      int        `json:"group"`
	Total      int        `json:"total"`
	LastUpdate *time.Time `json:"lastUpdate"`
}

// Snapshot is a point-in-time occupancy estimate across all sites. Each
// fetch produces a complete new snapshot; there is no incremental merge.
type Snapshot struct {
	Timestamp time.Time         `json:"timestamp"`
	Total     int               `json:"total"`
	Sites     map[int]SiteStats `json:"sites"`
}

// EntrySource is the slice of the kiosk client the fetcher needs.
type EntrySource interface {
	EntriesToday(ctx context.Context, siteID int) (*EntriesResponse, error)
}

// Fetcher computes occupancy snapshots by fanning out one kiosk request per
// site. A failed or timed-out site degrades to a zero count; it never fails
// the snapshot as a whole.
type Fetcher struct {
	source      EntrySource
	siteIDs     []int
	window      time.Duration
	siteTimeout time.Duration
	now         func() time.Time
}

func NewFetcher(source EntrySource, siteIDs []int, window, siteTimeout time.Duration) *Fetcher {
	return &Fetcher{
		source:      source,
		siteIDs:     siteIDs,
		window:      window,
		siteTimeout: siteTimeout,
		now:         time.Now,
	}
}

// Fetch requests all sites concurrently and joins every result before
// building the snapshot.
func (f *Fetcher) Fetch(ctx context.Context) Snapshot {
	now := f.now()
	results := make([]*EntriesResponse, len(f.siteIDs))

	g, gctx := errgroup.WithContext(ctx)
	for i, siteID := range f.siteIDs {
		g.Go(func() error {
			siteCtx, cancel := context.WithTimeout(gctx, f.siteTimeout)
			defer cancel()

			response, err := f.source.EntriesToday(siteCtx, siteID)
			if err != nil {
				log.Ctx(ctx).Warn().Err(err).Int("site_id", siteID).Msg("Kiosk fetch failed, counting site as empty")
				response = &EntriesResponse{}
			}
			results[i] = response
			return nil
		})
	}
	// Errors are swallowed per site, so Wait only synchronizes the join.
	_ = g.Wait()

	snapshot := Snapshot{
		Timestamp: now,
		Sites:     make(map[int]SiteStats, len(f.siteIDs)),
	}
	for i, siteID := range f.siteIDs {
		stats := siteStats(siteID, results[i], f.window, now)
		snapshot.Sites[siteID] = stats
		snapshot.Total += stats.Total
	}
	return snapshot
}

// siteStats counts distinct members whose most recent entry is inside the
// trailing window. Only the latest entry per member counts; older check-ins
// by the same member are assumed superseded.
func siteStats(siteID int, response *EntriesResponse, window time.Duration, now time.Time) SiteStats {
	latest := map[int]time.Time{}
	for _, entry := range response.Entries {
		if entry.MemberID == 0 {
			continue
		}
		entryTime, ok := parseEntryTime(entry.Time)
		if !ok {
			continue
		}
		if now.Sub(entryTime) > window {
			continue
		}
		if existing, ok := latest[entry.MemberID]; !ok || entryTime.After(existing) {
			latest[entry.MemberID] = entryTime
		}
	}

	var lastUpdate *time.Time
	for _, entryTime := range latest {
		if lastUpdate == nil || entryTime.After(*lastUpdate) {
			t := entryTime
			lastUpdate = &t
		}
	}

	total := len(latest)
	return SiteStats{
		ID:         siteID,
		Name:       siteName(siteID, response.SiteName),
		ShortName:  siteShortName(response.SiteName),
		Gym:        total,
		Group:      0,
		Total:      total,
		LastUpdate: lastUpdate,
	}
}

// parseEntryTime handles the kiosk's "2026-08-31 15:18:00" format by
// normalizing the separator before parsing. Timestamps are local
// wall-clock, same as the server's zone.
func parseEntryTime(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	normalized := strings.Replace(raw, " ", "T", 1)
	t, err := time.ParseInLocation("2006-01-02T15:04:05", normalized, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func siteName(siteID int, name string) string {
	if name != "" {
		return name
	}
	return "Gym " + strconv.Itoa(siteID)
}

func siteShortName(name string) string {
	if name == "" {
		return "GYM"
	}
	short := []rune(name)
	if len(short) > 4 {
		short = short[:4]
	}
	return strings.ToUpper(string(short))
}
