// internal/api/updates/handlers.go
package updates

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/coregymclub/core-gym-public/internal/api/apiutil"
	"github.com/coregymclub/core-gym-public/internal/updates"
)

var (
	client     *updates.Client
	clientOnce sync.Once
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(c *updates.Client) {
	if c == nil {
		return
	}
	clientOnce.Do(func() {
		client = c
	})
}

// updateItem decorates an update with the expiry fields the frontend
// renders (countdown badge, expiring-soon highlight).
type updateItem struct {
	updates.Update
	DaysLeft     int  `json:"daysLeft"`
	ExpiringSoon bool `json:"expiringSoon"`
}

type listResponse struct {
	Updates []updateItem `json:"updates"`
	Total   int          `json:"total"`
	Error   string       `json:"error,omitempty"`
}

func decorateUpdates(list []updates.Update, now time.Time) []updateItem {
	items := make([]updateItem, 0, len(list))
	for _, u := range list {
		items = append(items, updateItem{
			Update:       u,
			DaysLeft:     updates.DaysLeft(u, now),
			ExpiringSoon: updates.ExpiringSoon(u, now),
		})
	}
	return items
}

// /api/v1/updates
func HandleList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if client == nil {
		logger.Error().Msg("Updates client not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	opts := updates.ListOptions{}
	if raw := r.URL.Query().Get("clubId"); raw != "" {
		opts.ClubID, _ = strconv.Atoi(raw)
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		opts.Limit, _ = strconv.Atoi(raw)
	}

	list, err := client.List(r.Context(), opts)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to fetch updates")
		apiutil.WriteJSON(w, http.StatusOK, listResponse{
			Updates: []updateItem{},
			Error:   "Kunde inte ladda uppdateringar",
		})
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, listResponse{
		Updates: decorateUpdates(list.Updates, time.Now()),
		Total:   list.Total,
	}); err != nil {
		logger.Error().Err(err).Msg("Failed to write updates response")
	}
}
