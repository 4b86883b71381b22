// internal/api/stats/handlers.go
package stats

import (
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/coregymclub/core-gym-public/internal/api/apiutil"
	"github.com/coregymclub/core-gym-public/internal/occupancy"
)

var (
	refresher     *occupancy.Refresher
	refresherOnce sync.Once
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(r *occupancy.Refresher) {
	if r == nil {
		return
	}
	refresherOnce.Do(func() {
		refresher = r
	})
}

// /api/v1/stats
func HandleStats(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if refresher == nil {
		logger.Error().Msg("Occupancy refresher not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	snapshot := refresher.Latest()
	if err := apiutil.WriteJSON(w, http.StatusOK, snapshot); err != nil {
		logger.Error().Err(err).Msg("Failed to write stats response")
	}
}
