// internal/api/schedule/handlers.go
package schedule

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/coregymclub/core-gym-public/internal/api/apiutil"
	"github.com/coregymclub/core-gym-public/internal/schedule"
)

const (
	defaultDaysAhead = 7
	maxDaysAhead     = 31
)

var (
	aggregator     *schedule.Aggregator
	aggregatorOnce sync.Once
)

type scheduleResponse struct {
	Days  []schedule.DaySchedule `json:"days"`
	Error string                 `json:"error,omitempty"`
}

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(a *schedule.Aggregator) {
	if a == nil {
		return
	}
	aggregatorOnce.Do(func() {
		aggregator = a
	})
}

// /api/v1/schedule
func HandleSchedule(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if aggregator == nil {
		logger.Error().Msg("Schedule aggregator not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	days := defaultDaysAhead
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxDaysAhead {
			apiutil.WriteError(w, http.StatusBadRequest, "days must be between 1 and 31")
			return
		}
		days = parsed
	}

	result, err := aggregator.Fetch(r.Context(), days)
	if err != nil {
		logger.Error().Err(err).Int("days", days).Msg("Failed to fetch schedule")
		apiutil.WriteJSON(w, http.StatusOK, scheduleResponse{
			Days:  []schedule.DaySchedule{},
			Error: "Kunde inte hämta schemat",
		})
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, scheduleResponse{Days: result}); err != nil {
		logger.Error().Err(err).Msg("Failed to write schedule response")
	}
}
