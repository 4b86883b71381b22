// internal/api/staffing/handlers.go
package staffing

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/coregymclub/core-gym-public/internal/api/apiutil"
	"github.com/coregymclub/core-gym-public/internal/staffing"
)

var (
	client     *staffing.Client
	clientOnce sync.Once
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(c *staffing.Client) {
	if c == nil {
		return
	}
	clientOnce.Do(func() {
		client = c
	})
}

type todayResponse struct {
	Today *staffing.TodayResponse `json:"today"`
	Error string                  `json:"error,omitempty"`
}

type weekResponse struct {
	Week  *staffing.WeekResponse `json:"week"`
	Error string                 `json:"error,omitempty"`
}

type statusResponse struct {
	ClubID int             `json:"clubId"`
	Status staffing.Status `json:"status"`
	Error  string          `json:"error,omitempty"`
}

// /api/v1/staffing/today
func HandleToday(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if client == nil {
		logger.Error().Msg("Staffing client not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	today, err := client.FetchToday(r.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to fetch today staffing")
		apiutil.WriteJSON(w, http.StatusOK, todayResponse{Error: "Kunde inte hämta bemanningsdata"})
		return
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, todayResponse{Today: today}); err != nil {
		logger.Error().Err(err).Msg("Failed to write today staffing response")
	}
}

// /api/v1/staffing/week
func HandleWeek(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if client == nil {
		logger.Error().Msg("Staffing client not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	week, err := client.FetchWeek(r.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to fetch week staffing")
		apiutil.WriteJSON(w, http.StatusOK, weekResponse{Error: "Kunde inte hämta bemanningsdata"})
		return
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, weekResponse{Week: week}); err != nil {
		logger.Error().Err(err).Msg("Failed to write week staffing response")
	}
}

// /api/v1/staffing/status
func HandleStatus(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if client == nil {
		logger.Error().Msg("Staffing client not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	clubID, err := strconv.Atoi(r.URL.Query().Get("club"))
	if err != nil || clubID <= 0 {
		apiutil.WriteError(w, http.StatusBadRequest, "club must be a positive integer")
		return
	}

	// Both tables degrade to nil on failure; the deriver treats missing
	// data as unstaffed.
	today, todayErr := client.FetchToday(r.Context())
	week, weekErr := client.FetchWeek(r.Context())
	if todayErr != nil {
		logger.Error().Err(todayErr).Int("club_id", clubID).Msg("Failed to fetch today staffing")
	}
	if weekErr != nil {
		logger.Error().Err(weekErr).Int("club_id", clubID).Msg("Failed to fetch week staffing")
	}

	response := statusResponse{
		ClubID: clubID,
		Status: staffing.DeriveStatus(today, week, clubID, time.Now()),
	}
	if todayErr != nil && weekErr != nil {
		response.Error = "Kunde inte hämta bemanningsdata"
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, response); err != nil {
		logger.Error().Err(err).Int("club_id", clubID).Msg("Failed to write staffing status response")
	}
}
