// internal/api/reviews/handlers.go
package reviews

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/coregymclub/core-gym-public/internal/api/apiutil"
	"github.com/coregymclub/core-gym-public/internal/reviews"
)

var (
	client     *reviews.Client
	clientOnce sync.Once
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(c *reviews.Client) {
	if c == nil {
		return
	}
	clientOnce.Do(func() {
		client = c
	})
}

type listResponse struct {
	Reviews       []reviews.Review `json:"reviews"`
	Total         int              `json:"total"`
	AverageRating float64          `json:"averageRating,omitempty"`
	Error         string           `json:"error,omitempty"`
}

// /api/v1/reviews
func HandleList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if client == nil {
		logger.Error().Msg("Reviews client not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	opts := reviews.ListOptions{
		Featured: r.URL.Query().Get("featured") == "true",
	}
	if raw := r.URL.Query().Get("clubId"); raw != "" {
		opts.ClubID, _ = strconv.Atoi(raw)
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		opts.Limit, _ = strconv.Atoi(raw)
	}

	list, err := client.List(r.Context(), opts)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to fetch reviews")
		apiutil.WriteJSON(w, http.StatusOK, listResponse{
			Reviews: []reviews.Review{},
			Error:   "Kunde inte ladda recensioner",
		})
		return
	}

	averageRating := list.AverageRating
	if averageRating == 0 {
		averageRating = reviews.AverageRating(list.Reviews)
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, listResponse{
		Reviews:       list.Reviews,
		Total:         list.Total,
		AverageRating: averageRating,
	}); err != nil {
		logger.Error().Err(err).Msg("Failed to write reviews response")
	}
}
