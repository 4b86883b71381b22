// internal/api/clubs/handlers.go
package clubs

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/coregymclub/core-gym-public/internal/api/apiutil"
	"github.com/coregymclub/core-gym-public/internal/clubs"
)

// /api/v1/clubs
func HandleList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	payload := map[string]any{
		"clubs":     clubs.All(),
		"offerings": clubs.OfferingsWithLocations(),
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, payload); err != nil {
		logger.Error().Err(err).Msg("Failed to write clubs response")
	}
}

// /api/v1/clubs/{slug}
func HandleDetail(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	slug := r.PathValue("slug")
	club, ok := clubs.BySlug(slug)
	if !ok {
		apiutil.WriteError(w, http.StatusNotFound, "Club not found")
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, club); err != nil {
		logger.Error().Err(err).Str("club_slug", slug).Msg("Failed to write club response")
	}
}

// /api/v1/clubs/{slug}/offerings
func HandleOfferings(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	slug := r.PathValue("slug")
	club, ok := clubs.BySlug(slug)
	if !ok {
		apiutil.WriteError(w, http.StatusNotFound, "Club not found")
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, clubs.OfferingsFor(club)); err != nil {
		logger.Error().Err(err).Str("club_slug", slug).Msg("Failed to write club offerings response")
	}
}
