// internal/api/trainers/handlers.go
package trainers

import (
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/coregymclub/core-gym-public/internal/api/apiutil"
	"github.com/coregymclub/core-gym-public/internal/trainers"
)

var (
	directory     *trainers.Directory
	directoryOnce sync.Once
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(d *trainers.Directory) {
	if d == nil {
		return
	}
	directoryOnce.Do(func() {
		directory = d
	})
}

// /api/v1/trainers
func HandleList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if directory == nil {
		logger.Error().Msg("Trainer directory not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, directory.All()); err != nil {
		logger.Error().Err(err).Msg("Failed to write trainers response")
	}
}

// /api/v1/trainers/{id}
func HandleDetail(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if directory == nil {
		logger.Error().Msg("Trainer directory not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	id := r.PathValue("id")
	trainer, ok := directory.ByID(id)
	if !ok {
		apiutil.WriteError(w, http.StatusNotFound, "Trainer not found")
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, trainer); err != nil {
		logger.Error().Err(err).Str("trainer_id", id).Msg("Failed to write trainer response")
	}
}
