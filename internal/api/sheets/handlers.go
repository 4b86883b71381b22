// internal/api/sheets/handlers.go
package sheets

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/coregymclub/core-gym-public/internal/api/apiutil"
	"github.com/coregymclub/core-gym-public/internal/sheets"
)

// Handlers serves panel state through an injected store, so tests and
// sessions can run against isolated instances.
type Handlers struct {
	store *sheets.Store
}

func NewHandlers(store *sheets.Store) *Handlers {
	return &Handlers{store: store}
}

// GET /api/v1/sheets
func (h *Handlers) HandleState(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if err := apiutil.WriteJSON(w, http.StatusOK, h.store.Snapshot()); err != nil {
		logger.Error().Err(err).Msg("Failed to write sheet state response")
	}
}

// POST /api/v1/sheets/{name}/open
func (h *Handlers) HandleOpen(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	name := sheets.Name(r.PathValue("name"))

	var payload sheets.Payload
	if r.Body != nil && r.ContentLength != 0 {
		if err := apiutil.DecodeJSON(r, &payload); err != nil {
			apiutil.WriteError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	if err := h.store.Open(name, payload); err != nil {
		if errors.Is(err, sheets.ErrUnknownSheet) {
			apiutil.WriteError(w, http.StatusNotFound, "Unknown sheet")
			return
		}
		logger.Error().Err(err).Str("sheet", string(name)).Msg("Failed to open sheet")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	state, _ := h.store.Get(name)
	if err := apiutil.WriteJSON(w, http.StatusOK, state); err != nil {
		logger.Error().Err(err).Str("sheet", string(name)).Msg("Failed to write sheet response")
	}
}

// POST /api/v1/sheets/{name}/close
func (h *Handlers) HandleClose(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	name := sheets.Name(r.PathValue("name"))

	if err := h.store.Close(name); err != nil {
		if errors.Is(err, sheets.ErrUnknownSheet) {
			apiutil.WriteError(w, http.StatusNotFound, "Unknown sheet")
			return
		}
		logger.Error().Err(err).Str("sheet", string(name)).Msg("Failed to close sheet")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	state, _ := h.store.Get(name)
	if err := apiutil.WriteJSON(w, http.StatusOK, state); err != nil {
		logger.Error().Err(err).Str("sheet", string(name)).Msg("Failed to write sheet response")
	}
}

// POST /api/v1/sheets/close-all
func (h *Handlers) HandleCloseAll(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	h.store.CloseAll()
	if err := apiutil.WriteJSON(w, http.StatusOK, h.store.Snapshot()); err != nil {
		logger.Error().Err(err).Msg("Failed to write sheet state response")
	}
}
