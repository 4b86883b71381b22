// internal/api/news/handlers.go
package news

import (
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/coregymclub/core-gym-public/internal/api/apiutil"
	"github.com/coregymclub/core-gym-public/internal/news"
)

var (
	client     *news.Client
	clientOnce sync.Once
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(c *news.Client) {
	if c == nil {
		return
	}
	clientOnce.Do(func() {
		client = c
	})
}

type listResponse struct {
	News    []news.Item `json:"news"`
	Total   int         `json:"total"`
	HasMore bool        `json:"hasMore"`
	Error   string      `json:"error,omitempty"`
}

// /api/v1/news
func HandleList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if client == nil {
		logger.Error().Msg("News client not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	opts := news.ListOptions{
		Site: r.URL.Query().Get("site"),
	}
	if raw := r.URL.Query().Get("categories"); raw != "" {
		opts.Categories = strings.Split(raw, ",")
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		opts.Limit, _ = strconv.Atoi(raw)
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		opts.Offset, _ = strconv.Atoi(raw)
	}

	list, err := client.List(r.Context(), opts)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to fetch news")
		apiutil.WriteJSON(w, http.StatusOK, listResponse{
			News:  []news.Item{},
			Error: "Kunde inte ladda nyheter",
		})
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, listResponse{
		News:    list.News,
		Total:   list.Total,
		HasMore: list.HasMore,
	}); err != nil {
		logger.Error().Err(err).Msg("Failed to write news response")
	}
}

// /api/v1/news/{id}
func HandleDetail(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if client == nil {
		logger.Error().Msg("News client not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	id := r.PathValue("id")
	if id == "" {
		apiutil.WriteError(w, http.StatusBadRequest, "news id is required")
		return
	}

	item, err := client.Get(r.Context(), id)
	if err != nil {
		logger.Error().Err(err).Str("news_id", id).Msg("Failed to fetch news item")
		apiutil.WriteError(w, http.StatusBadGateway, "Kunde inte ladda nyheter")
		return
	}
	if item == nil {
		apiutil.WriteError(w, http.StatusNotFound, "News item not found")
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, item); err != nil {
		logger.Error().Err(err).Str("news_id", id).Msg("Failed to write news item response")
	}
}
