// cmd/server/server.go
package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/coregymclub/core-gym-public/internal/api"
	"github.com/coregymclub/core-gym-public/internal/api/auth"
	apiclubs "github.com/coregymclub/core-gym-public/internal/api/clubs"
	apicontact "github.com/coregymclub/core-gym-public/internal/api/contact"
	apinews "github.com/coregymclub/core-gym-public/internal/api/news"
	apireviews "github.com/coregymclub/core-gym-public/internal/api/reviews"
	apischedule "github.com/coregymclub/core-gym-public/internal/api/schedule"
	apisheets "github.com/coregymclub/core-gym-public/internal/api/sheets"
	apistaffing "github.com/coregymclub/core-gym-public/internal/api/staffing"
	apistats "github.com/coregymclub/core-gym-public/internal/api/stats"
	apitrainers "github.com/coregymclub/core-gym-public/internal/api/trainers"
	apiupdates "github.com/coregymclub/core-gym-public/internal/api/updates"
	"github.com/coregymclub/core-gym-public/internal/api/zproxy"
	"github.com/coregymclub/core-gym-public/internal/config"
)

func newServer(cfg *config.Config, sheets *apisheets.Handlers, proxy *zproxy.Handlers) *http.Server {
	router := http.NewServeMux()

	handler := api.ChainMiddleware(
		router,
		api.WithLogging,
		api.WithRecovery,
		api.WithRequestID,
	)

	registerRoutes(router, sheets, proxy)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func registerRoutes(mux *http.ServeMux, sheets *apisheets.Handlers, proxy *zproxy.Handlers) {
	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Group training schedule
	mux.HandleFunc("GET /api/v1/schedule", apischedule.HandleSchedule)

	// Staffing
	mux.HandleFunc("GET /api/v1/staffing/today", apistaffing.HandleToday)
	mux.HandleFunc("GET /api/v1/staffing/week", apistaffing.HandleWeek)
	mux.HandleFunc("GET /api/v1/staffing/status", apistaffing.HandleStatus)

	// Live occupancy
	mux.HandleFunc("GET /api/v1/stats", apistats.HandleStats)

	// Content feeds
	mux.HandleFunc("GET /api/v1/news", apinews.HandleList)
	mux.HandleFunc("GET /api/v1/news/{id}", apinews.HandleDetail)
	mux.HandleFunc("GET /api/v1/reviews", apireviews.HandleList)
	mux.HandleFunc("GET /api/v1/updates", apiupdates.HandleList)

	// Trainers and clubs
	mux.HandleFunc("GET /api/v1/trainers", apitrainers.HandleList)
	mux.HandleFunc("GET /api/v1/trainers/{id}", apitrainers.HandleDetail)
	mux.HandleFunc("GET /api/v1/clubs", apiclubs.HandleList)
	mux.HandleFunc("GET /api/v1/clubs/{slug}", apiclubs.HandleDetail)
	mux.HandleFunc("GET /api/v1/clubs/{slug}/offerings", apiclubs.HandleOfferings)

	// Sheet state
	mux.HandleFunc("GET /api/v1/sheets", sheets.HandleState)
	mux.HandleFunc("POST /api/v1/sheets/close-all", sheets.HandleCloseAll)
	mux.HandleFunc("POST /api/v1/sheets/{name}/open", sheets.HandleOpen)
	mux.HandleFunc("POST /api/v1/sheets/{name}/close", sheets.HandleClose)

	// Contact form
	mux.HandleFunc("POST /api/v1/contact", apicontact.HandleSubmit)

	// Session bridge
	mux.HandleFunc("POST /api/auth/session", auth.HandleSession)
	mux.HandleFunc("/api/z/{path...}", proxy.HandleProxy)
}
