// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	apicontact "github.com/coregymclub/core-gym-public/internal/api/contact"
	apinews "github.com/coregymclub/core-gym-public/internal/api/news"
	apireviews "github.com/coregymclub/core-gym-public/internal/api/reviews"
	apischedule "github.com/coregymclub/core-gym-public/internal/api/schedule"
	apistaffing "github.com/coregymclub/core-gym-public/internal/api/staffing"
	apistats "github.com/coregymclub/core-gym-public/internal/api/stats"
	apitrainers "github.com/coregymclub/core-gym-public/internal/api/trainers"
	apiupdates "github.com/coregymclub/core-gym-public/internal/api/updates"
	"github.com/coregymclub/core-gym-public/internal/api/auth"
	apisheets "github.com/coregymclub/core-gym-public/internal/api/sheets"
	"github.com/coregymclub/core-gym-public/internal/api/zproxy"
	"github.com/coregymclub/core-gym-public/internal/config"
	"github.com/coregymclub/core-gym-public/internal/contact"
	"github.com/coregymclub/core-gym-public/internal/db"
	"github.com/coregymclub/core-gym-public/internal/email"
	"github.com/coregymclub/core-gym-public/internal/news"
	"github.com/coregymclub/core-gym-public/internal/occupancy"
	"github.com/coregymclub/core-gym-public/internal/ratelimit"
	"github.com/coregymclub/core-gym-public/internal/reviews"
	"github.com/coregymclub/core-gym-public/internal/schedule"
	"github.com/coregymclub/core-gym-public/internal/scheduler"
	"github.com/coregymclub/core-gym-public/internal/sheets"
	"github.com/coregymclub/core-gym-public/internal/staffing"
	"github.com/coregymclub/core-gym-public/internal/trainers"
	"github.com/coregymclub/core-gym-public/internal/updates"
	"github.com/coregymclub/core-gym-public/internal/zoezi"
)

const shutdownTimeout = 30 * time.Second

func loadConfig() (*config.Config, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	// No config file; run on defaults plus environment.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}
	cfg = config.Default()
	cfg.Email.AccessKeyID = os.Getenv("SES_ACCESS_KEY_ID")
	cfg.Email.SecretAccessKey = os.Getenv("SES_SECRET_ACCESS_KEY")
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setupLogger(environment string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogger(cfg.App.Environment)

	database, err := db.NewFromConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer database.Close()

	var sender email.Sender
	if cfg.Email.Enabled {
		sesClient, err := email.NewSESClient(
			cfg.Email.AccessKeyID,
			cfg.Email.SecretAccessKey,
			cfg.Email.Region,
			cfg.Email.Sender,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize SES client")
		}
		sender = sesClient
	} else {
		log.Warn().Msg("Email notifications disabled")
	}

	timeout := cfg.UpstreamTimeout()
	zoeziClient := zoezi.New(cfg.Upstreams.ZoeziBaseURL, timeout)

	// Wire up feature handlers
	apischedule.InitHandlers(schedule.NewAggregator(zoeziClient))
	apistaffing.InitHandlers(staffing.NewClient(cfg.Upstreams.StaffingURL, timeout))
	apinews.InitHandlers(news.NewClient(cfg.Upstreams.NewsURL, timeout))
	apireviews.InitHandlers(reviews.NewClient(cfg.Upstreams.ReviewsURL, timeout))
	apiupdates.InitHandlers(updates.NewClient(cfg.Upstreams.UpdatesURL, timeout))
	apitrainers.InitHandlers(trainers.NewDirectory(zoeziClient))
	apicontact.InitHandlers(
		contact.NewService(
			contact.NewStore(database.DB),
			sender,
			cfg.Email.Recipient,
			log.Logger,
		),
		ratelimit.New(ratelimit.DefaultConfig()),
		cfg.App.TrustProxy,
	)
	auth.InitHandlers(cfg.App.CookieDomain)

	sheetHandlers := apisheets.NewHandlers(sheets.NewStore())
	proxyHandlers := zproxy.NewHandlers(cfg.Upstreams.ZoeziMemberURL, cfg.App.CookieDomain, timeout)

	// Occupancy auto-refresh
	fetcher := occupancy.NewFetcher(
		occupancy.NewClient(cfg.Upstreams.KioskURL, timeout),
		cfg.Occupancy.SiteIDs,
		cfg.OccupancyWindow(),
		timeout,
	)
	refresher := occupancy.NewRefresher(fetcher)
	apistats.InitHandlers(refresher)

	jobs, err := scheduler.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create scheduler")
	}
	if err := refresher.Schedule(jobs, cfg.OccupancyRefreshInterval()); err != nil {
		log.Fatal().Err(err).Msg("Failed to schedule occupancy refresh")
	}
	jobs.Start()
	defer func() {
		if err := jobs.Stop(); err != nil {
			log.Error().Err(err).Msg("Failed to stop scheduler")
		}
	}()

	server := newServer(cfg, sheetHandlers, proxyHandlers)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Int("port", cfg.App.Port).Str("environment", cfg.App.Environment).Msg("Starting server")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		log.Info().Msg("Shutting down server")
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server terminated with error")
		os.Exit(1)
	}
}
