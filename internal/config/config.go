// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type UpstreamConfig struct {
	// Zoezi public workout API, e.g. https://coregymclub.zoezi.se
	ZoeziBaseURL string `yaml:"zoezi_base_url"`
	// Member-facing Zoezi host the session bridge forwards to.
	ZoeziMemberURL string `yaml:"zoezi_member_url"`
	StaffingURL    string `yaml:"staffing_url"`
	KioskURL       string `yaml:"kiosk_url"`
	NewsURL        string `yaml:"news_url"`
	ReviewsURL     string `yaml:"reviews_url"`
	UpdatesURL     string `yaml:"updates_url"`
	// Per-call timeout applied to every upstream request.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

type OccupancyConfig struct {
	// Entries older than this are considered checked out.
	WindowMinutes int `yaml:"window_minutes"`
	// How often the background refresher recomputes the snapshot.
	RefreshSeconds int   `yaml:"refresh_seconds"`
	SiteIDs        []int `yaml:"site_ids"`
}

type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	Filename string `yaml:"filename"`
}

type EmailConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Region    string `yaml:"region"`
	Sender    string `yaml:"sender"`
	Recipient string `yaml:"recipient"`
	// Credentials loaded from environment, never from the yaml file.
	AccessKeyID     string `yaml:"-"`
	SecretAccessKey string `yaml:"-"`
}

type Config struct {
	App struct {
		Name        string `yaml:"name"`
		Environment string `yaml:"environment"`
		Port        int    `yaml:"port"`
		// Parent domain the session cookie is scoped to, e.g. .coregym.club
		CookieDomain string `yaml:"cookie_domain"`
		// Trust X-Forwarded-For when running behind a reverse proxy.
		TrustProxy bool `yaml:"trust_proxy"`
	} `yaml:"app"`

	Upstreams UpstreamConfig  `yaml:"upstreams"`
	Occupancy OccupancyConfig `yaml:"occupancy"`
	Database  DatabaseConfig  `yaml:"database"`
	Email     EmailConfig     `yaml:"email"`
}

// Load loads both .env and yaml configuration
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Load sensitive values from environment
	cfg.Email.AccessKeyID = os.Getenv("SES_ACCESS_KEY_ID")
	cfg.Email.SecretAccessKey = os.Getenv("SES_SECRET_ACCESS_KEY")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Default returns a configuration preloaded with the production upstreams
// and the standard occupancy tuning. A yaml file only needs to override
// what actually differs per deployment.
func Default() *Config {
	cfg := &Config{}
	cfg.App.Name = "core-gym-public"
	cfg.App.Environment = "development"
	cfg.App.Port = 8080
	cfg.App.CookieDomain = ".coregym.club"
	cfg.App.TrustProxy = true
	cfg.Upstreams = UpstreamConfig{
		ZoeziBaseURL:   "https://coregymclub.zoezi.se",
		ZoeziMemberURL: "https://z.coregym.club",
		StaffingURL:    "https://coregym-staffed-hours-api.gustav-brydner.workers.dev",
		KioskURL:       "https://coregym-kiosk-api.gustav-brydner.workers.dev",
		NewsURL:        "https://coregym-news-api.gustav-brydner.workers.dev",
		ReviewsURL:     "https://coregym-reviews-api.gustav-brydner.workers.dev",
		UpdatesURL:     "https://coregym-updates-api.gustav-brydner.workers.dev",
		TimeoutSeconds: 5,
	}
	cfg.Occupancy = OccupancyConfig{
		WindowMinutes:  90,
		RefreshSeconds: 120,
		SiteIDs:        []int{1, 2, 3},
	}
	cfg.Database = DatabaseConfig{
		Driver:   "sqlite",
		Filename: "data/contact.db",
	}
	return cfg
}

func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name is required")
	}
	if c.App.Port == 0 {
		return fmt.Errorf("app port is required")
	}
	if c.App.CookieDomain == "" {
		return fmt.Errorf("cookie domain is required")
	}
	if c.Upstreams.ZoeziBaseURL == "" || c.Upstreams.ZoeziMemberURL == "" {
		return fmt.Errorf("zoezi upstream urls are required")
	}
	if c.Upstreams.TimeoutSeconds <= 0 {
		return fmt.Errorf("upstream timeout must be positive")
	}
	if c.Occupancy.WindowMinutes <= 0 {
		return fmt.Errorf("occupancy window must be positive")
	}
	if c.Occupancy.RefreshSeconds <= 0 {
		return fmt.Errorf("occupancy refresh interval must be positive")
	}
	if len(c.Occupancy.SiteIDs) == 0 {
		return fmt.Errorf("at least one occupancy site is required")
	}
	if c.Database.Driver != "sqlite" {
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}
	if c.Database.Filename == "" {
		return fmt.Errorf("database filename is required")
	}
	if c.Email.Enabled {
		if c.Email.Region == "" || c.Email.Sender == "" || c.Email.Recipient == "" {
			return fmt.Errorf("email region, sender and recipient are required when email is enabled")
		}
	}
	return nil
}

// UpstreamTimeout returns the per-call timeout as a duration.
func (c *Config) UpstreamTimeout() time.Duration {
	return time.Duration(c.Upstreams.TimeoutSeconds) * time.Second
}

// OccupancyWindow returns the trailing check-in window as a duration.
func (c *Config) OccupancyWindow() time.Duration {
	return time.Duration(c.Occupancy.WindowMinutes) * time.Minute
}

// OccupancyRefreshInterval returns the snapshot refresh cadence.
func (c *Config) OccupancyRefreshInterval() time.Duration {
	return time.Duration(c.Occupancy.RefreshSeconds) * time.Second
}
