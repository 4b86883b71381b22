// cmd/dbtools/migrate/main.go
//
// Migration CLI for the contact store. The server applies pending
// migrations itself on startup; this tool exists for stepping down and
// inspecting the schema version against a deployed database file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/coregymclub/core-gym-public/internal/config"
)

func main() {
	var (
		dbPath         = flag.String("db", "", "Path to SQLite database (default: database.filename from config)")
		migrationsPath = flag.String("migrations", "internal/db/migrations", "Path to migrations directory")
		command        = flag.String("command", "", "Command to run (up, down, version)")
	)
	flag.Parse()

	if *command == "" {
		flag.Usage()
		os.Exit(1)
	}
	if *dbPath == "" {
		*dbPath = databaseFromConfig()
	}

	if err := run(*dbPath, *migrationsPath, *command); err != nil {
		log.Fatal(err)
	}
}

// databaseFromConfig resolves the database path the same way the server
// does: CONFIG_PATH (or ./config.yaml), falling back to the defaults
// when no config file exists.
func databaseFromConfig() string {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config.Default().Database.Filename
		}
		log.Fatalf("Load config: %v", err)
	}
	return cfg.Database.Filename
}

func run(dbPath, migrationsPath, command string) error {
	if _, err := os.Stat(migrationsPath); err != nil {
		return fmt.Errorf("migrations directory: %w", err)
	}

	m, err := migrate.New("file://"+migrationsPath, "sqlite3://"+dbPath)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer m.Close()

	switch command {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migrate up: %w", err)
		}
	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migrate down: %w", err)
		}
	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			return fmt.Errorf("read version: %w", err)
		}
		fmt.Printf("Version: %d, Dirty: %v\n", version, dirty)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
	return nil
}
