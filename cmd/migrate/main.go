package main

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"musiclibrary/internal/config"
	"musiclibrary/internal/logging"
	"musiclibrary/migrations"
)

const usage = "usage: migrate [up|down|version]"

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load(".env", "config/local.env")
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logging.SetGlobalLogger(logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: os.Stderr,
	}))

	if err := run(os.Args[1], cfg.Database.URL); err != nil {
		log.Fatal().Err(err).Str("command", os.Args[1]).Msg("migrate failed")
	}
}

func run(command, dsn string) error {
	switch command {
	case "up", "down", "version":
	default:
		return errors.New(usage)
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	m, err := migrations.New(db)
	if err != nil {
		_ = db.Close()
		return err
	}
	defer m.Close()

	switch command {
	case "up":
		if err := migrations.Up(m); err != nil {
			return err
		}
		log.Info().Msg("migrations applied")
	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("roll back migrations: %w", err)
		}
		log.Info().Msg("migrations rolled back")
	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			log.Info().Msg("no migrations applied")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read version: %w", err)
		}
		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("schema version")
	}
	return nil
}
