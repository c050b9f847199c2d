package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog/log"

	"musiclibrary/migrations"
)

// openDatabase establishes a database connection and retries until the instance responds.
func openDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := waitForDatabase(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func waitForDatabase(ctx context.Context, db *sql.DB) error {
	const (
		pingTimeout    = 5 * time.Second
		maxWait        = 30 * time.Second
		initialBackoff = 500 * time.Millisecond
		maxBackoff     = 5 * time.Second
	)

	deadline := time.Now().Add(maxWait)
	backoff := initialBackoff

	for {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		err := db.PingContext(pingCtx)
		cancel()
		if err == nil {
			return nil
		}

		if ctx.Err() != nil || time.Now().After(deadline) {
			return fmt.Errorf("ping database: %w", err)
		}

		log.Warn().Err(err).Dur("retry_in", backoff).Msg("database not ready")

		select {
		case <-ctx.Done():
			return fmt.Errorf("ping database: %w", ctx.Err())
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}
}

// migrateDatabase applies pending migrations over a dedicated connection pool,
// since the migrator closes the handle it is given.
func migrateDatabase(ctx context.Context, dsn string) error {
	db, err := openDatabase(ctx, dsn)
	if err != nil {
		return err
	}

	m, err := migrations.New(db)
	if err != nil {
		_ = db.Close()
		return err
	}
	defer m.Close()

	if err := migrations.Up(m); err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err == nil {
		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("schema migrated")
	}
	return nil
}
