package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"musiclibrary/internal/catalog"
	"musiclibrary/internal/config"
	"musiclibrary/internal/logging"
	"musiclibrary/internal/store"
)

func main() {
	cfg, err := config.Load(".env", "config/local.env")
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	logging.SetGlobalLogger(logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: os.Stdout,
	}))

	ctx := context.Background()

	repo, closeRepo, err := openRepository(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("storage", cfg.Storage).Msg("open repository")
	}
	defer closeRepo()

	if cfg.SeedDemoData {
		if err := bootstrapDemoData(ctx, repo); err != nil {
			log.Fatal().Err(err).Msg("seed demo data")
		}
	}

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           newHTTPHandler(cfg, repo),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Str("storage", cfg.Storage).Msg("music library listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return
	}
	log.Info().Msg("server exited")
}

// openRepository returns the configured catalog repository and a cleanup
// function for it.
func openRepository(ctx context.Context, cfg *config.Config) (catalog.Repository, func(), error) {
	if cfg.Storage == config.StorageMemory {
		log.Warn().Msg("using in-memory storage, data is lost on restart")
		return store.NewMemory(), func() {}, nil
	}

	if cfg.MigrateOnStart {
		if err := migrateDatabase(ctx, cfg.Database.URL); err != nil {
			return nil, nil, err
		}
	}

	db, err := openDatabase(ctx, cfg.Database.URL)
	if err != nil {
		return nil, nil, err
	}
	return store.New(db), func() { _ = db.Close() }, nil
}
