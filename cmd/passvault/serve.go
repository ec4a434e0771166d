package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	sqliteadapter "github.com/ericfisherdev/passvault/internal/adapter/driven/sqlite"
	httphandler "github.com/ericfisherdev/passvault/internal/adapter/driving/http"
	"github.com/ericfisherdev/passvault/internal/application"
	"github.com/ericfisherdev/passvault/internal/config"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the vault HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	// 1. Load configuration (fail fast on invalid env vars).
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := installLogger(cfg, os.Stderr)
	logger.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"db_path", cfg.DBPath,
		"allowed_origins", cfg.AllowedOrigins,
		"seed_defaults", cfg.SeedDefaults,
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Open database (dual reader/writer with WAL mode).
	db, err := sqliteadapter.NewDB(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("error closing database", "error", closeErr)
		}
	}()
	logger.Info("database opened", "path", db.Path())

	// 4. Run migrations on writer connection.
	if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
		return err
	}
	logger.Info("migrations complete")

	// 5. Wire adapters and services.
	passphraseStore := sqliteadapter.NewPassphraseRepo(db)
	categoryStore := sqliteadapter.NewCategoryRepo(db)
	secretStore := sqliteadapter.NewSecretRepo(db)

	gate := application.NewGate(passphraseStore)
	authSvc := application.NewAuthService(passphraseStore, gate, logger)
	categorySvc := application.NewCategoryService(gate, categoryStore)
	secretSvc := application.NewSecretService(gate, secretStore, logger)
	generator := application.NewPasswordGenerator()

	// 6. Seed the default passphrase and categories on a fresh vault.
	if cfg.SeedDefaults {
		if err := authSvc.Initialize(ctx); err != nil {
			return err
		}
	}

	// 7. Create HTTP handler and server.
	apiHandler := httphandler.NewHandler(authSvc, categorySvc, secretSvc, generator, logger)
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           httphandler.NewServeMux(apiHandler, logger, cfg.AllowedOrigins),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// 8. Wait for shutdown signal or a listener failure.
	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-serveErr:
		if err != nil {
			return err
		}
	}

	// 9. Graceful shutdown with 10s timeout for in-flight requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// installLogger builds the configured logger and makes it the slog default,
// so package-level slog calls share its level and format.
func installLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	logger := cfg.NewLogger(w)
	slog.SetDefault(logger)
	return logger
}
