// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/ayush179959/DocuFlow/internal/api"
	"github.com/ayush179959/DocuFlow/internal/docservice"
	"github.com/ayush179959/DocuFlow/internal/mcpserver"
	"github.com/ayush179959/DocuFlow/internal/sse"
	"github.com/ayush179959/DocuFlow/internal/store"
	"github.com/ayush179959/DocuFlow/internal/templatesync"
)

// Run starts the HTTP application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("store_dsn", cfg.Store.DSN),
		slog.String("templates_dir", cfg.Templates.Dir),
		slog.String("log_level", cfg.App.LogLevel.String()))

	catalog, svc, err := openCatalog(cfg, logger)
	if err != nil {
		return err
	}
	defer catalog.Close()

	// SSE broker.
	broker := sse.NewBroker(2 * time.Second)
	defer broker.Close()

	// Build chi router.
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints (unauthenticated).
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Mount API routes under /api.
	r.Mount("/api", api.NewRouter(catalog, svc, cfg.Auth.AuthEnabled(), cfg.Auth.Token, broker))

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: r,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Watch the templates directory when one is configured.
	if cfg.Templates.Dir != "" {
		g.Go(func() error {
			err := templatesync.Watch(gCtx, catalog, cfg.Templates.Dir, logger, func(kind, file string) {
				broker.PublishCatalogEvent("template", kind, 0)
			})
			if err != nil {
				logger.Warn("templates watcher failed", slog.String("error", err.Error()))
			}
			return nil
		})
	}

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

// RunMCP starts the MCP stdio server instead of the HTTP surface.
func RunMCP(_ context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// MCP speaks on stdout; keep logs on stderr.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	catalog, svc, err := openCatalog(cfg, logger)
	if err != nil {
		return err
	}
	defer catalog.Close()

	logger.Info("MCP server starting on stdio")
	return mcpserver.New(catalog, svc).ServeStdio()
}

// openCatalog opens the store, seeds it when configured, and imports the
// templates directory if one is set.
func openCatalog(cfg *Config, logger *slog.Logger) (*store.DB, *docservice.Service, error) {
	db, err := store.Open(cfg.Store.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("init store: %w", err)
	}

	if cfg.Store.Seed {
		if err := seedIfEmpty(db, logger); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("seed store: %w", err)
		}
	}

	if cfg.Templates.Dir != "" {
		if err := templatesync.Sync(db, cfg.Templates.Dir, logger); err != nil {
			logger.Warn("templates dir sync failed",
				slog.String("dir", cfg.Templates.Dir),
				slog.String("error", err.Error()))
		}
	}

	return db, docservice.NewService(db), nil
}

// seedIfEmpty loads the embedded sample catalog unless templates already
// exist (a durable file store keeps its data across restarts).
func seedIfEmpty(db *store.DB, logger *slog.Logger) error {
	templates, err := db.ListTemplates()
	if err != nil {
		return err
	}
	if len(templates) > 0 {
		return nil
	}
	if err := store.Seed(db); err != nil {
		return err
	}
	logger.Info("Seeded catalog from embedded sample data")
	return nil
}
