package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/willclause/internal/api"
	"github.com/dgallion1/willclause/internal/clauses"
	"github.com/dgallion1/willclause/internal/config"
	"github.com/dgallion1/willclause/internal/will"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if cfg.APIKey == "" {
		log.Warn("API_KEY not set, api endpoints are unauthenticated")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := will.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error("open will store", "path", cfg.DatabasePath, "error", err)
		os.Exit(1)
	}

	catalog := clauses.NewCatalog(os.DirFS(cfg.ClausesDir), log.With("component", "catalog"))
	svc := clauses.NewService(catalog, log.With("component", "clauses"), cfg.MaxConcurrentExtract)

	srv := api.NewServer(svc, store, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting willclause", "port", cfg.Port, "clauses_dir", cfg.ClausesDir)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		store.Close()
		os.Exit(1)
	}
	if err := store.Close(); err != nil {
		log.Error("close will store", "error", err)
	}
}
