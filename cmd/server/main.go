package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/codeformat/internal/api"
	"github.com/dgallion1/codeformat/internal/config"
	"github.com/dgallion1/codeformat/internal/pipeline"
	"github.com/dgallion1/codeformat/internal/settings"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The persisted toggle can only switch formatting off; CODEFORMAT_ENABLED=false wins.
	enabled := func() bool { return cfg.Enabled }
	store, err := settings.Open()
	if err != nil {
		log.Warn("settings unavailable, using environment only", "error", err)
	} else {
		log.Info("loaded settings", "path", store.Path(), "active", store.Active())
		enabled = func() bool {
			store.Reload()
			return cfg.Enabled && store.Active()
		}
	}

	// Initialize pipeline.
	orch := pipeline.NewOrchestrator(cfg, enabled, log)
	orch.Start(ctx)

	// Initialize HTTP server.
	srv := api.NewServer(orch, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
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

		orch.Stop()
	}()

	log.Info("starting codeformat", "port", cfg.Port, "workers", cfg.WorkerCount, "api_key_set", cfg.APIKey != "")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
