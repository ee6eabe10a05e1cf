package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/nahid-013/alkoteka-scraper/internal/api"
	"github.com/nahid-013/alkoteka-scraper/internal/config"
	"github.com/nahid-013/alkoteka-scraper/internal/database"
	"github.com/nahid-013/alkoteka-scraper/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logg := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	if cfg.Export.DatabaseURL == "" {
		logg.Error("DATABASE_URL is required for the API server")
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := database.New(ctx, cfg.Export.DatabaseURL)
	if err != nil {
		logg.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		logg.Error("failed to ensure schema", "error", err)
		os.Exit(1)
	}

	handlers := api.NewHandlers(store, logg)
	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      handlers.Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan

		logg.Info("shutting down")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error("shutdown failed", "error", err)
		}
		cancel()
	}()

	logg.Info("api server listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logg.Error("server failed", "error", err)
		os.Exit(1)
	}
}
