package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"animal-encyclopedia/internal/config"
	"animal-encyclopedia/internal/platform/logger"
	"animal-encyclopedia/internal/router"
)

// @title Animal Encyclopedia API
// @version 1.0
// @description Animales al azar desde API Ninjas con fallback a una lista local.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("invalid config", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Logging.Level),
		Format: logger.ParseFormat(cfg.Logging.Format),
		App:    cfg.Logging.App,
	})
	if zl, ok := log.(*logger.ZapLogger); ok {
		defer func() { _ = zl.Sync() }()
	}

	if cfg.Ninjas.APIKey == "" {
		log.Info("API_NINJAS_KEY not set, serving sample animals", nil)
	}

	r, closeRouter := router.NewRouter(router.Options{Config: cfg, Logger: log})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Addr(), "mode": cfg.Fetch.Mode})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"error": err.Error()})
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", map[string]any{"error": err.Error()})
	}
	if err := closeRouter(); err != nil {
		log.Error("close resources", map[string]any{"error": err.Error()})
	}
	log.Info("server stopped", nil)
}
