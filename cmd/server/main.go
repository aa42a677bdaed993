package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/jeopardize/board-backend/internal/config"
	"github.com/jeopardize/board-backend/internal/httpapi"
	"github.com/jeopardize/board-backend/internal/hub"
	"github.com/jeopardize/board-backend/internal/loader"
	"github.com/jeopardize/board-backend/internal/trivia"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	provider := trivia.NewClient(cfg.ProviderURL, cfg.ProviderTimeout, logger)
	ld := loader.New(provider, logger)
	h := hub.NewHub(ctx, ld, logger)

	// Build the router *with* the hub injected
	handler := httpapi.SetupRoutes(h, logger)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       10 * time.Minute,
	}

	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server exited", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
