package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/trainer-marketplace/internal/config"
	"github.com/BruksfildServices01/trainer-marketplace/internal/middleware"
	"github.com/BruksfildServices01/trainer-marketplace/internal/routes"
	"github.com/BruksfildServices01/trainer-marketplace/internal/validators"
)

func main() {

	cfg := config.Load()

	log := newLogger(cfg.LogLevel)
	slog.SetDefault(log)

	if err := validators.Register(); err != nil {
		log.Error("failed to register validators", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	infra, err := routes.NewInfra(ctx, cfg, log)
	if err != nil {
		log.Error("failed to build infrastructure", "error", err)
		os.Exit(1)
	}
	defer infra.Close()

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(
		middleware.Recovery(log),
		middleware.RequestLogger(log),
		middleware.CORSMiddleware(),
	)

	routes.RegisterRoutes(r, cfg, infra)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server running", "addr", cfg.Addr(), "storage", cfg.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
