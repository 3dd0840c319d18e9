package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/gitfolio/gitfolio/internal/adapters"
	"github.com/gitfolio/gitfolio/internal/analysis"
	"github.com/gitfolio/gitfolio/internal/api"
	"github.com/gitfolio/gitfolio/internal/config"
	"github.com/gitfolio/gitfolio/internal/ratelimit"
)

func main() {
	// .env is optional; environment variables still apply without it.
	_ = godotenv.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	logger.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.GitHubToken == "" {
		logger.Warn("GITHUB_TOKEN not set, running against the anonymous GitHub API quota")
	}

	collector := adapters.NewGitHubAdapter(adapters.Config{
		Token:             cfg.GitHubToken,
		EnrichLimit:       cfg.EnrichLimit,
		Concurrency:       cfg.EnrichConcurrency,
		RequestsPerSecond: cfg.GitHubRPS,
	}, logger)

	analyzer := analysis.NewAnalyzer()
	handler := api.NewHandler(collector, analyzer, logger, cfg.RequestTimeout)
	// A zero per-IP budget disables the front-door limiter.
	var limiter *ratelimit.Limiter
	if cfg.IPLimitPerMin > 0 {
		limiter = ratelimit.NewLimiter(ratelimit.Config{RequestsPerMinute: cfg.IPLimitPerMin})
	}

	router := api.SetupRouter(handler, limiter)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
	}

	go func() {
		logger.Infof("Server listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Forced shutdown: %v", err)
	}
}
