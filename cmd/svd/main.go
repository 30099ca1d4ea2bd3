package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ytget/svd/internal/api"
	"github.com/ytget/svd/internal/config"
	"github.com/ytget/svd/internal/download"
	"github.com/ytget/svd/internal/engine"
	"github.com/ytget/svd/internal/platform"
	"github.com/ytget/svd/internal/ratelimit"
	"github.com/ytget/svd/internal/strategy"
	"github.com/ytget/svd/pkg/logger"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const shutdownTimeout = 15 * time.Second

func main() {
	settings, err := config.Load()
	if err != nil {
		logger.Get("MAIN").Fatalf("failed to load settings: %v", err)
	}
	logger.SetLevel(settings.LogLevel)

	log := logger.Get("MAIN")
	log.Infof("svd v%s starting", version)

	if err := platform.EnsureDir(settings.TempDir); err != nil {
		log.Fatalf("failed to ensure temp dir: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := engine.Install(ctx); err != nil {
		log.Fatalf("failed to provision yt-dlp: %v", err)
	}

	limiter := ratelimit.New(settings.RateLimitRequests, settings.RateLimitWindow)
	limiter.StartJanitor(ctx)

	planner := strategy.NewPlanner(settings.CookieFile, settings.POTProviderURL, settings.ExtractTimeout)
	extractor := engine.NewYTDLP(settings.UpstreamRPS, settings.UpstreamBurst)
	downloads := download.NewService(extractor, settings.TempDir, settings.RetryBackoff)

	server := api.New(settings, planner, downloads, limiter)

	go func() {
		<-ctx.Done()
		log.Infof("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Errorf("shutdown error: %v", err)
		}
	}()

	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
}
