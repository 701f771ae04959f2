package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"maya-nlp/config"
	_ "maya-nlp/docs" // Swagger docs
	"maya-nlp/internal/httpserver"
	"maya-nlp/internal/nlp/usecase"
	"maya-nlp/pkg/log"
)

// @title       Maya NLP API
// @description Entity extraction for voice-assistant commands: tasks, times and durations.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FilePath:     cfg.Logger.FilePath,
		MaxSizeMB:    cfg.Logger.MaxSizeMB,
		MaxBackups:   cfg.Logger.MaxBackups,
		MaxAgeDays:   cfg.Logger.MaxAgeDays,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Maya NLP...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Backends: %v (fallback enabled: %v)", cfg.Backends(), cfg.NLP.FallbackEnabled)

	// 3. NLP backends
	metrics := usecase.NewMetrics(prometheus.DefaultRegisterer)
	backends, err := usecase.InitializeBackends(ctx, cfg, logger, metrics)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize NLP backends: %v", err)
		os.Exit(1)
	}

	manager, err := usecase.NewManager(backends.List(), usecase.Config{
		FallbackEnabled: cfg.NLP.FallbackEnabled,
	}, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize NLP manager: %v", err)
		os.Exit(1)
	}

	// 4. HTTP Server
	srvCfg := httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		NLPService:      manager,
	}
	if backends.Duckling != nil {
		srvCfg.Duckling = backends.Duckling
	}

	httpServer, err := httpserver.New(logger, srvCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
