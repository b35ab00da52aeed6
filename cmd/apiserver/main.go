// API server entry point for LegalAid-Intelligence.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	appintake "github.com/turtacn/LegalAid-Intelligence/internal/application/intake"
	"github.com/turtacn/LegalAid-Intelligence/internal/config"
	redisinfra "github.com/turtacn/LegalAid-Intelligence/internal/infrastructure/database/redis"
	"github.com/turtacn/LegalAid-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/LegalAid-Intelligence/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/LegalAid-Intelligence/internal/intelligence/casetriage"
	"github.com/turtacn/LegalAid-Intelligence/internal/intelligence/docanalysis"
	"github.com/turtacn/LegalAid-Intelligence/internal/intelligence/lawyermatch"
	"github.com/turtacn/LegalAid-Intelligence/internal/intelligence/patterndetect"
	httpserver "github.com/turtacn/LegalAid-Intelligence/internal/interfaces/http"
	"github.com/turtacn/LegalAid-Intelligence/internal/interfaces/http/handlers"
)

// version is injected via ldflags.
var version = "dev"

func main() {
	configPath := flag.String("config", "", "path to configuration file (default: environment only)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logging.SetDefault(logger)

	logger.Info("starting legalaid-intelligence api server",
		logging.String("version", version),
		logging.Int("port", cfg.Server.Port),
	)

	collector, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{
		Namespace:            "legalaid",
		EnableProcessMetrics: true,
		EnableGoMetrics:      true,
	}, logger)
	if err != nil {
		logger.Fatal("failed to initialize metrics", logging.Err(err))
	}
	metrics := prometheus.NewAppMetrics(collector)

	healthHandler := handlers.NewHealthHandler(version, metrics)

	serviceOpts := []appintake.Option{
		appintake.WithMetrics(metrics),
		appintake.WithLimits(appintake.Limits{
			MaxNarrativeBytes:  cfg.Intelligence.MaxNarrativeBytes,
			MaxDocumentBytes:   cfg.Intelligence.MaxDocumentBytes,
			AnalysisTimeout:    cfg.Intelligence.AnalysisTimeout,
			PatternMinCaseSize: cfg.Intelligence.PatternMinCaseSize,
		}),
	}
	if cfg.Cache.Enabled {
		client, err := redisinfra.NewClient(&cfg.Redis, logger)
		if err != nil {
			// The cache is an acceleration layer; start degraded rather
			// than refuse to serve.
			logger.Warn("redis unavailable, starting without cache", logging.Err(err))
		} else {
			defer client.Close()
			cache := redisinfra.NewCache(client, logger,
				redisinfra.WithPrefix(cfg.Redis.KeyPrefix),
			)
			serviceOpts = append(serviceOpts, appintake.WithCache(cache, appintake.CacheTTLs{
				Triage:   cfg.Cache.TriageTTL,
				Match:    cfg.Cache.MatchTTL,
				Document: cfg.Cache.DocTTL,
			}))
			healthHandler.RegisterComponent("redis", cache)
		}
	}

	service := appintake.NewService(
		casetriage.NewClassifier(logger),
		lawyermatch.NewRanker(nil, logger, lawyermatch.WithMaxMatches(cfg.Intelligence.MaxMatches)),
		docanalysis.NewExtractor(logger),
		patterndetect.NewDetector(logger),
		logger,
		serviceOpts...,
	)

	router := httpserver.NewRouter(httpserver.RouterConfig{
		IntakeHandler:    handlers.NewIntakeHandler(service, logger),
		HealthHandler:    healthHandler,
		Logger:           logger,
		Metrics:          metrics,
		MetricsCollector: collector,
		Mode:             cfg.Server.Mode,
	})

	srv := httpserver.NewServer(&cfg.Server, router, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		logger.Info("received shutdown signal", logging.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			logger.Fatal("http server failed", logging.Err(err))
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		logger.Error("shutdown failed", logging.Err(err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadFromEnv()
}
