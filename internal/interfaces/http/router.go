// Package http assembles the gin engine and HTTP server for the service.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/LegalAid-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/LegalAid-Intelligence/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/LegalAid-Intelligence/internal/interfaces/http/handlers"
	"github.com/turtacn/LegalAid-Intelligence/internal/interfaces/http/middleware"
)

// RouterConfig aggregates the handler and middleware dependencies required to
// construct the complete route tree.
type RouterConfig struct {
	IntakeHandler *handlers.IntakeHandler
	HealthHandler *handlers.HealthHandler

	Logger           logging.Logger
	Metrics          *prometheus.AppMetrics
	MetricsCollector prometheus.MetricsCollector

	// Mode is the gin mode: debug, release, or test.
	Mode string
}

// NewRouter builds the full route tree: global middleware, the health and
// metrics endpoints, and the /api/v1 analysis operations.
func NewRouter(cfg RouterConfig) http.Handler {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(cfg.Logger),
		middleware.RequestLogger(cfg.Logger, cfg.Metrics),
	)

	if cfg.HealthHandler != nil {
		r.GET("/health", cfg.HealthHandler.Liveness)
		r.GET("/ready", cfg.HealthHandler.Readiness)
	}

	if cfg.MetricsCollector != nil {
		r.GET("/metrics", gin.WrapH(cfg.MetricsCollector.Handler()))
	}

	if cfg.IntakeHandler != nil {
		v1 := r.Group("/api/v1")
		{
			v1.POST("/triage", cfg.IntakeHandler.Triage)
			v1.POST("/match", cfg.IntakeHandler.Match)
			v1.POST("/analyze-document", cfg.IntakeHandler.AnalyzeDocument)
			v1.POST("/detect-patterns", cfg.IntakeHandler.DetectPatterns)
		}
	}

	return r
}
