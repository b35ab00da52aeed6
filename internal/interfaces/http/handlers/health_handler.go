package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/LegalAid-Intelligence/internal/infrastructure/monitoring/prometheus"
)

// Pinger reports component reachability.  The Redis cache satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	version    string
	components map[string]Pinger
	metrics    *prometheus.AppMetrics
}

func NewHealthHandler(version string, metrics *prometheus.AppMetrics) *HealthHandler {
	return &HealthHandler{
		version:    version,
		components: make(map[string]Pinger),
		metrics:    metrics,
	}
}

// RegisterComponent adds a named dependency to the readiness check.
func (h *HealthHandler) RegisterComponent(name string, p Pinger) {
	if p != nil {
		h.components[name] = p
	}
}

// Liveness handles GET /health.  It always returns 200 while the process is
// able to serve requests.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "legalaid-intelligence",
		"version":   h.version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Readiness handles GET /ready.  It pings every registered component and
// returns 503 when any is unreachable.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	components := make(map[string]string, len(h.components))
	for name, p := range h.components {
		state := "up"
		up := 1.0
		if err := p.Ping(ctx); err != nil {
			state = "down"
			up = 0
			status = http.StatusServiceUnavailable
		}
		components[name] = state
		if h.metrics != nil {
			h.metrics.HealthCheckStatus.WithLabelValues(name).Set(up)
		}
	}

	body := gin.H{"status": "ready", "components": components}
	if status != http.StatusOK {
		body["status"] = "degraded"
	}
	c.JSON(status, body)
}
