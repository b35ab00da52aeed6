package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/LegalAid-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/LegalAid-Intelligence/internal/infrastructure/monitoring/prometheus"
)

// RequestLogger logs one structured entry per request and records HTTP
// metrics.  Both logger and metrics may be nil.
func RequestLogger(logger logging.Logger, metrics *prometheus.AppMetrics) gin.HandlerFunc {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	logger = logger.Named("http")

	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		if metrics != nil {
			metrics.HTTPActiveRequests.WithLabelValues(c.Request.Method, path).Inc()
		}

		c.Next()

		elapsed := time.Since(start)
		status := c.Writer.Status()

		if metrics != nil {
			metrics.HTTPActiveRequests.WithLabelValues(c.Request.Method, path).Dec()
		}
		prometheus.RecordHTTPRequest(metrics, c.Request.Method, path, status, elapsed)

		fields := []logging.Field{
			logging.String("method", c.Request.Method),
			logging.String("path", path),
			logging.Int("status", status),
			logging.Duration("elapsed", elapsed),
			logging.String("request_id", GetRequestID(c)),
			logging.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, logging.String("errors", c.Errors.String()))
		}

		switch {
		case status >= 500:
			logger.Error("request completed", fields...)
		case status >= 400:
			logger.Warn("request completed", fields...)
		default:
			logger.Info("request completed", fields...)
		}
	}
}
