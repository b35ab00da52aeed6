package prometheus

import (
	"strconv"
	"time"
)

// AppMetrics holds every metric the service emits.
type AppMetrics struct {
	// HTTP layer
	HTTPRequestsTotal   CounterVec
	HTTPRequestDuration HistogramVec
	HTTPActiveRequests  GaugeVec

	// Analysis operations (triage, match, analyze_document, detect_patterns)
	AnalysisRequestsTotal  CounterVec
	AnalysisDuration       HistogramVec
	AnalysisErrorsTotal    CounterVec
	TriageCategoryTotal    CounterVec
	TriageUrgencyTotal     CounterVec
	MatchCandidateCount    HistogramVec
	DocumentCategoryTotal  CounterVec
	DocumentRelevanceScore HistogramVec

	// Cache layer
	CacheHitsTotal   CounterVec
	CacheMissesTotal CounterVec

	// System health
	HealthCheckStatus GaugeVec
}

var (
	DefaultHTTPDurationBuckets     = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
	DefaultAnalysisDurationBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5}
	DefaultCandidateCountBuckets   = []float64{1, 2, 3, 4, 5, 6, 7, 8}
	DefaultScoreBuckets            = []float64{.1, .2, .3, .4, .5, .6, .7, .8, .9, 1}
)

// NewAppMetrics registers the full metric set against collector.
func NewAppMetrics(collector MetricsCollector) *AppMetrics {
	m := &AppMetrics{}

	m.HTTPRequestsTotal = collector.RegisterCounter("http_requests_total", "Total HTTP requests", "method", "path", "status_code")
	m.HTTPRequestDuration = collector.RegisterHistogram("http_request_duration_seconds", "HTTP request duration", DefaultHTTPDurationBuckets, "method", "path")
	m.HTTPActiveRequests = collector.RegisterGauge("http_active_requests", "Active HTTP requests", "method", "path")

	m.AnalysisRequestsTotal = collector.RegisterCounter("analysis_requests_total", "Analysis requests", "operation", "status")
	m.AnalysisDuration = collector.RegisterHistogram("analysis_duration_seconds", "Analysis duration", DefaultAnalysisDurationBuckets, "operation")
	m.AnalysisErrorsTotal = collector.RegisterCounter("analysis_errors_total", "Analysis errors", "operation", "code")
	m.TriageCategoryTotal = collector.RegisterCounter("triage_category_total", "Triage results by case type", "case_type")
	m.TriageUrgencyTotal = collector.RegisterCounter("triage_urgency_total", "Triage results by urgency", "urgency")
	m.MatchCandidateCount = collector.RegisterHistogram("match_candidate_count", "Candidates returned per match request", DefaultCandidateCountBuckets, "urgency")
	m.DocumentCategoryTotal = collector.RegisterCounter("document_category_total", "Analyzed documents by category", "category")
	m.DocumentRelevanceScore = collector.RegisterHistogram("document_relevance_score", "Document relevance score distribution", DefaultScoreBuckets)

	m.CacheHitsTotal = collector.RegisterCounter("cache_hits_total", "Cache hits", "cache")
	m.CacheMissesTotal = collector.RegisterCounter("cache_misses_total", "Cache misses", "cache")

	m.HealthCheckStatus = collector.RegisterGauge("health_check_status", "Health check status (1=up, 0=down)", "component")

	return m
}

// RecordHTTPRequest records a completed HTTP request.
func RecordHTTPRequest(m *AppMetrics, method, path string, statusCode int, duration time.Duration) {
	if m == nil {
		return
	}
	status := strconv.Itoa(statusCode)
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordAnalysis records a completed analysis operation.
func RecordAnalysis(m *AppMetrics, operation string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "failure"
	}
	m.AnalysisRequestsTotal.WithLabelValues(operation, status).Inc()
	m.AnalysisDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordAnalysisError records a failed analysis operation with its error code.
func RecordAnalysisError(m *AppMetrics, operation, code string) {
	if m == nil {
		return
	}
	m.AnalysisErrorsTotal.WithLabelValues(operation, code).Inc()
}

// RecordCacheAccess records a cache hit or miss for the named cache.
func RecordCacheAccess(m *AppMetrics, cache string, hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.CacheHitsTotal.WithLabelValues(cache).Inc()
	} else {
		m.CacheMissesTotal.WithLabelValues(cache).Inc()
	}
}
