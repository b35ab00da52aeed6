// Package intake orchestrates the analysis engines behind the public API:
// case triage, lawyer matching, document analysis, and pattern detection.
// It owns request validation, result caching, metrics, and panic recovery;
// the engines themselves stay free of those concerns.
package intake

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/turtacn/LegalAid-Intelligence/internal/infrastructure/database/redis"
	"github.com/turtacn/LegalAid-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/LegalAid-Intelligence/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/LegalAid-Intelligence/internal/intelligence/casetriage"
	"github.com/turtacn/LegalAid-Intelligence/internal/intelligence/docanalysis"
	"github.com/turtacn/LegalAid-Intelligence/internal/intelligence/lawyermatch"
	"github.com/turtacn/LegalAid-Intelligence/internal/intelligence/patterndetect"
	"github.com/turtacn/LegalAid-Intelligence/pkg/errors"
	"github.com/turtacn/LegalAid-Intelligence/pkg/types/intake"
)

// Service is the application-level entry point for all intake analysis
// operations.
type Service interface {
	// TriageCase classifies a case narrative into category, urgency, and
	// complexity with recommended expertise.
	TriageCase(ctx context.Context, narrative *intake.CaseNarrative) (*intake.TriageResult, error)

	// MatchLawyers ranks candidate lawyers for a case and returns the top
	// matches in descending score order.
	MatchLawyers(ctx context.Context, req *intake.MatchRequest) ([]intake.CandidateMatch, error)

	// AnalyzeDocument extracts entities, key dates, a summary, and a
	// relevance score from a legal document.
	AnalyzeDocument(ctx context.Context, doc *intake.DocumentInput) (*intake.ExtractionResult, error)

	// DetectPatterns reports systemic patterns across a batch of case
	// records.
	DetectPatterns(ctx context.Context, cases []intake.CaseRecord) (*intake.PatternReport, error)
}

// CacheTTLs carries per-operation cache lifetimes.
type CacheTTLs struct {
	Triage   time.Duration
	Match    time.Duration
	Document time.Duration
}

// Limits carries the input-size and runtime bounds enforced before the
// engines run.  A zero field disables that bound.
type Limits struct {
	MaxNarrativeBytes  int
	MaxDocumentBytes   int
	AnalysisTimeout    time.Duration
	PatternMinCaseSize int
}

type service struct {
	classifier casetriage.Classifier
	ranker     lawyermatch.Ranker
	extractor  docanalysis.Extractor
	detector   patterndetect.Detector
	cache      redis.Cache
	ttls       CacheTTLs
	limits     Limits
	logger     logging.Logger
	metrics    *prometheus.AppMetrics
}

// Option customises the Service.
type Option func(*service)

// WithCache enables read-through result caching with the given TTLs.
func WithCache(cache redis.Cache, ttls CacheTTLs) Option {
	return func(s *service) {
		s.cache = cache
		s.ttls = ttls
	}
}

// WithMetrics attaches the application metric set.
func WithMetrics(m *prometheus.AppMetrics) Option {
	return func(s *service) { s.metrics = m }
}

// WithLimits sets input-size and runtime bounds.
func WithLimits(l Limits) Option {
	return func(s *service) { s.limits = l }
}

// NewService wires the four analysis engines into a Service.  A nil logger
// falls back to the no-op logger; cache and metrics are optional.
func NewService(
	classifier casetriage.Classifier,
	ranker lawyermatch.Ranker,
	extractor docanalysis.Extractor,
	detector patterndetect.Detector,
	logger logging.Logger,
	opts ...Option,
) Service {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	s := &service{
		classifier: classifier,
		ranker:     ranker,
		extractor:  extractor,
		detector:   detector,
		logger:     logger.Named("intake"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// recoverTo converts a panic in an analysis engine into a generic internal
// error so that malformed input can never crash the process or leak
// engine internals to callers.
func (s *service) recoverTo(operation string, err *error) {
	if r := recover(); r != nil {
		s.logger.Error("analysis panicked",
			logging.String("operation", operation),
			logging.Any("panic", r),
		)
		*err = errors.New(errors.ErrCodeInternal, "processing failed")
	}
}

func (s *service) observe(operation string, start time.Time, err error) {
	prometheus.RecordAnalysis(s.metrics, operation, err, time.Since(start))
	if err != nil {
		prometheus.RecordAnalysisError(s.metrics, operation, string(errors.GetCode(err)))
	}
}

// opContext bounds an operation by the configured analysis timeout.
func (s *service) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.limits.AnalysisTimeout > 0 {
		return context.WithTimeout(ctx, s.limits.AnalysisTimeout)
	}
	return ctx, func() {}
}

func (s *service) TriageCase(ctx context.Context, narrative *intake.CaseNarrative) (result *intake.TriageResult, err error) {
	start := time.Now()
	defer func() { s.observe("triage", start, err) }()
	defer s.recoverTo("triage", &err)

	if narrative == nil {
		return nil, errors.New(errors.ErrCodeTriageInputMissing, "case narrative is required")
	}
	if strings.TrimSpace(narrative.Title) == "" && strings.TrimSpace(narrative.Description) == "" {
		return nil, errors.New(errors.ErrCodeTriageInputMissing, "case narrative must include a title or description")
	}
	if max := s.limits.MaxNarrativeBytes; max > 0 && len(narrative.Title)+len(narrative.Description) > max {
		return nil, errors.NewValidationError("narrative",
			fmt.Sprintf("narrative exceeds the %d byte limit", max))
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	if s.cache != nil && narrative.CaseID != "" {
		key := "triage:" + narrative.CaseID
		cached := &intake.TriageResult{}
		var loaded bool
		cacheErr := s.cache.GetOrSet(ctx, key, cached, s.ttls.Triage, func(ctx context.Context) (interface{}, error) {
			loaded = true
			return s.classifier.Classify(ctx, narrative)
		})
		prometheus.RecordCacheAccess(s.metrics, "triage", !loaded)
		if cacheErr == nil {
			s.recordTriage(cached)
			return cached, nil
		}
		if errors.IsValidation(cacheErr) {
			return nil, cacheErr
		}
		s.logger.Warn("triage cache path failed, classifying directly",
			logging.String("case_id", narrative.CaseID), logging.Err(cacheErr))
	}

	result, err = s.classifier.Classify(ctx, narrative)
	if err != nil {
		return nil, err
	}
	s.recordTriage(result)
	return result, nil
}

func (s *service) recordTriage(r *intake.TriageResult) {
	if s.metrics == nil || r == nil {
		return
	}
	s.metrics.TriageCategoryTotal.WithLabelValues(string(r.CaseType)).Inc()
	s.metrics.TriageUrgencyTotal.WithLabelValues(string(r.Urgency)).Inc()
}

func (s *service) MatchLawyers(ctx context.Context, req *intake.MatchRequest) (matches []intake.CandidateMatch, err error) {
	start := time.Now()
	defer func() { s.observe("match", start, err) }()
	defer s.recoverTo("match", &err)

	if req == nil {
		return nil, errors.New(errors.ErrCodeMatchInputMissing, "match request is required")
	}
	if strings.TrimSpace(req.CaseID) == "" {
		return nil, errors.NewValidationError("case_id", "case_id is required")
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	if s.cache != nil {
		key := fmt.Sprintf("match:%s:%s", req.CaseID, req.Urgency)
		var cached []intake.CandidateMatch
		var loaded bool
		cacheErr := s.cache.GetOrSet(ctx, key, &cached, s.ttls.Match, func(ctx context.Context) (interface{}, error) {
			loaded = true
			return s.ranker.Match(ctx, req)
		})
		prometheus.RecordCacheAccess(s.metrics, "match", !loaded)
		if cacheErr == nil {
			s.recordMatch(req, cached)
			return cached, nil
		}
		if errors.IsValidation(cacheErr) {
			return nil, cacheErr
		}
		s.logger.Warn("match cache path failed, ranking directly",
			logging.String("case_id", req.CaseID), logging.Err(cacheErr))
	}

	matches, err = s.ranker.Match(ctx, req)
	if err != nil {
		return nil, err
	}
	s.recordMatch(req, matches)
	return matches, nil
}

func (s *service) recordMatch(req *intake.MatchRequest, matches []intake.CandidateMatch) {
	if s.metrics == nil {
		return
	}
	s.metrics.MatchCandidateCount.WithLabelValues(string(req.Urgency)).Observe(float64(len(matches)))
}

func (s *service) AnalyzeDocument(ctx context.Context, doc *intake.DocumentInput) (result *intake.ExtractionResult, err error) {
	start := time.Now()
	defer func() { s.observe("analyze_document", start, err) }()
	defer s.recoverTo("analyze_document", &err)

	if doc == nil {
		return nil, errors.New(errors.ErrCodeDocumentInputMissing, "document is required")
	}
	if max := s.limits.MaxDocumentBytes; max > 0 && len(doc.Content) > max {
		return nil, errors.New(errors.ErrCodeDocumentTooLarge,
			fmt.Sprintf("document content exceeds the %d byte limit", max))
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	if s.cache != nil && doc.DocumentID != "" {
		key := "doc:" + doc.DocumentID
		cached := &intake.ExtractionResult{}
		var loaded bool
		cacheErr := s.cache.GetOrSet(ctx, key, cached, s.ttls.Document, func(ctx context.Context) (interface{}, error) {
			loaded = true
			return s.extractor.Extract(ctx, doc)
		})
		prometheus.RecordCacheAccess(s.metrics, "document", !loaded)
		if cacheErr == nil {
			s.recordDocument(cached)
			return cached, nil
		}
		if errors.IsValidation(cacheErr) {
			return nil, cacheErr
		}
		s.logger.Warn("document cache path failed, extracting directly",
			logging.String("document_id", doc.DocumentID), logging.Err(cacheErr))
	}

	result, err = s.extractor.Extract(ctx, doc)
	if err != nil {
		return nil, err
	}
	s.recordDocument(result)
	return result, nil
}

func (s *service) recordDocument(r *intake.ExtractionResult) {
	if s.metrics == nil || r == nil {
		return
	}
	s.metrics.DocumentCategoryTotal.WithLabelValues(r.DocumentCategory).Inc()
	s.metrics.DocumentRelevanceScore.WithLabelValues().Observe(r.RelevanceScore)
}

func (s *service) DetectPatterns(ctx context.Context, cases []intake.CaseRecord) (report *intake.PatternReport, err error) {
	start := time.Now()
	defer func() { s.observe("detect_patterns", start, err) }()
	defer s.recoverTo("detect_patterns", &err)

	if min := s.limits.PatternMinCaseSize; min > 0 && len(cases) < min {
		return nil, errors.New(errors.ErrCodePatternInputMissing,
			fmt.Sprintf("pattern detection requires at least %d case records", min))
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	// Pattern results are not cached: batches are ad hoc and the engine is
	// still a placeholder.
	return s.detector.Detect(ctx, cases)
}
