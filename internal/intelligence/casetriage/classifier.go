// Package casetriage implements keyword-driven classification of incoming
// case narratives: category, urgency, recommended expertise, complexity, and
// jurisdiction.  The heuristics intentionally stand in for a real NLU model;
// they are deterministic, fast, and fully table-driven from the shared
// taxonomy.
package casetriage

import (
	"context"
	"math"
	"strings"

	"github.com/turtacn/LegalAid-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/LegalAid-Intelligence/internal/intelligence/taxonomy"
	"github.com/turtacn/LegalAid-Intelligence/pkg/errors"
	"github.com/turtacn/LegalAid-Intelligence/pkg/types/intake"
)

// Confidence bounds for keyword-matched categories.  Confidence grows with
// the number of distinct matched keywords and is capped below certainty
// because the heuristic can never be sure.
const (
	confidenceBase    = 0.6
	confidencePerHit  = 0.1
	confidenceCeiling = 0.95
	confidenceDefault = 0.5
)

// Word-count thresholds (strictly greater-than) for complexity tiers.
const (
	complexityHighWords   = 500
	complexityMediumWords = 200
)

// Classifier analyses a case narrative and produces a triage result.
type Classifier interface {
	Classify(ctx context.Context, narrative *intake.CaseNarrative) (*intake.TriageResult, error)
}

type classifier struct {
	logger logging.Logger
}

// NewClassifier creates a Classifier.  A nil logger is replaced with a no-op
// implementation.
func NewClassifier(logger logging.Logger) Classifier {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &classifier{logger: logger.Named("casetriage")}
}

// Classify implements the triage heuristic.  It never fails on well-formed
// input; the only error condition is a narrative with no text to classify.
func (c *classifier) Classify(_ context.Context, narrative *intake.CaseNarrative) (*intake.TriageResult, error) {
	if narrative == nil {
		return nil, errors.New(errors.ErrCodeTriageInputMissing, "narrative is required")
	}

	text := strings.ToLower(narrative.Title + " " + narrative.Description)
	if strings.TrimSpace(text) == "" {
		return nil, errors.New(errors.ErrCodeTriageInputMissing, "title and description are both empty")
	}

	category, bestCount := detectCategory(text)

	confidence := confidenceDefault
	if bestCount > 0 {
		confidence = math.Min(confidenceCeiling, confidenceBase+confidencePerHit*float64(bestCount))
	}

	result := &intake.TriageResult{
		CaseType:             category,
		Urgency:              detectUrgency(text),
		Jurisdiction:         narrative.Location.Country(),
		Confidence:           round2(confidence),
		RecommendedExpertise: taxonomy.ExpertiseFor(category),
		EstimatedComplexity:  estimateComplexity(text),
	}

	c.logger.Debug("triage complete",
		logging.String("case_type", string(result.CaseType)),
		logging.String("urgency", string(result.Urgency)),
		logging.Float64("confidence", result.Confidence),
	)
	return result, nil
}

// detectCategory scores every category by the number of its keywords present
// in text and returns the best one.  Ties go to the first-declared category;
// a zero best score yields "other".
func detectCategory(text string) (intake.CaseCategory, int) {
	best := intake.CategoryOther
	bestCount := 0
	for _, entry := range taxonomy.CaseCategories() {
		count := 0
		for _, kw := range entry.Keywords {
			if strings.Contains(text, kw) {
				count++
			}
		}
		// Strictly greater keeps the first-declared winner on ties.
		if count > bestCount {
			best = entry.Category
			bestCount = count
		}
	}
	return best, bestCount
}

// detectUrgency returns the first urgency tier, in priority order, with any
// keyword present in text.  The default is medium.
func detectUrgency(text string) intake.Urgency {
	for _, tier := range taxonomy.UrgencyTiers() {
		for _, kw := range tier.Keywords {
			if strings.Contains(text, kw) {
				return tier.Tier
			}
		}
	}
	return intake.UrgencyMedium
}

// estimateComplexity buckets the narrative by word count.
func estimateComplexity(text string) intake.Complexity {
	words := len(strings.Fields(text))
	switch {
	case words > complexityHighWords:
		return intake.ComplexityHigh
	case words > complexityMediumWords:
		return intake.ComplexityMedium
	default:
		return intake.ComplexityLow
	}
}

// round2 rounds to two decimal places, the precision of every score on the
// wire.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
