// Package patterndetect will identify systemic patterns across multiple
// cases: clusters of similar narratives, recurring institutions, geographic
// and temporal correlations.  None of that exists yet.  The detector is a
// deliberate placeholder that reports "not yet implemented" rather than
// guessing, so callers can already integrate against the final contract.
package patterndetect

import (
	"context"

	"github.com/turtacn/LegalAid-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/LegalAid-Intelligence/pkg/errors"
	"github.com/turtacn/LegalAid-Intelligence/pkg/types/intake"
)

// StatusSuccess is the report status for a completed detection run.  The
// placeholder nature of the current detector is signalled through the
// message, not the status.
const StatusSuccess = "success"

// notImplementedMessage tells callers the empty pattern list is a placeholder
// response, not a finding of "no patterns".
const notImplementedMessage = "Pattern detection will be implemented"

// Detector analyses a batch of case records for cross-case patterns.
type Detector interface {
	Detect(ctx context.Context, cases []intake.CaseRecord) (*intake.PatternReport, error)
}

type detector struct {
	logger logging.Logger
}

// NewDetector creates a Detector.  A nil logger is replaced with a no-op
// implementation.
func NewDetector(logger logging.Logger) Detector {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &detector{logger: logger.Named("patterndetect")}
}

// Detect always returns an empty pattern list with an explicit status
// marker.
func (d *detector) Detect(_ context.Context, cases []intake.CaseRecord) (*intake.PatternReport, error) {
	if cases == nil {
		return nil, errors.New(errors.ErrCodePatternInputMissing, "case records are required")
	}

	d.logger.Debug("pattern detection requested", logging.Int("cases", len(cases)))

	return &intake.PatternReport{
		Status:           StatusSuccess,
		PatternsDetected: []intake.Pattern{},
		Message:          notImplementedMessage,
	}, nil
}
