// Package lawyermatch ranks candidate lawyers against a case's requirements
// using a weighted multi-factor score.
//
// No real candidate pool exists yet.  The only CandidateSource implementation
// is a documented pseudo-randomized simulation, seeded deterministically per
// case identifier so that repeated calls are reproducible.  The source sits
// behind an interface so a real pool query can replace it later without
// touching the scoring formula.
package lawyermatch

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"
	"sort"

	"github.com/turtacn/LegalAid-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/LegalAid-Intelligence/pkg/errors"
	"github.com/turtacn/LegalAid-Intelligence/pkg/types/intake"
)

// Composite score weights.  They must sum to 1 so the composite stays in [0,1].
const (
	weightExpertise    = 0.40
	weightAvailability = 0.30
	weightProximity    = 0.20
	weightLanguage     = 0.10
)

// Language compatibility maps to a score rather than a hard filter.
const (
	languageMatchScore    = 1.0
	languageMismatchScore = 0.5
)

// defaultMaxMatches caps the ranked list returned to callers unless
// overridden via WithMaxMatches.
const defaultMaxMatches = 5

// CandidateProfile carries the raw per-candidate features the scoring formula
// consumes.  A future pool-backed source fills these from real data; the
// simulation draws them from biased random ranges.
type CandidateProfile struct {
	LawyerID              string
	ExpertiseMatch        float64
	AvailabilityScore     float64
	LocationProximity     float64
	LanguageCompatible    bool
	EstimatedResponseTime string
}

// CandidateSource supplies candidate profiles for a match request.  This is
// the substitution seam between the placeholder simulation and a real
// candidate-pool query.
type CandidateSource interface {
	Fetch(ctx context.Context, req *intake.MatchRequest) ([]CandidateProfile, error)
}

// Ranker scores and orders candidates for a match request.
type Ranker interface {
	Match(ctx context.Context, req *intake.MatchRequest) ([]intake.CandidateMatch, error)
}

type ranker struct {
	source     CandidateSource
	logger     logging.Logger
	maxMatches int
}

// RankerOption customises a Ranker.
type RankerOption func(*ranker)

// WithMaxMatches overrides the cap on the ranked list.  Values below 1 are
// ignored.
func WithMaxMatches(n int) RankerOption {
	return func(r *ranker) {
		if n >= 1 {
			r.maxMatches = n
		}
	}
}

// NewRanker creates a Ranker backed by the given candidate source.  A nil
// source falls back to the deterministic simulation; a nil logger is replaced
// with a no-op implementation.
func NewRanker(source CandidateSource, logger logging.Logger, opts ...RankerOption) Ranker {
	if source == nil {
		source = NewSimulatedSource()
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	r := &ranker{
		source:     source,
		logger:     logger.Named("lawyermatch"),
		maxMatches: defaultMaxMatches,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Match fetches candidate profiles, applies the weighted composite score, and
// returns at most the configured cap of candidates sorted non-increasing by
// score.  Ties preserve generation order (stable sort).
func (r *ranker) Match(ctx context.Context, req *intake.MatchRequest) ([]intake.CandidateMatch, error) {
	if req == nil || req.CaseID == "" {
		return nil, errors.New(errors.ErrCodeMatchInputMissing, "case_id is required")
	}

	profiles, err := r.source.Fetch(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeMatchFailed, "candidate source failed")
	}

	matches := make([]intake.CandidateMatch, 0, len(profiles))
	for _, p := range profiles {
		composite := p.ExpertiseMatch*weightExpertise +
			p.AvailabilityScore*weightAvailability +
			p.LocationProximity*weightProximity +
			languageScore(p.LanguageCompatible)*weightLanguage

		matches = append(matches, intake.CandidateMatch{
			LawyerID:              p.LawyerID,
			MatchScore:            round2(composite),
			ExpertiseMatch:        round2(p.ExpertiseMatch),
			AvailabilityScore:     round2(p.AvailabilityScore),
			LocationProximity:     round2(p.LocationProximity),
			LanguageCompatibility: p.LanguageCompatible,
			EstimatedResponseTime: p.EstimatedResponseTime,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	if len(matches) > r.maxMatches {
		matches = matches[:r.maxMatches]
	}

	r.logger.Debug("matching complete",
		logging.String("case_id", req.CaseID),
		logging.Int("matches", len(matches)),
	)
	return matches, nil
}

func languageScore(compatible bool) float64 {
	if compatible {
		return languageMatchScore
	}
	return languageMismatchScore
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ---------------------------------------------------------------------------
// Simulated candidate source
// ---------------------------------------------------------------------------

// Simulation parameters.  The first few candidates draw from higher-biased
// ranges so the list resembles a pool pre-filtered by expertise and location.
const (
	minCandidates = 3
	maxCandidates = 8

	topExpertiseCount = 3
	topProximityCount = 2
)

// responseBuckets maps an urgency tier to the literal response-time buckets a
// simulated candidate is drawn from.
func responseBuckets(urgency intake.Urgency) []string {
	switch urgency {
	case intake.UrgencyCritical:
		return []string{"30 minutes", "1 hour", "2 hours"}
	case intake.UrgencyHigh:
		return []string{"2 hours", "4 hours", "6 hours"}
	default:
		return []string{"12 hours", "24 hours", "48 hours"}
	}
}

type simulatedSource struct{}

// NewSimulatedSource returns the placeholder candidate source.  Its output is
// a pure function of the request: the PRNG is seeded from a stable hash of the
// case identifier, so identical case IDs produce identical profiles across
// runs.  This determinism is a hard contract for test reproducibility.
func NewSimulatedSource() CandidateSource {
	return simulatedSource{}
}

// Fetch generates between 3 and 8 candidate profiles with biased random
// sub-scores.
func (simulatedSource) Fetch(_ context.Context, req *intake.MatchRequest) ([]CandidateProfile, error) {
	rng := rand.New(rand.NewSource(seedFor(req.CaseID)))
	buckets := responseBuckets(req.Urgency)

	n := minCandidates + rng.Intn(maxCandidates-minCandidates+1)
	profiles := make([]CandidateProfile, 0, n)
	for i := 0; i < n; i++ {
		expertise := uniform(rng, 0.5, 0.8)
		if i < topExpertiseCount {
			expertise = uniform(rng, 0.7, 1.0)
		}

		availability := uniform(rng, 0.6, 1.0)

		proximity := uniform(rng, 0.5, 0.9)
		if i < topProximityCount {
			proximity = uniform(rng, 0.8, 1.0)
		}

		// Weighted boolean draw, ~75% compatible.
		languageCompatible := rng.Intn(4) != 0

		profiles = append(profiles, CandidateProfile{
			LawyerID:              fmt.Sprintf("lawyer_%03d", i+1),
			ExpertiseMatch:        expertise,
			AvailabilityScore:     availability,
			LocationProximity:     proximity,
			LanguageCompatible:    languageCompatible,
			EstimatedResponseTime: buckets[rng.Intn(len(buckets))],
		})
	}
	return profiles, nil
}

// seedFor derives a deterministic PRNG seed from a case identifier.
func seedFor(caseID string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(caseID))
	return int64(h.Sum64())
}

// uniform draws from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
