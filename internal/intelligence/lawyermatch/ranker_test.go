package lawyermatch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/LegalAid-Intelligence/pkg/errors"
	"github.com/turtacn/LegalAid-Intelligence/pkg/types/intake"
)

func newTestRanker() Ranker {
	return NewRanker(nil, nil)
}

func matchRequest(caseID string, urgency intake.Urgency) *intake.MatchRequest {
	return &intake.MatchRequest{
		CaseID:            caseID,
		CaseType:          "asylum",
		Urgency:           urgency,
		Location:          intake.Location{"country": "Kenya"},
		RequiredExpertise: []string{"immigration_law"},
		Language:          "en",
	}
}

func TestMatchDeterministic(t *testing.T) {
	r := newTestRanker()
	req := matchRequest("case-7781", intake.UrgencyHigh)

	first, err := r.Match(context.Background(), req)
	require.NoError(t, err)
	second, err := r.Match(context.Background(), req)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i], second[i], "index %d", i)
	}
}

func TestMatchDiffersAcrossCaseIDs(t *testing.T) {
	r := newTestRanker()

	a, err := r.Match(context.Background(), matchRequest("case-a", intake.UrgencyMedium))
	require.NoError(t, err)
	b, err := r.Match(context.Background(), matchRequest("case-b", intake.UrgencyMedium))
	require.NoError(t, err)

	// Different seeds should not produce identical score lists.
	if len(a) == len(b) {
		identical := true
		for i := range a {
			if a[i] != b[i] {
				identical = false
				break
			}
		}
		assert.False(t, identical)
	}
}

func TestMatchSortedAndCapped(t *testing.T) {
	r := newTestRanker()

	for _, caseID := range []string{"c1", "c2", "c3", "c4", "c5", "c6", "c7", "c8"} {
		matches, err := r.Match(context.Background(), matchRequest(caseID, intake.UrgencyMedium))
		require.NoError(t, err)

		assert.LessOrEqual(t, len(matches), 5, caseID)
		for i := 1; i < len(matches); i++ {
			assert.GreaterOrEqual(t, matches[i-1].MatchScore, matches[i].MatchScore, caseID)
		}
	}
}

func TestMatchScoreBounds(t *testing.T) {
	r := newTestRanker()

	matches, err := r.Match(context.Background(), matchRequest("bounds-check", intake.UrgencyCritical))
	require.NoError(t, err)
	require.NotEmpty(t, matches)

	for _, m := range matches {
		assert.GreaterOrEqual(t, m.MatchScore, 0.0)
		assert.LessOrEqual(t, m.MatchScore, 1.0)
		assert.GreaterOrEqual(t, m.ExpertiseMatch, 0.5)
		assert.LessOrEqual(t, m.ExpertiseMatch, 1.0)
		assert.GreaterOrEqual(t, m.AvailabilityScore, 0.6)
		assert.LessOrEqual(t, m.AvailabilityScore, 1.0)
		assert.GreaterOrEqual(t, m.LocationProximity, 0.5)
		assert.LessOrEqual(t, m.LocationProximity, 1.0)
		assert.NotEmpty(t, m.LawyerID)
	}
}

func TestMatchResponseTimeBuckets(t *testing.T) {
	r := newTestRanker()

	tests := []struct {
		urgency intake.Urgency
		allowed []string
	}{
		{intake.UrgencyCritical, []string{"30 minutes", "1 hour", "2 hours"}},
		{intake.UrgencyHigh, []string{"2 hours", "4 hours", "6 hours"}},
		{intake.UrgencyMedium, []string{"12 hours", "24 hours", "48 hours"}},
		{intake.UrgencyLow, []string{"12 hours", "24 hours", "48 hours"}},
	}
	for _, tt := range tests {
		matches, err := r.Match(context.Background(), matchRequest("rt-"+string(tt.urgency), tt.urgency))
		require.NoError(t, err)
		for _, m := range matches {
			assert.Contains(t, tt.allowed, m.EstimatedResponseTime, string(tt.urgency))
		}
	}
}

func TestMatchMissingCaseID(t *testing.T) {
	r := newTestRanker()

	_, err := r.Match(context.Background(), &intake.MatchRequest{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeMatchInputMissing))

	_, err = r.Match(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeMatchInputMissing))
}

func TestMatchCompositeFormula(t *testing.T) {
	// A fixed source pins the formula: composite = 0.40*expertise +
	// 0.30*availability + 0.20*proximity + 0.10*languageScore.
	src := fixedSource{profiles: []CandidateProfile{
		{LawyerID: "l1", ExpertiseMatch: 1.0, AvailabilityScore: 1.0, LocationProximity: 1.0, LanguageCompatible: true, EstimatedResponseTime: "1 hour"},
		{LawyerID: "l2", ExpertiseMatch: 0.5, AvailabilityScore: 0.6, LocationProximity: 0.5, LanguageCompatible: false, EstimatedResponseTime: "48 hours"},
	}}
	r := NewRanker(src, nil)

	matches, err := r.Match(context.Background(), matchRequest("fixed", intake.UrgencyLow))
	require.NoError(t, err)
	require.Len(t, matches, 2)

	assert.Equal(t, 1.0, matches[0].MatchScore)
	// 0.4*0.5 + 0.3*0.6 + 0.2*0.5 + 0.1*0.5 = 0.53
	assert.Equal(t, 0.53, matches[1].MatchScore)
	assert.Equal(t, "l1", matches[0].LawyerID)
}

func TestMatchStableSortPreservesGenerationOrder(t *testing.T) {
	src := fixedSource{profiles: []CandidateProfile{
		{LawyerID: "first", ExpertiseMatch: 0.7, AvailabilityScore: 0.7, LocationProximity: 0.7, LanguageCompatible: true},
		{LawyerID: "second", ExpertiseMatch: 0.7, AvailabilityScore: 0.7, LocationProximity: 0.7, LanguageCompatible: true},
		{LawyerID: "third", ExpertiseMatch: 0.7, AvailabilityScore: 0.7, LocationProximity: 0.7, LanguageCompatible: true},
	}}
	r := NewRanker(src, nil)

	matches, err := r.Match(context.Background(), matchRequest("ties", intake.UrgencyLow))
	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, "first", matches[0].LawyerID)
	assert.Equal(t, "second", matches[1].LawyerID)
	assert.Equal(t, "third", matches[2].LawyerID)
}

func TestMatchMaxMatchesOverride(t *testing.T) {
	src := fixedSource{profiles: []CandidateProfile{
		{LawyerID: "l1", ExpertiseMatch: 0.9, AvailabilityScore: 0.9, LocationProximity: 0.9, LanguageCompatible: true},
		{LawyerID: "l2", ExpertiseMatch: 0.8, AvailabilityScore: 0.8, LocationProximity: 0.8, LanguageCompatible: true},
		{LawyerID: "l3", ExpertiseMatch: 0.7, AvailabilityScore: 0.7, LocationProximity: 0.7, LanguageCompatible: true},
		{LawyerID: "l4", ExpertiseMatch: 0.6, AvailabilityScore: 0.6, LocationProximity: 0.6, LanguageCompatible: true},
	}}
	r := NewRanker(src, nil, WithMaxMatches(2))

	matches, err := r.Match(context.Background(), matchRequest("capped", intake.UrgencyLow))
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "l1", matches[0].LawyerID)
	assert.Equal(t, "l2", matches[1].LawyerID)

	// Values below 1 are ignored and the default cap applies.
	r = NewRanker(src, nil, WithMaxMatches(0))
	matches, err = r.Match(context.Background(), matchRequest("capped", intake.UrgencyLow))
	require.NoError(t, err)
	assert.Len(t, matches, 4)
}

func TestSimulatedSourceCandidateCount(t *testing.T) {
	src := NewSimulatedSource()

	for _, caseID := range []string{"n1", "n2", "n3", "n4", "n5", "n6", "n7", "n8", "n9", "n10"} {
		profiles, err := src.Fetch(context.Background(), matchRequest(caseID, intake.UrgencyMedium))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(profiles), 3, caseID)
		assert.LessOrEqual(t, len(profiles), 8, caseID)
	}
}

// fixedSource returns a canned profile list, bypassing the simulation.
type fixedSource struct {
	profiles []CandidateProfile
}

func (f fixedSource) Fetch(_ context.Context, _ *intake.MatchRequest) ([]CandidateProfile, error) {
	return f.profiles, nil
}
