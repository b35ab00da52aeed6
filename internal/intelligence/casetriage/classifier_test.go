package casetriage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/LegalAid-Intelligence/internal/intelligence/taxonomy"
	"github.com/turtacn/LegalAid-Intelligence/pkg/errors"
	"github.com/turtacn/LegalAid-Intelligence/pkg/types/intake"
)

func newTestClassifier() Classifier {
	return NewClassifier(nil)
}

func TestClassifyAsylumCritical(t *testing.T) {
	c := newTestClassifier()

	res, err := c.Classify(context.Background(), &intake.CaseNarrative{
		Title:       "Urgent asylum case, fled persecution",
		Description: "immediate danger, life threatening",
		Location:    intake.Location{"country": "France"},
	})
	require.NoError(t, err)

	assert.Equal(t, intake.CategoryAsylum, res.CaseType)
	// Critical-tier keywords are present and checked before high/medium/low.
	assert.Equal(t, intake.UrgencyCritical, res.Urgency)
	assert.Equal(t, "France", res.Jurisdiction)
	assert.GreaterOrEqual(t, res.Confidence, 0.6)
	assert.Equal(t, []string{"immigration_law", "refugee_law", "human_rights"}, res.RecommendedExpertise)
	assert.Equal(t, intake.ComplexityLow, res.EstimatedComplexity)
}

func TestClassifySingleCategoryKeywords(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		category intake.CaseCategory
	}{
		{"torture", "they were tortured and beaten in custody of nobody", intake.CategoryTorture},
		{"detention", "he was detained and imprisoned without charge", intake.CategoryArbitraryDetention},
		{"disappearance", "my brother went missing, whereabouts unknown", intake.CategoryDisappearance},
		{"discrimination", "workplace racism and prejudice", intake.CategoryDiscrimination},
		{"expression", "the journalist was censored by the press authority", intake.CategoryFreedomExpression},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClassifier()
			res, err := c.Classify(context.Background(), &intake.CaseNarrative{
				Title:       tt.text,
				Description: "details to follow",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.category, res.CaseType)
			assert.GreaterOrEqual(t, res.Confidence, 0.6)
		})
	}
}

func TestClassifyNoCategoryMatch(t *testing.T) {
	c := newTestClassifier()

	res, err := c.Classify(context.Background(), &intake.CaseNarrative{
		Title:       "General inquiry",
		Description: "I would like some help with my neighbour's fence",
	})
	require.NoError(t, err)

	assert.Equal(t, intake.CategoryOther, res.CaseType)
	assert.Equal(t, 0.5, res.Confidence)
	assert.Equal(t, taxonomy.ExpertiseFor(intake.CategoryOther), res.RecommendedExpertise)
}

func TestClassifyTieBreakFirstDeclaredWins(t *testing.T) {
	c := newTestClassifier()

	// One asylum keyword and one torture keyword: equal counts, so the
	// first-declared category (asylum) must win.
	res, err := c.Classify(context.Background(), &intake.CaseNarrative{
		Title:       "refugee report",
		Description: "the victim was beaten",
	})
	require.NoError(t, err)
	assert.Equal(t, intake.CategoryAsylum, res.CaseType)
}

func TestClassifyConfidenceCapped(t *testing.T) {
	c := newTestClassifier()

	// All seven asylum keywords present: 0.6 + 7*0.1 would exceed the cap.
	res, err := c.Classify(context.Background(), &intake.CaseNarrative{
		Title:       "asylum refugee persecution",
		Description: "flee fled escape sanctuary",
	})
	require.NoError(t, err)
	assert.Equal(t, intake.CategoryAsylum, res.CaseType)
	assert.Equal(t, 0.95, res.Confidence)
}

func TestClassifyUrgencyDefault(t *testing.T) {
	c := newTestClassifier()

	res, err := c.Classify(context.Background(), &intake.CaseNarrative{
		Title:       "asylum matter",
		Description: "nothing time sensitive here",
	})
	require.NoError(t, err)
	assert.Equal(t, intake.UrgencyMedium, res.Urgency)
}

func TestClassifyUrgencyLow(t *testing.T) {
	c := newTestClassifier()

	res, err := c.Classify(context.Background(), &intake.CaseNarrative{
		Title:       "asylum matter",
		Description: "just looking for some guidance on the process",
	})
	require.NoError(t, err)
	assert.Equal(t, intake.UrgencyLow, res.Urgency)
}

func TestClassifyComplexityMonotonic(t *testing.T) {
	c := newTestClassifier()

	keywords := "asylum refugee case"
	short := &intake.CaseNarrative{
		Title:       keywords,
		Description: strings.Repeat("word ", 100),
	}
	long := &intake.CaseNarrative{
		Title:       keywords,
		Description: strings.Repeat("word ", 600),
	}

	shortRes, err := c.Classify(context.Background(), short)
	require.NoError(t, err)
	longRes, err := c.Classify(context.Background(), long)
	require.NoError(t, err)

	assert.Equal(t, intake.ComplexityLow, shortRes.EstimatedComplexity)
	assert.Equal(t, intake.ComplexityHigh, longRes.EstimatedComplexity)
}

func TestClassifyComplexityBoundaries(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		words int
		want  intake.Complexity
	}{
		{200, intake.ComplexityLow},
		{201, intake.ComplexityMedium},
		{500, intake.ComplexityMedium},
		{501, intake.ComplexityHigh},
	}
	for _, tt := range tests {
		// Title contributes one word; subtract it from the repeat count.
		res, err := c.Classify(context.Background(), &intake.CaseNarrative{
			Title:       "narrative",
			Description: strings.TrimSpace(strings.Repeat("word ", tt.words-1)),
		})
		require.NoError(t, err)
		assert.Equal(t, tt.want, res.EstimatedComplexity, "words=%d", tt.words)
	}
}

func TestClassifyJurisdictionUnknown(t *testing.T) {
	c := newTestClassifier()

	res, err := c.Classify(context.Background(), &intake.CaseNarrative{
		Title:       "asylum case",
		Description: "no location given",
	})
	require.NoError(t, err)
	assert.Equal(t, "unknown", res.Jurisdiction)
}

func TestClassifyEmptyInput(t *testing.T) {
	c := newTestClassifier()

	_, err := c.Classify(context.Background(), &intake.CaseNarrative{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeTriageInputMissing))

	_, err = c.Classify(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeTriageInputMissing))
}

func TestClassifyDeterministic(t *testing.T) {
	c := newTestClassifier()
	narrative := &intake.CaseNarrative{
		Title:       "Urgent asylum case, fled persecution",
		Description: "immediate danger, life threatening",
		Location:    intake.Location{"country": "France"},
	}

	first, err := c.Classify(context.Background(), narrative)
	require.NoError(t, err)
	second, err := c.Classify(context.Background(), narrative)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
