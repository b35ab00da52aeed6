package docanalysis

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/LegalAid-Intelligence/pkg/types/intake"
)

func newTestExtractor() Extractor {
	return NewExtractor(nil)
}

func extract(t *testing.T, content string) *intake.ExtractionResult {
	t.Helper()
	res, err := newTestExtractor().Extract(context.Background(), &intake.DocumentInput{
		DocumentID:   "doc-001",
		DocumentType: "statement",
		Language:     "en",
		Content:      content,
	})
	require.NoError(t, err)
	return res
}

func TestExtractReferenceDocument(t *testing.T) {
	res := extract(t, "Contact John Smith at the Ministry of Justice on 2024-01-15 regarding the case.")

	assert.Contains(t, res.ExtractedEntities.Persons, "John Smith")
	assert.Contains(t, res.ExtractedEntities.Organizations, "Ministry of Justice")
	assert.Contains(t, res.ExtractedEntities.Dates, "2024-01-15")
	assert.Equal(t, "other", res.DocumentCategory)
	assert.Equal(t, "en", res.LanguageDetected)
	assert.Equal(t, "doc-001", res.DocumentID)
}

func TestExtractEmptyContent(t *testing.T) {
	res := extract(t, "")

	assert.Empty(t, res.ExtractedEntities.Persons)
	assert.Empty(t, res.ExtractedEntities.Organizations)
	assert.Empty(t, res.ExtractedEntities.Locations)
	assert.Empty(t, res.ExtractedEntities.Dates)
	assert.Empty(t, res.KeyDates)
	assert.Empty(t, res.Summary)
	assert.Equal(t, "other", res.DocumentCategory)
	assert.Equal(t, 0.5, res.RelevanceScore)
}

func TestExtractNilDocument(t *testing.T) {
	_, err := newTestExtractor().Extract(context.Background(), nil)
	require.Error(t, err)
}

func TestExtractDateFormats(t *testing.T) {
	res := extract(t, "Filed on 2023-06-01, hearing on 07/15/2023, decided January 3, 2024, appeal by Feb 9 2024.")

	assert.Contains(t, res.ExtractedEntities.Dates, "2023-06-01")
	assert.Contains(t, res.ExtractedEntities.Dates, "07/15/2023")
	assert.Contains(t, res.ExtractedEntities.Dates, "January 3, 2024")
	assert.Contains(t, res.ExtractedEntities.Dates, "Feb 9 2024")
}

func TestExtractDatesDeduplicated(t *testing.T) {
	res := extract(t, "On 2024-01-15 and again on 2024-01-15 the witness appeared.")

	count := 0
	for _, d := range res.ExtractedEntities.Dates {
		if d == "2024-01-15" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExtractEntityCaps(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 15; i++ {
		sb.WriteString("Meeting on 2024-01-")
		sb.WriteByte(byte('0' + (i / 10)))
		sb.WriteByte(byte('1' + (i % 9)))
		sb.WriteString(". ")
	}
	res := extract(t, sb.String())

	assert.LessOrEqual(t, len(res.ExtractedEntities.Dates), 10)
	assert.LessOrEqual(t, len(res.KeyDates), 5)
}

func TestExtractKeyDatesContext(t *testing.T) {
	content := "The arrest happened on 2024-01-15 in the city center. The trial began on 2024-02-20 at the court."
	res := extract(t, content)

	require.NotEmpty(t, res.KeyDates)
	byDate := map[string]string{}
	for _, kd := range res.KeyDates {
		byDate[kd.Date] = kd.Event
	}
	assert.Equal(t, "The arrest happened on 2024-01-15 in the city center", byDate["2024-01-15"])
	assert.Contains(t, byDate["2024-02-20"], "trial began")
}

func TestExtractKeyDateEventTruncated(t *testing.T) {
	long := "On 2024-01-15 " + strings.Repeat("x", 300) + ". Next sentence."
	res := extract(t, long)

	require.NotEmpty(t, res.KeyDates)
	assert.LessOrEqual(t, len([]rune(res.KeyDates[0].Event)), 100)
}

func TestExtractSummaryTruncation(t *testing.T) {
	short := "A short statement."
	assert.Equal(t, short, extract(t, short).Summary)

	long := strings.Repeat("a", 250)
	summary := extract(t, long).Summary
	assert.Equal(t, 203, len([]rune(summary)))
	assert.True(t, strings.HasSuffix(summary, "..."))
}

func TestExtractDocumentCategories(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		category string
	}{
		{"legal statement", "This affidavit describes the events.", "legal_statement"},
		{"evidence", "The attached proof was collected by a neighbour.", "evidence"},
		{"court document", "The judgment was delivered yesterday.", "court_document"},
		{"identity document", "A copy of the passport is enclosed.", "identity_document"},
		{"correspondence", "A letter was sent to the family.", "correspondence"},
		{"scan order wins", "The witness statement mentions a letter.", "legal_statement"},
		{"none", "Nothing matching here at all.", "other"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.category, extract(t, tt.content).DocumentCategory)
		})
	}
}

func TestExtractRelevanceScore(t *testing.T) {
	// No relevance terms, tiny document: base score.
	assert.Equal(t, 0.5, extract(t, "hello world").RelevanceScore)

	// Two distinct terms in a ten-word document: 0.5 + 0.2 + 0.2*(10/1000).
	res := extract(t, "The torture and persecution continued for years without any remedy")
	assert.Equal(t, 0.7, res.RelevanceScore)

	// Saturated: every term present in a long document hits the ceiling.
	saturated := "human rights violation abuse persecution asylum torture " + strings.Repeat("w ", 1000)
	assert.Equal(t, 0.95, extract(t, saturated).RelevanceScore)
}

func TestExtractScoreBounds(t *testing.T) {
	for _, content := range []string{"", "short", strings.Repeat("torture abuse ", 500)} {
		res := extract(t, content)
		assert.GreaterOrEqual(t, res.RelevanceScore, 0.0)
		assert.LessOrEqual(t, res.RelevanceScore, 1.0)
	}
}

func TestExtractLocationsOverlapPreserved(t *testing.T) {
	// Person names intentionally also appear as location candidates; the
	// overlap is an accepted imprecision of the heuristic.
	res := extract(t, "John Smith travelled to Nairobi, KE last spring.")

	assert.Contains(t, res.ExtractedEntities.Locations, "Nairobi, KE")
	assert.Contains(t, res.ExtractedEntities.Persons, "John Smith")
}

func TestExtractDeterministic(t *testing.T) {
	content := "Contact John Smith at the Ministry of Justice on 2024-01-15 regarding the case."
	first := extract(t, content)
	second := extract(t, content)
	assert.Equal(t, first, second)
}
