// Package docanalysis extracts structured facts from free-text documents:
// named entities, dated events, a summary, a document category, and a
// relevance score.
//
// Extraction is pattern-based. The heuristics have known imprecisions:
// capitalized place names also match the person pattern, and sentence
// splitting is purely on the period character. Both are accepted limitations
// of the approach, not defects.
package docanalysis

import (
	"context"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/turtacn/LegalAid-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/LegalAid-Intelligence/internal/intelligence/taxonomy"
	"github.com/turtacn/LegalAid-Intelligence/pkg/errors"
	"github.com/turtacn/LegalAid-Intelligence/pkg/types/intake"
)

// Collection caps on extractor output.
const (
	maxEntities   = 10
	maxKeyDates   = 5
	maxEventChars = 100
	summaryMax    = 200
	summaryMarker = "..."
)

// Relevance score parameters.
const (
	relevanceBase      = 0.5
	relevancePerTerm   = 0.1
	relevancePerKWords = 0.2
	relevanceCeiling   = 0.95
)

// orgKeywords is the fixed list of institutional keywords used to anchor
// organization extraction.
var orgKeywords = []string{
	"Department", "Ministry", "Organization", "Agency", "Bureau", "Office", "Court",
}

var (
	personPattern   = regexp.MustCompile(`\b([A-Z][a-z]+ [A-Z][a-z]+)\b`)
	locationPattern = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?(?:,\s*[A-Z]{2,3})?)\b`)

	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),                                                             // YYYY-MM-DD
		regexp.MustCompile(`\b\d{2}/\d{2}/\d{4}\b`),                                                             // MM/DD/YYYY
		regexp.MustCompile(`(?i)\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]* \d{1,2},? \d{4}\b`), // Month DD, YYYY
	}

	orgPatterns = buildOrgPatterns()
)

func buildOrgPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(orgKeywords))
	for _, kw := range orgKeywords {
		patterns = append(patterns, regexp.MustCompile(kw+` of [A-Z][a-z]+(?:\s+[A-Z][a-z]+)*`))
	}
	return patterns
}

// Extractor analyses a document and produces an extraction result.
type Extractor interface {
	Extract(ctx context.Context, doc *intake.DocumentInput) (*intake.ExtractionResult, error)
}

type extractor struct {
	logger logging.Logger
}

// NewExtractor creates an Extractor.  A nil logger is replaced with a no-op
// implementation.
func NewExtractor(logger logging.Logger) Extractor {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &extractor{logger: logger.Named("docanalysis")}
}

// Extract runs the full pattern-based pipeline.  Empty or absent content
// yields empty entity collections and an empty summary, never an error.
func (e *extractor) Extract(_ context.Context, doc *intake.DocumentInput) (*intake.ExtractionResult, error) {
	if doc == nil {
		return nil, errors.New(errors.ErrCodeDocumentInputMissing, "document is required")
	}

	content := norm.NFC.String(doc.Content)
	lower := strings.ToLower(content)

	dates := extractDates(content)
	result := &intake.ExtractionResult{
		DocumentID: doc.DocumentID,
		ExtractedEntities: intake.ExtractedEntities{
			Persons:       personPatternMatches(content),
			Organizations: extractOrganizations(content),
			Locations:     locationPatternMatches(content),
			Dates:         dates,
		},
		KeyDates:         keyDatedEvents(content, dates),
		Summary:          summarize(content),
		RelevanceScore:   relevanceScore(lower, content),
		DocumentCategory: detectDocumentCategory(lower),
		LanguageDetected: doc.Language,
	}

	e.logger.Debug("document analysis complete",
		logging.String("document_id", doc.DocumentID),
		logging.String("category", result.DocumentCategory),
		logging.Int("dates", len(dates)),
	)
	return result, nil
}

// personPatternMatches finds two-consecutive-capitalized-word spans.  The
// scan allows overlapping matches so that in "Contact John Smith" both
// "Contact John" and "John Smith" are candidates; real names would otherwise
// be shadowed by a preceding capitalized word.
func personPatternMatches(content string) []string {
	var persons []string
	pos := 0
	for pos < len(content) {
		loc := personPattern.FindStringIndex(content[pos:])
		if loc == nil {
			break
		}
		persons = append(persons, content[pos+loc[0]:pos+loc[1]])
		// Advance one rune past the match start to permit overlap.
		_, width := utf8.DecodeRuneInString(content[pos+loc[0]:])
		pos += loc[0] + width
	}
	return dedupeCap(persons, maxEntities)
}

// extractOrganizations unions "<keyword> of <CapitalizedPhrase>" matches
// across all institutional keywords.
func extractOrganizations(content string) []string {
	var orgs []string
	for _, p := range orgPatterns {
		orgs = append(orgs, p.FindAllString(content, -1)...)
	}
	return dedupeCap(orgs, maxEntities)
}

// locationPatternMatches finds capitalized word sequences, optionally followed
// by a 2–3 letter region code.  Overlap with person and organization matches
// is a known imprecision of the heuristic.
func locationPatternMatches(content string) []string {
	return dedupeCap(locationPattern.FindAllString(content, -1), maxEntities)
}

// extractDates unions matches of the three supported literal date formats.
func extractDates(content string) []string {
	var dates []string
	for _, p := range datePatterns {
		dates = append(dates, p.FindAllString(content, -1)...)
	}
	return dedupeCap(dates, maxEntities)
}

// keyDatedEvents contextualizes up to the first maxKeyDates extracted dates:
// content is split into sentences on the period character and the first
// sentence containing the date's literal text supplies the event description.
func keyDatedEvents(content string, dates []string) []intake.KeyDate {
	keyDates := make([]intake.KeyDate, 0, maxKeyDates)
	if content == "" {
		return keyDates
	}
	sentences := strings.Split(content, ".")
	limit := len(dates)
	if limit > maxKeyDates {
		limit = maxKeyDates
	}
	for _, date := range dates[:limit] {
		for _, sentence := range sentences {
			if strings.Contains(sentence, date) {
				keyDates = append(keyDates, intake.KeyDate{
					Date:  date,
					Event: truncateRunes(strings.TrimSpace(sentence), maxEventChars),
				})
				break
			}
		}
	}
	return keyDates
}

// summarize returns the first summaryMax characters of content with a
// trailing marker when content was longer.
func summarize(content string) string {
	runes := []rune(content)
	if len(runes) <= summaryMax {
		return content
	}
	return string(runes[:summaryMax]) + summaryMarker
}

// detectDocumentCategory scans the document category tables in declared order
// and returns the first category with any keyword present, default "other".
func detectDocumentCategory(lower string) string {
	for _, entry := range taxonomy.DocumentCategories() {
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				return entry.Category
			}
		}
	}
	return "other"
}

// relevanceScore combines relevance-term density and document length.
func relevanceScore(lower, content string) float64 {
	termCount := 0
	for _, term := range taxonomy.RelevanceTerms() {
		if strings.Contains(lower, term) {
			termCount++
		}
	}
	words := float64(len(strings.Fields(content)))
	score := relevanceBase + relevancePerTerm*float64(termCount) + relevancePerKWords*(words/1000)
	return round2(math.Min(relevanceCeiling, score))
}

// dedupeCap removes duplicates, preserves first-occurrence order, and caps
// the result at n items.  It always returns a non-nil slice so entity
// collections serialize as [] rather than null.
func dedupeCap(items []string, n int) []string {
	out := make([]string, 0, n)
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
		if len(out) == n {
			break
		}
	}
	return out
}

// truncateRunes cuts s to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
