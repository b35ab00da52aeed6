// Package taxonomy holds the static keyword tables shared by the analytic
// services: case categories, urgency tiers, expertise recommendations,
// document categories, and relevance terms.  Tables are process-wide read-only
// configuration loaded once at init; declaration order is significant because
// it doubles as the tie-break and scan order for the classifiers.
package taxonomy

import "github.com/turtacn/LegalAid-Intelligence/pkg/types/intake"

// CategoryKeywords associates one case category with its keyword substrings.
type CategoryKeywords struct {
	Category intake.CaseCategory
	Keywords []string
}

// caseCategories is scanned in order; on equal keyword counts the
// first-declared category wins.
var caseCategories = []CategoryKeywords{
	{intake.CategoryAsylum, []string{"asylum", "refugee", "persecution", "flee", "fled", "escape", "sanctuary"}},
	{intake.CategoryTorture, []string{"torture", "tortured", "cruel treatment", "inhuman", "degrading", "abuse", "beaten"}},
	{intake.CategoryArbitraryDetention, []string{"detention", "detained", "imprisoned", "custody", "arrest", "jail", "locked"}},
	{intake.CategoryDisappearance, []string{"disappear", "missing", "vanish", "abduct", "kidnap", "whereabouts unknown"}},
	{intake.CategoryDiscrimination, []string{"discriminat", "racism", "sexism", "bias", "prejudice", "inequality"}},
	{intake.CategoryFreedomExpression, []string{"censor", "speech", "expression", "journalist", "press", "media", "publish"}},
}

// UrgencyKeywords associates one urgency tier with its keyword substrings.
type UrgencyKeywords struct {
	Tier     intake.Urgency
	Keywords []string
}

// urgencyTiers is scanned in priority order; the first tier with any match
// wins.
var urgencyTiers = []UrgencyKeywords{
	{intake.UrgencyCritical, []string{"immediate danger", "life threatening", "imminent", "emergency", "critical", "dying"}},
	{intake.UrgencyHigh, []string{"urgent", "soon", "quickly", "danger", "threat", "risk", "afraid"}},
	{intake.UrgencyMedium, []string{"concern", "worried", "uncertain", "help needed"}},
	{intake.UrgencyLow, []string{"advice", "question", "information", "guidance"}},
}

// expertiseByCategory maps every case category, including "other", to a
// non-empty ordered list of expertise tags.
var expertiseByCategory = map[intake.CaseCategory][]string{
	intake.CategoryAsylum:             {"immigration_law", "refugee_law", "human_rights"},
	intake.CategoryTorture:            {"human_rights", "criminal_law", "international_law"},
	intake.CategoryArbitraryDetention: {"criminal_law", "human_rights", "habeas_corpus"},
	intake.CategoryDisappearance:      {"human_rights", "criminal_law", "family_law"},
	intake.CategoryDiscrimination:     {"civil_rights", "employment_law", "human_rights"},
	intake.CategoryFreedomExpression:  {"constitutional_law", "media_law", "human_rights"},
	intake.CategoryOther:              {"general_practice", "human_rights"},
}

// DocumentCategoryKeywords associates one document category with its keyword
// substrings.
type DocumentCategoryKeywords struct {
	Category string
	Keywords []string
}

// documentCategories is scanned in order; the first category with any match
// wins, default "other".
var documentCategories = []DocumentCategoryKeywords{
	{"legal_statement", []string{"statement", "affidavit", "declaration", "testimony"}},
	{"evidence", []string{"evidence", "proof", "documentation", "witness"}},
	{"court_document", []string{"court", "judgment", "order", "decree", "ruling"}},
	{"identity_document", []string{"passport", "id", "certificate", "birth", "marriage"}},
	{"correspondence", []string{"letter", "email", "communication", "memo"}},
}

// relevanceTerms is the fixed set of human-rights domain terms that raise a
// document's relevance score.
var relevanceTerms = []string{
	"human rights", "violation", "abuse", "persecution", "asylum", "torture",
}

// CaseCategories returns the ordered category keyword tables.
// Callers must not mutate the returned slice.
func CaseCategories() []CategoryKeywords { return caseCategories }

// UrgencyTiers returns the urgency keyword tables in priority order.
// Callers must not mutate the returned slice.
func UrgencyTiers() []UrgencyKeywords { return urgencyTiers }

// ExpertiseFor returns the recommended expertise tags for a category.
// Unknown categories fall back to the "other" entry.
func ExpertiseFor(category intake.CaseCategory) []string {
	if tags, ok := expertiseByCategory[category]; ok {
		return tags
	}
	return expertiseByCategory[intake.CategoryOther]
}

// DocumentCategories returns the ordered document category keyword tables.
// Callers must not mutate the returned slice.
func DocumentCategories() []DocumentCategoryKeywords { return documentCategories }

// RelevanceTerms returns the relevance keyword set.
// Callers must not mutate the returned slice.
func RelevanceTerms() []string { return relevanceTerms }
