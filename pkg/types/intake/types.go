// Package intake defines the shared request and response types for the
// LegalAid-Intelligence analytic services: case triage, lawyer matching,
// document analysis, and cross-case pattern detection.  The JSON field names
// form the wire contract consumed by the API gateway.
package intake

// Location is an open-ended mapping describing where a case arose.  The only
// key the platform interprets is "country"; everything else (city, region,
// coordinates) is carried through untouched.
type Location map[string]string

// Country returns the country field, or the "unknown" sentinel when absent.
func (l Location) Country() string {
	if c, ok := l["country"]; ok && c != "" {
		return c
	}
	return "unknown"
}

// CaseCategory is one of a fixed enumerated set of legal-case classifications.
type CaseCategory string

const (
	CategoryAsylum             CaseCategory = "asylum"
	CategoryTorture            CaseCategory = "torture"
	CategoryArbitraryDetention CaseCategory = "arbitrary_detention"
	CategoryDisappearance      CaseCategory = "disappearance"
	CategoryDiscrimination     CaseCategory = "discrimination"
	CategoryFreedomExpression  CaseCategory = "freedom_expression"
	CategoryOther              CaseCategory = "other"
)

// Urgency is one of four ordered urgency tiers, prioritized critical > high >
// medium > low during detection.
type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyHigh     Urgency = "high"
	UrgencyMedium   Urgency = "medium"
	UrgencyLow      Urgency = "low"
)

// Valid reports whether u is a member of the closed urgency set.
func (u Urgency) Valid() bool {
	switch u {
	case UrgencyCritical, UrgencyHigh, UrgencyMedium, UrgencyLow:
		return true
	}
	return false
}

// Complexity is one of three ordered complexity tiers derived from narrative
// length.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// CaseNarrative is the immutable input to case triage.  CaseID is optional;
// when present it keys the triage result cache.
type CaseNarrative struct {
	CaseID         string            `json:"case_id,omitempty"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Location       Location          `json:"location"`
	AdditionalInfo map[string]string `json:"additional_info,omitempty"`
}

// TriageResult is the output of case triage.  A fresh value is created per
// call; it carries no reference back to the narrative it was derived from.
type TriageResult struct {
	CaseType             CaseCategory `json:"case_type"`
	Urgency              Urgency      `json:"urgency"`
	Jurisdiction         string       `json:"jurisdiction"`
	Confidence           float64      `json:"confidence"`
	RecommendedExpertise []string     `json:"recommended_expertise"`
	EstimatedComplexity  Complexity   `json:"estimated_complexity"`
}

// MatchRequest describes a case's requirements for lawyer matching.
type MatchRequest struct {
	CaseID            string   `json:"case_id"`
	CaseType          string   `json:"case_type"`
	Urgency           Urgency  `json:"urgency"`
	Location          Location `json:"location"`
	RequiredExpertise []string `json:"required_expertise"`
	Language          string   `json:"language"`
}

// CandidateMatch is a single scored lawyer candidate.  All score fields stay
// within [0,1]; MatchScore is the weighted composite used for ranking.
type CandidateMatch struct {
	LawyerID              string  `json:"lawyer_id"`
	MatchScore            float64 `json:"match_score"`
	ExpertiseMatch        float64 `json:"expertise_match"`
	AvailabilityScore     float64 `json:"availability_score"`
	LocationProximity     float64 `json:"location_proximity"`
	LanguageCompatibility bool    `json:"language_compatibility"`
	EstimatedResponseTime string  `json:"estimated_response_time"`
}

// DocumentInput is the input to document analysis.  Content is optional;
// absent content yields a degenerate, empty extraction rather than an error.
type DocumentInput struct {
	DocumentID   string `json:"document_id"`
	DocumentType string `json:"document_type"`
	Language     string `json:"language"`
	Content      string `json:"content,omitempty"`
}

// ExtractedEntities groups the entity collections pulled from a document.
// Each collection is deduplicated and capped at 10 items; ordering within a
// collection is not significant.
type ExtractedEntities struct {
	Persons       []string `json:"persons"`
	Organizations []string `json:"organizations"`
	Locations     []string `json:"locations"`
	Dates         []string `json:"dates"`
}

// KeyDate pairs an extracted date with the first sentence that mentions it.
type KeyDate struct {
	Date  string `json:"date"`
	Event string `json:"event"`
}

// ExtractionResult is the output of document analysis.
type ExtractionResult struct {
	DocumentID        string            `json:"document_id"`
	ExtractedEntities ExtractedEntities `json:"extracted_entities"`
	KeyDates          []KeyDate         `json:"key_dates"`
	Summary           string            `json:"summary"`
	RelevanceScore    float64           `json:"relevance_score"`
	DocumentCategory  string            `json:"document_category"`
	LanguageDetected  string            `json:"language_detected"`
}

// CaseRecord is a minimal view of a stored case used for cross-case pattern
// detection.
type CaseRecord struct {
	CaseID       string   `json:"case_id"`
	CaseType     string   `json:"case_type"`
	Jurisdiction string   `json:"jurisdiction,omitempty"`
	Location     Location `json:"location,omitempty"`
	Summary      string   `json:"summary,omitempty"`
}

// Pattern describes one detected cross-case pattern.  No detector produces
// these yet; the type documents the contract the future implementation must
// satisfy.
type Pattern struct {
	PatternType string   `json:"pattern_type"`
	CaseIDs     []string `json:"case_ids"`
	Description string   `json:"description"`
	Confidence  float64  `json:"confidence"`
}

// PatternReport is the output of pattern detection.
type PatternReport struct {
	Status           string    `json:"status"`
	PatternsDetected []Pattern `json:"patterns_detected"`
	Message          string    `json:"message,omitempty"`
}
