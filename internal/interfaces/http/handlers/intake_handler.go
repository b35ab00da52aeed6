package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appintake "github.com/turtacn/LegalAid-Intelligence/internal/application/intake"
	"github.com/turtacn/LegalAid-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/LegalAid-Intelligence/pkg/types/intake"
)

// IntakeHandler exposes the four analysis operations over HTTP.
type IntakeHandler struct {
	service appintake.Service
	logger  logging.Logger
}

func NewIntakeHandler(service appintake.Service, logger logging.Logger) *IntakeHandler {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &IntakeHandler{
		service: service,
		logger:  logger.Named("handlers"),
	}
}

// Triage handles POST /api/v1/triage.
func (h *IntakeHandler) Triage(c *gin.Context) {
	var narrative intake.CaseNarrative
	if !bindJSON(c, &narrative) {
		return
	}

	result, err := h.service.TriageCase(c.Request.Context(), &narrative)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// MatchResponse wraps the ranked candidates for the match endpoint.
type MatchResponse struct {
	Matches      []intake.CandidateMatch `json:"matches"`
	TotalMatches int                     `json:"total_matches"`
}

// Match handles POST /api/v1/match.
func (h *IntakeHandler) Match(c *gin.Context) {
	var req intake.MatchRequest
	if !bindJSON(c, &req) {
		return
	}

	matches, err := h.service.MatchLawyers(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	if matches == nil {
		matches = []intake.CandidateMatch{}
	}
	c.JSON(http.StatusOK, MatchResponse{
		Matches:      matches,
		TotalMatches: len(matches),
	})
}

// AnalyzeDocument handles POST /api/v1/analyze-document.
func (h *IntakeHandler) AnalyzeDocument(c *gin.Context) {
	var doc intake.DocumentInput
	if !bindJSON(c, &doc) {
		return
	}

	result, err := h.service.AnalyzeDocument(c.Request.Context(), &doc)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DetectPatternsRequest carries the case batch for pattern detection.
type DetectPatternsRequest struct {
	Cases []intake.CaseRecord `json:"cases"`
}

// DetectPatterns handles POST /api/v1/detect-patterns.
func (h *IntakeHandler) DetectPatterns(c *gin.Context) {
	var req DetectPatternsRequest
	if !bindJSON(c, &req) {
		return
	}

	report, err := h.service.DetectPatterns(c.Request.Context(), req.Cases)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
