package services

import (
	"strings"

	"lead-scoring-backend/internal/config"
	"lead-scoring-backend/internal/models"
)

// Decision maker keywords, checked before influencer keywords.
var decisionMakerKeywords = []string{
	"ceo", "cto", "cfo", "coo", "chief", "president", "vp", "vice president",
	"director", "head", "founder", "owner", "partner", "principal",
}

// Influencer keywords
var influencerKeywords = []string{
	"manager", "lead", "senior", "sr", "specialist", "architect",
	"consultant", "advisor", "strategist", "coordinator",
}

// Industries considered adjacent to a typical B2B software ICP.
var adjacentIndustryKeywords = []string{
	"saas", "software", "technology", "tech", "b2b", "enterprise",
}

// requiredLeadFields are the fields a lead must fill for completeness points.
func requiredLeadFields(lead *models.Lead) []string {
	return []string{
		lead.Name, lead.Role, lead.Company,
		lead.Industry, lead.Location, lead.LinkedInBio,
	}
}

// RuleEngine computes the deterministic half of a lead's score, max 50
// points. It is a pure function of the lead and the offer.
type RuleEngine struct {
	cfg config.ScoringConfig
}

func NewRuleEngine(cfg config.ScoringConfig) *RuleEngine {
	return &RuleEngine{cfg: cfg}
}

// CalculateRuleScore combines role relevance (max 20), industry match
// (max 20), and data completeness (max 10).
func (e *RuleEngine) CalculateRuleScore(lead *models.Lead, offer *models.Offer) models.RuleScoreResult {
	roleScore, roleMatch := e.ScoreRole(lead.Role)

	var useCases []string
	if offer != nil {
		useCases = offer.IdealUseCases
	}
	industryScore, industryMatch := e.ScoreIndustry(lead.Industry, useCases)

	completenessScore, complete := e.ScoreCompleteness(lead)

	return models.RuleScoreResult{
		Total: roleScore + industryScore + completenessScore,
		Breakdown: models.RuleBreakdown{
			Role:         roleScore,
			Industry:     industryScore,
			Completeness: completenessScore,
		},
		Details: models.RuleDetails{
			RoleMatch:     roleMatch,
			IndustryMatch: industryMatch,
			DataComplete:  complete,
		},
	}
}

// ScoreRole scores the lead's role relevance. Decision maker keywords take
// priority over influencer keywords; an empty role is "Unknown" rather than
// "Other".
func (e *RuleEngine) ScoreRole(role string) (int, string) {
	if role == "" {
		return 0, models.RoleUnknown
	}

	roleLower := strings.ToLower(role)

	for _, keyword := range decisionMakerKeywords {
		if strings.Contains(roleLower, keyword) {
			return e.cfg.RoleDecisionMaker, models.RoleDecisionMaker
		}
	}

	for _, keyword := range influencerKeywords {
		if strings.Contains(roleLower, keyword) {
			return e.cfg.RoleInfluencer, models.RoleInfluencer
		}
	}

	return 0, models.RoleOther
}

// ScoreIndustry scores the lead's industry against the offer's ideal use
// cases: exact ICP match when either string contains the other, otherwise an
// adjacency keyword check.
func (e *RuleEngine) ScoreIndustry(industry string, idealUseCases []string) (int, string) {
	if industry == "" || len(idealUseCases) == 0 {
		return 0, models.IndustryNoData
	}

	industryLower := strings.ToLower(industry)

	for _, useCase := range idealUseCases {
		useCaseLower := strings.ToLower(useCase)
		if strings.Contains(industryLower, useCaseLower) || strings.Contains(useCaseLower, industryLower) {
			return e.cfg.IndustryExact, models.IndustryExactMatch
		}
	}

	for _, keyword := range adjacentIndustryKeywords {
		if strings.Contains(industryLower, keyword) {
			return e.cfg.IndustryAdjacent, models.IndustryAdjacent
		}
	}

	return 0, models.IndustryDifferent
}

// ScoreCompleteness awards full points only when every required lead field
// is non-empty after trimming.
func (e *RuleEngine) ScoreCompleteness(lead *models.Lead) (int, bool) {
	for _, field := range requiredLeadFields(lead) {
		if strings.TrimSpace(field) == "" {
			return 0, false
		}
	}

	return e.cfg.CompletenessPoints, true
}
