package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"lead-scoring-backend/internal/config"
	"lead-scoring-backend/internal/models"
)

// FallbackReasoning is attached to leads whose classification failed.
const FallbackReasoning = "Error during scoring, assigned default medium intent"

// fallbackScore is the fixed score assigned when classification fails.
const fallbackScore = 40

// ScoringService runs the full scoring pipeline: rule score plus AI
// classification, merged into a final 0-100 score and intent label.
type ScoringService interface {
	ScoreLeads(ctx context.Context, leads []models.Lead, offer *models.Offer) ([]models.ScoredLead, error)
}

type scoringService struct {
	ruleEngine *RuleEngine
	classifier IntentClassifier
	pacer      Pacer
	cfg        config.ScoringConfig
}

func NewScoringService(
	ruleEngine *RuleEngine,
	classifier IntentClassifier,
	pacer Pacer,
	cfg config.ScoringConfig,
) ScoringService {
	return &scoringService{
		ruleEngine: ruleEngine,
		classifier: classifier,
		pacer:      pacer,
		cfg:        cfg,
	}
}

// ScoreLeads implements ScoringService. Leads are scored strictly
// sequentially with a pacer wait between consecutive AI calls; a failing
// lead gets a fixed fallback record and never aborts the batch.
func (s *scoringService) ScoreLeads(ctx context.Context, leads []models.Lead, offer *models.Offer) ([]models.ScoredLead, error) {
	if len(leads) == 0 {
		return nil, errors.New("no leads to score")
	}
	if offer == nil {
		return nil, errors.New("offer data is required for scoring")
	}

	log.Printf("🔄 Starting to score %d leads...\n", len(leads))

	scoredLeads := make([]models.ScoredLead, 0, len(leads))

	for i := range leads {
		lead := leads[i]
		log.Printf("📊 Scoring lead %d/%d: %s\n", i+1, len(leads), lead.Name)

		scored, err := s.scoreSingleLead(ctx, &lead, offer)
		if err != nil {
			log.Printf("⚠️  Error scoring lead %s: %v\n", lead.Name, err)
			scoredLeads = append(scoredLeads, fallbackScoredLead(&lead, err))
		} else {
			scoredLeads = append(scoredLeads, *scored)
		}

		if i < len(leads)-1 {
			if err := s.pacer.Wait(ctx); err != nil {
				return nil, fmt.Errorf("pacing interrupted: %w", err)
			}
		}
	}

	log.Println("✅ Scoring complete!")
	return scoredLeads, nil
}

func (s *scoringService) scoreSingleLead(ctx context.Context, lead *models.Lead, offer *models.Offer) (*models.ScoredLead, error) {
	// Step 1: deterministic rule score (max 50 points)
	ruleScore := s.ruleEngine.CalculateRuleScore(lead, offer)

	// Step 2: AI intent classification (max 50 points)
	aiResult, err := s.classifier.ClassifyIntent(ctx, offer, lead)
	if err != nil {
		return nil, err
	}

	// Step 3: combine and re-derive the label from the merged score. The
	// final label is score-driven and may differ from the AI's own label.
	totalScore := ruleScore.Total + aiResult.Score
	finalIntent := s.DetermineIntent(totalScore)

	reasoning := buildReasoning(&ruleScore, aiResult, lead)

	return &models.ScoredLead{
		ID:          lead.ID,
		Name:        lead.Name,
		Role:        lead.Role,
		Company:     lead.Company,
		Industry:    lead.Industry,
		Location:    lead.Location,
		LinkedInBio: lead.LinkedInBio,
		Intent:      finalIntent,
		Score:       totalScore,
		Reasoning:   reasoning,
		Debug: &models.ScoreDebug{
			RuleScore:     ruleScore.Total,
			AIScore:       aiResult.Score,
			RuleBreakdown: ruleScore.Breakdown,
			RuleDetails:   ruleScore.Details,
			AIIntent:      aiResult.Intent,
			AIReasoning:   aiResult.Reasoning,
		},
	}, nil
}

// DetermineIntent maps a combined score to the final intent label.
func (s *scoringService) DetermineIntent(score int) models.Intent {
	switch {
	case score >= s.cfg.HighThreshold:
		return models.IntentHigh
	case score >= s.cfg.MediumThreshold:
		return models.IntentMedium
	default:
		return models.IntentLow
	}
}

// buildReasoning concatenates the rule-engine findings with the AI's own
// reasoning text, falling back to a standard sentence when nothing matched.
func buildReasoning(ruleScore *models.RuleScoreResult, aiResult *models.AIClassification, lead *models.Lead) string {
	var parts []string

	if ruleScore.Details.RoleMatch != models.RoleOther && ruleScore.Details.RoleMatch != models.RoleUnknown {
		parts = append(parts, fmt.Sprintf("%s role", ruleScore.Details.RoleMatch))
	}

	if ruleScore.Details.IndustryMatch != models.IndustryNoData {
		parts = append(parts, strings.ToLower(ruleScore.Details.IndustryMatch))
	}

	if ruleScore.Details.DataComplete {
		parts = append(parts, "complete profile")
	}

	if aiResult.Reasoning != "" {
		parts = append(parts, aiResult.Reasoning)
	}

	if len(parts) == 0 {
		return fmt.Sprintf("Standard fit assessment for %s at %s", lead.Role, lead.Company)
	}

	return strings.Join(parts, ", ")
}

func fallbackScoredLead(lead *models.Lead, err error) models.ScoredLead {
	return models.ScoredLead{
		ID:          lead.ID,
		Name:        lead.Name,
		Role:        lead.Role,
		Company:     lead.Company,
		Industry:    lead.Industry,
		Location:    lead.Location,
		LinkedInBio: lead.LinkedInBio,
		Intent:      models.IntentMedium,
		Score:       fallbackScore,
		Reasoning:   FallbackReasoning,
		Error:       err.Error(),
	}
}
