package services

import (
	"context"
	"regexp"
	"strings"

	"lead-scoring-backend/internal/config"
	"lead-scoring-backend/internal/models"
)

// intentPattern matches the first intent label anywhere in the raw response.
var intentPattern = regexp.MustCompile(`(?i)(high|medium|low)`)

// IntentClassifier asks the AI provider for a buying intent label and maps
// it to a fixed point value.
type IntentClassifier interface {
	ClassifyIntent(ctx context.Context, offer *models.Offer, lead *models.Lead) (*models.AIClassification, error)
}

type intentClassifier struct {
	client        AIClient
	promptBuilder *PromptBuilder
	cfg           config.ScoringConfig
}

func NewIntentClassifier(client AIClient, cfg config.ScoringConfig) IntentClassifier {
	return &intentClassifier{
		client:        client,
		promptBuilder: NewPromptBuilder(),
		cfg:           cfg,
	}
}

// ClassifyIntent implements IntentClassifier. The raw response only needs to
// mention High/Medium/Low somewhere; anything unparseable falls back to
// Medium. Provider failures are returned to the caller.
func (c *intentClassifier) ClassifyIntent(ctx context.Context, offer *models.Offer, lead *models.Lead) (*models.AIClassification, error) {
	prompt := c.promptBuilder.BuildIntentPrompt(offer, lead)

	raw, err := c.client.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	intent := parseIntent(raw)

	var score int
	switch intent {
	case models.IntentHigh:
		score = c.cfg.AIHigh
	case models.IntentLow:
		score = c.cfg.AILow
	default:
		score = c.cfg.AIMedium
	}

	return &models.AIClassification{
		Intent:    intent,
		Score:     score,
		Reasoning: strings.TrimSpace(raw),
	}, nil
}

// parseIntent extracts the first intent label from the raw response text,
// defaulting to Medium when none is found.
func parseIntent(raw string) models.Intent {
	match := intentPattern.FindString(raw)
	if match == "" {
		return models.IntentMedium
	}

	switch strings.ToLower(match) {
	case "high":
		return models.IntentHigh
	case "low":
		return models.IntentLow
	default:
		return models.IntentMedium
	}
}
