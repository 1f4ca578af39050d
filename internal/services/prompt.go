package services

import (
	"fmt"
	"strings"

	"lead-scoring-backend/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildIntentPrompt creates the intent classification prompt from the offer
// and the prospect being evaluated.
func (pb *PromptBuilder) BuildIntentPrompt(offer *models.Offer, lead *models.Lead) string {
	valueProps := strings.Join(offer.ValueProps, ", ")
	useCases := strings.Join(offer.IdealUseCases, ", ")

	return fmt.Sprintf(`Analyze this B2B prospect's buying intent for our product.

PRODUCT/OFFER: %s | Value props: %s | Ideal use cases: %s
PROSPECT: %s, role: %s, company: %s, industry: %s, location: %s
BIO: %s

Classify intent (High/Medium/Low) with a short reasoning.`,
		offer.Name, valueProps, useCases,
		lead.Name, lead.Role, lead.Company, lead.Industry, lead.Location,
		lead.LinkedInBio)
}
