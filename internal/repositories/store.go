package repositories

import (
	"errors"

	"lead-scoring-backend/internal/models"
)

// ErrNotFound is returned when a repository holds no current value.
var ErrNotFound = errors.New("not found")

// Each repository keeps a single current value with last-write-wins
// semantics: Set replaces the whole batch, Get returns the last batch
// written or ErrNotFound.

type OfferRepository interface {
	Set(offer *models.Offer) (*models.Offer, error)
	Get() (*models.Offer, error)
}

type LeadRepository interface {
	Set(leads []models.Lead) ([]models.Lead, error)
	Get() ([]models.Lead, error)
}

type ResultRepository interface {
	Set(results []models.ScoredLead) ([]models.ScoredLead, error)
	Get() ([]models.ScoredLead, error)
}
