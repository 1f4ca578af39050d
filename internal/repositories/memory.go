package repositories

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"lead-scoring-backend/internal/models"
)

type memoryOfferRepository struct {
	mu    sync.RWMutex
	offer *models.Offer
}

func NewMemoryOfferRepository() OfferRepository {
	return &memoryOfferRepository{}
}

// Set implements OfferRepository.
func (r *memoryOfferRepository) Set(offer *models.Offer) (*models.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *offer
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	stored.CreatedAt = time.Now()

	r.offer = &stored
	return &stored, nil
}

// Get implements OfferRepository.
func (r *memoryOfferRepository) Get() (*models.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.offer == nil {
		return nil, ErrNotFound
	}

	offer := *r.offer
	return &offer, nil
}

type memoryLeadRepository struct {
	mu    sync.RWMutex
	leads []models.Lead
}

func NewMemoryLeadRepository() LeadRepository {
	return &memoryLeadRepository{}
}

// Set implements LeadRepository. Leads get a synthetic sequential id and an
// upload timestamp; the previous batch is replaced entirely.
func (r *memoryLeadRepository) Set(leads []models.Lead) ([]models.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	stored := make([]models.Lead, len(leads))
	for i, lead := range leads {
		lead.ID = i + 1
		lead.UploadedAt = now
		stored[i] = lead
	}

	r.leads = stored
	return append([]models.Lead(nil), stored...), nil
}

// Get implements LeadRepository.
func (r *memoryLeadRepository) Get() ([]models.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.leads) == 0 {
		return nil, ErrNotFound
	}

	return append([]models.Lead(nil), r.leads...), nil
}

type memoryResultRepository struct {
	mu      sync.RWMutex
	results []models.ScoredLead
}

func NewMemoryResultRepository() ResultRepository {
	return &memoryResultRepository{}
}

// Set implements ResultRepository.
func (r *memoryResultRepository) Set(results []models.ScoredLead) ([]models.ScoredLead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.results = append([]models.ScoredLead(nil), results...)
	return append([]models.ScoredLead(nil), r.results...), nil
}

// Get implements ResultRepository.
func (r *memoryResultRepository) Get() ([]models.ScoredLead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.results) == 0 {
		return nil, ErrNotFound
	}

	return append([]models.ScoredLead(nil), r.results...), nil
}
