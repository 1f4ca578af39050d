package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lead-scoring-backend/internal/models"
)

// The postgres repositories keep the same last-write-wins contract as the
// memory ones: every Set replaces the entire stored batch in one
// transaction.

type postgresOfferRepository struct {
	db *gorm.DB
}

func NewPostgresOfferRepository(db *gorm.DB) OfferRepository {
	return &postgresOfferRepository{db: db}
}

// Set implements OfferRepository.
func (r *postgresOfferRepository) Set(offer *models.Offer) (*models.Offer, error) {
	stored := *offer
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	stored.CreatedAt = time.Now()

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&models.Offer{}).Error; err != nil {
			return err
		}
		return tx.Create(&stored).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store offer: %w", err)
	}

	return &stored, nil
}

// Get implements OfferRepository.
func (r *postgresOfferRepository) Get() (*models.Offer, error) {
	var offer models.Offer
	if err := r.db.Order("created_at DESC").First(&offer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find offer: %w", err)
	}

	return &offer, nil
}

type postgresLeadRepository struct {
	db *gorm.DB
}

func NewPostgresLeadRepository(db *gorm.DB) LeadRepository {
	return &postgresLeadRepository{db: db}
}

// Set implements LeadRepository.
func (r *postgresLeadRepository) Set(leads []models.Lead) ([]models.Lead, error) {
	now := time.Now()
	stored := make([]models.Lead, len(leads))
	for i, lead := range leads {
		lead.ID = i + 1
		lead.UploadedAt = now
		stored[i] = lead
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&models.Lead{}).Error; err != nil {
			return err
		}
		if len(stored) == 0 {
			return nil
		}
		return tx.Create(&stored).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store leads: %w", err)
	}

	return stored, nil
}

// Get implements LeadRepository.
func (r *postgresLeadRepository) Get() ([]models.Lead, error) {
	var leads []models.Lead
	if err := r.db.Order("id ASC").Find(&leads).Error; err != nil {
		return nil, fmt.Errorf("failed to find leads: %w", err)
	}

	if len(leads) == 0 {
		return nil, ErrNotFound
	}

	return leads, nil
}

type postgresResultRepository struct {
	db *gorm.DB
}

func NewPostgresResultRepository(db *gorm.DB) ResultRepository {
	return &postgresResultRepository{db: db}
}

// Set implements ResultRepository.
func (r *postgresResultRepository) Set(results []models.ScoredLead) ([]models.ScoredLead, error) {
	stored := append([]models.ScoredLead(nil), results...)

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&models.ScoredLead{}).Error; err != nil {
			return err
		}
		if len(stored) == 0 {
			return nil
		}
		return tx.Create(&stored).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store results: %w", err)
	}

	return stored, nil
}

// Get implements ResultRepository.
func (r *postgresResultRepository) Get() ([]models.ScoredLead, error) {
	var results []models.ScoredLead
	if err := r.db.Order("id ASC").Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to find results: %w", err)
	}

	if len(results) == 0 {
		return nil, ErrNotFound
	}

	return results, nil
}
