package models

import (
	"time"

	"github.com/google/uuid"
)

type Offer struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name          string    `gorm:"type:text;not null" json:"name"`
	ValueProps    []string  `gorm:"serializer:json;type:text" json:"value_props"`
	IdealUseCases []string  `gorm:"serializer:json;type:text" json:"ideal_use_cases"`
	CreatedAt     time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (o *Offer) TableName() string {
	return "offers"
}
