package models

import "time"

type Lead struct {
	ID          int       `gorm:"primary_key" json:"id"`
	Name        string    `gorm:"type:text" json:"name"`
	Role        string    `gorm:"type:text" json:"role"`
	Company     string    `gorm:"type:text" json:"company"`
	Industry    string    `gorm:"type:text" json:"industry"`
	Location    string    `gorm:"type:text" json:"location"`
	LinkedInBio string    `gorm:"type:text" json:"linkedin_bio"`
	UploadedAt  time.Time `gorm:"type:timestamp;default:now()" json:"uploaded_at"`
}

func (l *Lead) TableName() string {
	return "leads"
}
