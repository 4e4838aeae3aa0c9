package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Patient is an immutable identity record referenced by cases and complaints.
type Patient struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	DateOfBirth time.Time `gorm:"not null" json:"date_of_birth"`
}

func (p *Patient) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
