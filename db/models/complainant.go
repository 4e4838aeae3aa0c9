package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Complainant is the person filing a complaint, distinct from the patient
// the complaint concerns.
type Complainant struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name  string    `gorm:"size:255;not null" json:"name"`
	Email string    `gorm:"size:255;not null;index:idx_complainant_email" json:"email"`
	Phone *string   `gorm:"size:50" json:"phone"`

	AddressLine1 string  `gorm:"size:255;not null" json:"address_line1"`
	AddressLine2 *string `gorm:"size:255" json:"address_line2"`
	City         string  `gorm:"size:100;not null;index:idx_complainant_city" json:"city"`
	Postcode     string  `gorm:"size:20;not null;index:idx_complainant_postcode" json:"postcode"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (c *Complainant) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
