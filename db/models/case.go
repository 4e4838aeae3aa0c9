package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Case is a patient-scoped record complaints are filed against. Every case
// belongs to exactly one patient; the human-readable reference is unique.
type Case struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CaseReference string    `gorm:"not null;uniqueIndex" json:"case_reference"`
	PatientID     uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`

	Patient Patient `gorm:"foreignKey:PatientID" json:"-"`
}

func (c *Case) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
