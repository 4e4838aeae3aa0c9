package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Complaint references a category, a complainant, a patient and a case. The
// case must belong to the same patient as the complaint; that invariant is
// not expressible as a foreign key and is enforced at write time by the
// intake validation.
type Complaint struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Description string    `gorm:"type:text;not null" json:"description"`

	CategoryID    uuid.UUID `gorm:"type:uuid;not null;index" json:"category_id"`
	ComplainantID uuid.UUID `gorm:"type:uuid;not null;index" json:"complainant_id"`
	PatientID     uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	CaseID        uuid.UUID `gorm:"type:uuid;not null;index" json:"case_id"`

	Category    ComplaintCategory `gorm:"foreignKey:CategoryID" json:"-"`
	Complainant Complainant       `gorm:"foreignKey:ComplainantID" json:"-"`
	Patient     Patient           `gorm:"foreignKey:PatientID" json:"-"`
	Case        Case              `gorm:"foreignKey:CaseID" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (c *Complaint) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
