package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ComplaintCategory is reference data: a two-level taxonomy applied to complaints.
// The (main_category, sub_category) pair is unique.
type ComplaintCategory struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	MainCategory string    `gorm:"not null;uniqueIndex:uq_main_sub_category" json:"main_category"`
	SubCategory  string    `gorm:"not null;uniqueIndex:uq_main_sub_category" json:"sub_category"`
}

func (ComplaintCategory) TableName() string {
	return "complaint_categories"
}

func (cc *ComplaintCategory) BeforeCreate(tx *gorm.DB) error {
	if cc.ID == uuid.Nil {
		cc.ID = uuid.New()
	}
	return nil
}
