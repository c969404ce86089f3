package models

import (
	"time"

	"budgetplanner/internal/uuid"

	"gorm.io/gorm"
)

// Base contains the common columns for append-only tables keyed by UUID.
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}
