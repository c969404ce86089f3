package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is the spending limit set for one calendar month.
// Month is the YYYY-MM key and there is at most one row per month.
type Budget struct {
	Month     string          `gorm:"primaryKey;size:7" json:"month"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount" swaggertype:"string" example:"42.50"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TableName keeps the singular table name used by the schema migrations.
func (Budget) TableName() string {
	return "budget"
}
