package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory is the fixed set of categories an expense can be filed under.
type ExpenseCategory string

const (
	ExpenseCategoryFood           ExpenseCategory = "Food"
	ExpenseCategoryTransportation ExpenseCategory = "Transportation"
	ExpenseCategoryEntertainment  ExpenseCategory = "Entertainment"
	ExpenseCategoryBills          ExpenseCategory = "Bills"
	ExpenseCategoryShopping       ExpenseCategory = "Shopping"
	ExpenseCategoryOther          ExpenseCategory = "Other"
)

// ExpenseCategories lists every category in display order.
var ExpenseCategories = []ExpenseCategory{
	ExpenseCategoryFood,
	ExpenseCategoryTransportation,
	ExpenseCategoryEntertainment,
	ExpenseCategoryBills,
	ExpenseCategoryShopping,
	ExpenseCategoryOther,
}

// IsValid reports whether c is one of the known categories.
func (c ExpenseCategory) IsValid() bool {
	for _, known := range ExpenseCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Expense is a single dated, categorized spending record.
// Expenses are never updated, only created and deleted.
type Expense struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount" swaggertype:"string" example:"42.50"`
	Category    ExpenseCategory `gorm:"size:32;not null" json:"category"`
	ExpenseDate time.Time       `gorm:"type:date;not null;index" json:"expense_date"`
	CreatedAt   time.Time       `json:"created_at"`
}
