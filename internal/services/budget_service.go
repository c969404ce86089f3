package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "budgetplanner/internal/errors"
	"budgetplanner/internal/models"
	"budgetplanner/internal/month"
)

// maxAmount is the first value that no longer fits a NUMERIC(12,2) column.
var maxAmount = decimal.New(1, 10)

// budgetService handles the per-month budget rows.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// GetBudget returns the budget for the month, or nil if none has been set.
func (s *budgetService) GetBudget(m month.Month) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.Where("month = ?", m.String()).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return &budget, nil
}

// SetBudget inserts the month's budget or overwrites the existing amount.
func (s *budgetService) SetBudget(m month.Month, amount decimal.Decimal) (*models.Budget, error) {
	if m.IsZero() {
		return nil, apperrors.ErrInvalidMonth
	}
	if amount.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidAmount, "Budget amount cannot be negative")
	}
	amount = amount.Round(2)
	if amount.GreaterThanOrEqual(maxAmount) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidAmount, "Budget amount is too large")
	}

	budget := &models.Budget{Month: m.String(), Amount: amount}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(budget).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}

	stored, err := s.GetBudget(m)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return budget, nil
	}
	return stored, nil
}
