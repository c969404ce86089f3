package services

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "budgetplanner/internal/errors"
	"budgetplanner/internal/models"
	"budgetplanner/internal/month"
	"budgetplanner/internal/pagination"
)

// recentOrder sorts newest expense date first, then newest entry. The id
// tie-break keeps rows created within the same clock tick stable.
const recentOrder = "expense_date DESC, created_at DESC, id DESC"

// expenseService handles expense records.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// inMonth scopes a query to expenses dated within m.
func inMonth(m month.Month) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("expense_date >= ? AND expense_date < ?", m.Start(), m.End())
	}
}

// SumExpenses returns the total amount spent in the month, zero if nothing was recorded.
func (s *expenseService) SumExpenses(m month.Month) (decimal.Decimal, error) {
	var total decimal.Decimal
	row := s.db.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Scopes(inMonth(m)).
		Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return total.Round(2), nil
}

// ListRecent returns at most limit expenses of the month, newest first.
func (s *expenseService) ListRecent(m month.Month, limit int) ([]models.Expense, error) {
	if limit < 1 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit must be at least 1")
	}

	expenses := []models.Expense{}
	if err := s.db.Scopes(inMonth(m)).Order(recentOrder).Limit(limit).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return expenses, nil
}

// ListExpenses returns a page of the month's expenses in the same order as ListRecent.
func (s *expenseService) ListExpenses(m month.Month, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	base := func() *gorm.DB {
		return s.db.Model(&models.Expense{}).Scopes(inMonth(m))
	}

	var totalItems int64
	if err := base().Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}

	var expenses []models.Expense
	if err := base().Order(recentOrder).Scopes(pagination.Paginate(page)).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// AddExpense validates and stores a new expense.
func (s *expenseService) AddExpense(
	description string,
	amount decimal.Decimal,
	category models.ExpenseCategory,
	expenseDate time.Time,
) (*models.Expense, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Description is required")
	}
	if !amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidAmount, "Expense amount must be greater than zero")
	}
	amount = amount.Round(2)
	if !amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidAmount, "Expense amount must be at least 0.01")
	}
	if amount.GreaterThanOrEqual(maxAmount) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidAmount, "Expense amount is too large")
	}
	if !category.IsValid() {
		return nil, apperrors.ErrInvalidCategory
	}
	if expenseDate.IsZero() {
		return nil, apperrors.ErrInvalidDate
	}

	expense := &models.Expense{
		Description: description,
		Amount:      amount,
		Category:    category,
		ExpenseDate: calendarDate(expenseDate),
	}
	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return expense, nil
}

// DeleteExpense removes the expense with the given id. Deleting an id that
// does not exist is not an error.
func (s *expenseService) DeleteExpense(id uint) error {
	if id == 0 {
		return nil
	}
	if err := s.db.Delete(&models.Expense{}, id).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return nil
}

// calendarDate keeps the year, month and day of t as written and pins it to midnight UTC.
func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
