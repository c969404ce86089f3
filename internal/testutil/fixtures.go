package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"budgetplanner/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Date returns midnight UTC of the given calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Decimal parses s and fails the test if it is not a valid decimal.
func Decimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("invalid decimal %q: %v", s, err)
	}
	return d
}

// CreateTestBudget stores a budget row for the YYYY-MM month.
func CreateTestBudget(t *testing.T, db *gorm.DB, month, amount string) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		Month:  month,
		Amount: Decimal(t, amount),
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestExpense stores an expense in the Other category on the given date.
func CreateTestExpense(t *testing.T, db *gorm.DB, amount string, date time.Time) *models.Expense {
	t.Helper()
	return CreateTestExpenseWithCategory(t, db, amount, models.ExpenseCategoryOther, date)
}

// CreateTestExpenseWithCategory stores an expense with the given category.
func CreateTestExpenseWithCategory(t *testing.T, db *gorm.DB, amount string, category models.ExpenseCategory, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		Description: fmt.Sprintf("Test Expense %d", nextID()),
		Amount:      Decimal(t, amount),
		Category:    category,
		ExpenseDate: date,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CountExpenses returns the number of rows in the expenses table.
func CountExpenses(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	if err := db.Model(&models.Expense{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count expenses: %v", err)
	}
	return count
}
