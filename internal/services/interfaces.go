package services

import (
	"time"

	"github.com/shopspring/decimal"

	"budgetplanner/internal/models"
	"budgetplanner/internal/month"
	"budgetplanner/internal/pagination"
)

// BudgetServicer defines the contract for the monthly budget store.
type BudgetServicer interface {
	// GetBudget returns the budget for m, or nil with a nil error when none is set.
	GetBudget(m month.Month) (*models.Budget, error)
	SetBudget(m month.Month, amount decimal.Decimal) (*models.Budget, error)
}

// ExpenseServicer defines the contract for the expense store.
type ExpenseServicer interface {
	SumExpenses(m month.Month) (decimal.Decimal, error)
	ListRecent(m month.Month, limit int) ([]models.Expense, error)
	ListExpenses(m month.Month, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	AddExpense(description string, amount decimal.Decimal, category models.ExpenseCategory, expenseDate time.Time) (*models.Expense, error)
	DeleteExpense(id uint) error
}

// Dashboard is everything the overview page shows for one month.
type Dashboard struct {
	Month          string           `json:"month"`
	Budget         *models.Budget   `json:"budget"`
	Status         BudgetStatus     `json:"status"`
	RecentExpenses []models.Expense `json:"recent_expenses"`
}

// StatusServicer composes the budget and expense stores into a month overview.
type StatusServicer interface {
	GetStatus(m month.Month) (*BudgetStatus, error)
	GetDashboard(m month.Month, recentLimit int) (*Dashboard, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
