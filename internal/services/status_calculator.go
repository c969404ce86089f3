package services

import (
	"github.com/shopspring/decimal"

	"budgetplanner/internal/models"
)

// WarningLevel tells how close spending is to the month's budget.
type WarningLevel string

const (
	WarningNone    WarningLevel = "none"
	WarningCaution WarningLevel = "caution"
	WarningDanger  WarningLevel = "danger"
)

var (
	hundred          = decimal.NewFromInt(100)
	cautionThreshold = decimal.NewFromInt(80)
)

// BudgetStatus is the derived view of a month's budget against its spending.
type BudgetStatus struct {
	BudgetAmount   decimal.Decimal `json:"budget_amount" swaggertype:"string"`
	TotalSpent     decimal.Decimal `json:"total_spent" swaggertype:"string"`
	Remaining      decimal.Decimal `json:"remaining" swaggertype:"string"`
	OverBudget     decimal.Decimal `json:"over_budget" swaggertype:"string"`
	PercentageUsed float64         `json:"percentage_used"`
	WarningLevel   WarningLevel    `json:"warning_level"`
}

// CalculateStatus derives the budget status from the month's budget (nil when
// none is set) and the total spent. It never fails.
func CalculateStatus(budget *models.Budget, totalSpent decimal.Decimal) BudgetStatus {
	budgetAmount := decimal.Zero
	if budget != nil {
		budgetAmount = budget.Amount
	}

	remaining := budgetAmount.Sub(totalSpent)

	percentage := decimal.Zero
	if !budgetAmount.IsZero() {
		percentage = totalSpent.Div(budgetAmount).Mul(hundred)
	}

	level := WarningNone
	switch {
	case percentage.GreaterThanOrEqual(hundred):
		level = WarningDanger
	case percentage.GreaterThanOrEqual(cautionThreshold):
		level = WarningCaution
	}

	overBudget := decimal.Zero
	if remaining.IsNegative() {
		overBudget = remaining.Neg()
	}

	return BudgetStatus{
		BudgetAmount:   budgetAmount,
		TotalSpent:     totalSpent,
		Remaining:      remaining,
		OverBudget:     overBudget,
		PercentageUsed: percentage.Round(2).InexactFloat64(),
		WarningLevel:   level,
	}
}
