package services

import (
	"budgetplanner/internal/month"
)

// statusService builds month overviews from the budget and expense stores.
type statusService struct {
	budgetService  BudgetServicer
	expenseService ExpenseServicer
}

// NewStatusService creates a new StatusServicer.
func NewStatusService(budgetService BudgetServicer, expenseService ExpenseServicer) StatusServicer {
	return &statusService{budgetService: budgetService, expenseService: expenseService}
}

// GetStatus computes the budget status for the month.
func (s *statusService) GetStatus(m month.Month) (*BudgetStatus, error) {
	budget, err := s.budgetService.GetBudget(m)
	if err != nil {
		return nil, err
	}

	spent, err := s.expenseService.SumExpenses(m)
	if err != nil {
		return nil, err
	}

	status := CalculateStatus(budget, spent)
	return &status, nil
}

// GetDashboard returns the month's budget, its status and the most recent expenses.
func (s *statusService) GetDashboard(m month.Month, recentLimit int) (*Dashboard, error) {
	budget, err := s.budgetService.GetBudget(m)
	if err != nil {
		return nil, err
	}

	spent, err := s.expenseService.SumExpenses(m)
	if err != nil {
		return nil, err
	}

	recent, err := s.expenseService.ListRecent(m, recentLimit)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Month:          m.String(),
		Budget:         budget,
		Status:         CalculateStatus(budget, spent),
		RecentExpenses: recent,
	}, nil
}
