package services

import (
	"testing"
	"time"

	"budgetplanner/internal/models"
	"budgetplanner/internal/month"
	"budgetplanner/internal/testutil"
)

var march2025 = month.Month{Year: 2025, Month: time.March}

func TestGetBudget(t *testing.T) {
	t.Run("absent_when_not_set", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		budget, err := svc.GetBudget(march2025)
		testutil.AssertNoError(t, err)
		if budget != nil {
			t.Fatalf("expected no budget, got %+v", budget)
		}

		status := CalculateStatus(budget, testutil.Decimal(t, "0"))
		if status.PercentageUsed != 0 {
			t.Errorf("expected 0%% used, got %v", status.PercentageUsed)
		}
		if status.WarningLevel != WarningNone {
			t.Errorf("expected warning none, got %s", status.WarningLevel)
		}
	})

	t.Run("returns_month_budget_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		testutil.CreateTestBudget(t, db, "2025-02", "400.00")
		testutil.CreateTestBudget(t, db, "2025-03", "750.25")

		budget, err := svc.GetBudget(march2025)
		testutil.AssertNoError(t, err)
		if budget == nil {
			t.Fatal("expected a budget")
		}
		if budget.Month != "2025-03" {
			t.Errorf("expected month 2025-03, got %s", budget.Month)
		}
		testutil.AssertDecimal(t, "amount", budget.Amount, "750.25")
	})

	t.Run("storage_unavailable", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewBudgetService(db)
		testutil.CloseDB(t, db)

		_, err := svc.GetBudget(march2025)
		testutil.AssertAppError(t, err, "STORAGE_UNAVAILABLE")
	})
}

func TestSetBudget(t *testing.T) {
	t.Run("creates", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		budget, err := svc.SetBudget(march2025, testutil.Decimal(t, "500"))
		testutil.AssertNoError(t, err)
		if budget.Month != "2025-03" {
			t.Errorf("expected month 2025-03, got %s", budget.Month)
		}
		testutil.AssertDecimal(t, "amount", budget.Amount, "500")
	})

	t.Run("upsert_keeps_one_row", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		_, err := svc.SetBudget(march2025, testutil.Decimal(t, "500"))
		testutil.AssertNoError(t, err)
		_, err = svc.SetBudget(march2025, testutil.Decimal(t, "300"))
		testutil.AssertNoError(t, err)

		var rows []models.Budget
		if err := db.Where("month = ?", "2025-03").Find(&rows).Error; err != nil {
			t.Fatalf("failed to read budgets: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("expected exactly 1 budget row, got %d", len(rows))
		}
		testutil.AssertDecimal(t, "amount", rows[0].Amount, "300")
	})

	t.Run("zero_is_allowed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		budget, err := svc.SetBudget(march2025, testutil.Decimal(t, "0"))
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, "amount", budget.Amount, "0")
	})

	t.Run("does_not_touch_other_months", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		testutil.CreateTestBudget(t, db, "2025-04", "900.00")

		_, err := svc.SetBudget(march2025, testutil.Decimal(t, "100"))
		testutil.AssertNoError(t, err)

		april, err := svc.GetBudget(march2025.Next())
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, "april amount", april.Amount, "900")
	})

	t.Run("negative_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		_, err := svc.SetBudget(march2025, testutil.Decimal(t, "-0.01"))
		testutil.AssertAppError(t, err, "INVALID_AMOUNT")

		budget, err := svc.GetBudget(march2025)
		testutil.AssertNoError(t, err)
		if budget != nil {
			t.Error("expected no budget to be stored")
		}
	})

	t.Run("too_large", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		_, err := svc.SetBudget(march2025, testutil.Decimal(t, "10000000000"))
		testutil.AssertAppError(t, err, "INVALID_AMOUNT")
	})

	t.Run("zero_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		_, err := svc.SetBudget(month.Month{}, testutil.Decimal(t, "10"))
		testutil.AssertAppError(t, err, "INVALID_MONTH")
	})

	t.Run("storage_unavailable", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewBudgetService(db)
		testutil.CloseDB(t, db)

		_, err := svc.SetBudget(march2025, testutil.Decimal(t, "10"))
		testutil.AssertAppError(t, err, "STORAGE_UNAVAILABLE")
	})
}
