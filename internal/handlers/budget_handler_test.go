package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "budgetplanner/internal/errors"
	"budgetplanner/internal/models"
	"budgetplanner/internal/month"
	"budgetplanner/internal/services"
)

func setupBudgetRouter(handler *BudgetHandler) *gin.Engine {
	r := gin.New()
	r.GET("/budgets/:month", handler.GetBudget)
	r.PUT("/budgets/:month", handler.SetBudget)
	r.GET("/status/:month", handler.GetStatus)
	r.GET("/dashboard/:month", handler.GetDashboard)
	return r
}

func TestBudgetHandler_GetBudget(t *testing.T) {
	t.Run("returns 200 with the budget", func(t *testing.T) {
		svc := &mockBudgetService{
			getBudgetFn: func(m month.Month) (*models.Budget, error) {
				return &models.Budget{Month: m.String(), Amount: decimal.RequireFromString("1500")}, nil
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc, &mockStatusService{}, &mockAuditService{}, 10))

		rec := doRequest(r, "GET", "/budgets/2025-03", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["month"] != "2025-03" {
			t.Errorf("expected month 2025-03, got %v", result["month"])
		}
		budget := result["budget"].(map[string]interface{})
		assertJSONDecimal(t, "amount", budget["amount"], "1500")
	})

	t.Run("returns null budget when none is set", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}, &mockStatusService{}, &mockAuditService{}, 10))

		rec := doRequest(r, "GET", "/budgets/2025-03", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if v, ok := result["budget"]; !ok || v != nil {
			t.Errorf("expected budget null, got %v", v)
		}
	})

	t.Run("returns 400 on invalid month", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}, &mockStatusService{}, &mockAuditService{}, 10))

		rec := doRequest(r, "GET", "/budgets/March", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_MONTH")
	})

	t.Run("returns 503 when storage is unavailable", func(t *testing.T) {
		svc := &mockBudgetService{
			getBudgetFn: func(month.Month) (*models.Budget, error) { return nil, errDatabaseDown },
		}
		r := setupBudgetRouter(NewBudgetHandler(svc, &mockStatusService{}, &mockAuditService{}, 10))

		rec := doRequest(r, "GET", "/budgets/2025-03", "")

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "STORAGE_UNAVAILABLE")
	})
}

func TestBudgetHandler_SetBudget(t *testing.T) {
	t.Run("accepts numeric and string amounts", func(t *testing.T) {
		for _, body := range []string{`{"amount":500.25}`, `{"amount":"500.25"}`} {
			var gotMonth month.Month
			var gotAmount decimal.Decimal
			svc := &mockBudgetService{
				setBudgetFn: func(m month.Month, amount decimal.Decimal) (*models.Budget, error) {
					gotMonth, gotAmount = m, amount
					return &models.Budget{Month: m.String(), Amount: amount}, nil
				},
			}
			audit := &mockAuditService{}
			r := setupBudgetRouter(NewBudgetHandler(svc, &mockStatusService{}, audit, 10))

			rec := doRequest(r, "PUT", "/budgets/2025-03", body)

			if rec.Code != http.StatusOK {
				t.Fatalf("%s: expected 200, got %d: %s", body, rec.Code, rec.Body.String())
			}
			if gotMonth != (month.Month{Year: 2025, Month: time.March}) {
				t.Errorf("%s: expected month 2025-03, got %s", body, gotMonth)
			}
			if !gotAmount.Equal(decimal.RequireFromString("500.25")) {
				t.Errorf("%s: expected amount 500.25, got %s", body, gotAmount)
			}
			if len(audit.calls) != 1 || audit.calls[0].action != services.AuditActionSetBudget || audit.calls[0].resourceID != "2025-03" {
				t.Errorf("%s: unexpected audit calls %+v", body, audit.calls)
			}
		}
	})

	t.Run("returns 400 on missing amount", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}, &mockStatusService{}, &mockAuditService{}, 10))

		rec := doRequest(r, "PUT", "/budgets/2025-03", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on non-numeric amount", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}, &mockStatusService{}, &mockAuditService{}, 10))

		rec := doRequest(r, "PUT", "/budgets/2025-03", `{"amount":"lots"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 when the service rejects a negative amount", func(t *testing.T) {
		svc := &mockBudgetService{
			setBudgetFn: func(month.Month, decimal.Decimal) (*models.Budget, error) {
				return nil, apperrors.ErrInvalidAmount
			},
		}
		audit := &mockAuditService{}
		r := setupBudgetRouter(NewBudgetHandler(svc, &mockStatusService{}, audit, 10))

		rec := doRequest(r, "PUT", "/budgets/2025-03", `{"amount":-5}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_AMOUNT")
		if len(audit.calls) != 0 {
			t.Errorf("expected no audit entry on failure, got %+v", audit.calls)
		}
	})

	t.Run("returns 400 on invalid month", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}, &mockStatusService{}, &mockAuditService{}, 10))

		rec := doRequest(r, "PUT", "/budgets/2025-00", `{"amount":100}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_MONTH")
	})
}

func TestBudgetHandler_GetStatus(t *testing.T) {
	t.Run("returns 200 with the status", func(t *testing.T) {
		svc := &mockStatusService{
			getStatusFn: func(month.Month) (*services.BudgetStatus, error) {
				status := services.CalculateStatus(
					&models.Budget{Amount: decimal.RequireFromString("500")},
					decimal.RequireFromString("450"),
				)
				return &status, nil
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}, svc, &mockAuditService{}, 10))

		rec := doRequest(r, "GET", "/status/2025-03", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		status := parseJSON(t, rec)["status"].(map[string]interface{})
		assertJSONDecimal(t, "remaining", status["remaining"], "50")
		if status["percentage_used"].(float64) != 90 {
			t.Errorf("expected 90%%, got %v", status["percentage_used"])
		}
		if status["warning_level"] != "caution" {
			t.Errorf("expected caution, got %v", status["warning_level"])
		}
	})

	t.Run("returns 503 when storage is unavailable", func(t *testing.T) {
		svc := &mockStatusService{
			getStatusFn: func(month.Month) (*services.BudgetStatus, error) { return nil, errDatabaseDown },
		}
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}, svc, &mockAuditService{}, 10))

		rec := doRequest(r, "GET", "/status/2025-03", "")

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", rec.Code)
		}
	})
}

func TestBudgetHandler_GetDashboard(t *testing.T) {
	t.Run("uses the default recent limit", func(t *testing.T) {
		var gotLimit int
		svc := &mockStatusService{
			getDashboardFn: func(m month.Month, limit int) (*services.Dashboard, error) {
				gotLimit = limit
				return &services.Dashboard{Month: m.String(), RecentExpenses: []models.Expense{}}, nil
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}, svc, &mockAuditService{}, 7))

		rec := doRequest(r, "GET", "/dashboard/2025-03", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotLimit != 7 {
			t.Errorf("expected limit 7, got %d", gotLimit)
		}
		if parseJSON(t, rec)["month"] != "2025-03" {
			t.Error("expected month in dashboard")
		}
	})

	t.Run("honors the limit query", func(t *testing.T) {
		var gotLimit int
		svc := &mockStatusService{
			getDashboardFn: func(m month.Month, limit int) (*services.Dashboard, error) {
				gotLimit = limit
				return &services.Dashboard{Month: m.String()}, nil
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}, svc, &mockAuditService{}, 10))

		rec := doRequest(r, "GET", "/dashboard/2025-03?limit=3", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotLimit != 3 {
			t.Errorf("expected limit 3, got %d", gotLimit)
		}
	})

	t.Run("returns 400 on out of range limit", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}, &mockStatusService{}, &mockAuditService{}, 10))

		for _, q := range []string{"0", "101", "ten"} {
			rec := doRequest(r, "GET", "/dashboard/2025-03?limit="+q, "")
			if rec.Code != http.StatusBadRequest {
				t.Errorf("limit=%s: expected 400, got %d", q, rec.Code)
			}
		}
	})
}
