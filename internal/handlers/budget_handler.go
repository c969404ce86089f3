package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "budgetplanner/internal/errors"
	"budgetplanner/internal/services"
)

// BudgetHandler handles budget and budget-status requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
	statusService services.StatusServicer
	auditService  services.AuditServicer
	recentLimit   int
}

// NewBudgetHandler creates a new BudgetHandler. recentLimit is the default
// number of expenses returned with a dashboard.
func NewBudgetHandler(
	budgetService services.BudgetServicer,
	statusService services.StatusServicer,
	auditService services.AuditServicer,
	recentLimit int,
) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
		statusService: statusService,
		auditService:  auditService,
		recentLimit:   recentLimit,
	}
}

// SetBudgetRequest represents the request payload for setting a month's budget.
type SetBudgetRequest struct {
	Amount json.Number `json:"amount" binding:"required" swaggertype:"string" example:"500.00"`
}

// GetBudget handles retrieving the budget of a month.
// @Summary     Get budget
// @Description Get the budget set for a month; budget is null when none is set
// @Tags        budgets
// @Produce     json
// @Param       month path string true "Month (YYYY-MM)"
// @Success     200 {object} models.Budget "Budget details"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     503 {object} ErrorResponse "Storage unavailable"
// @Router      /budgets/{month} [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	m, err := parseMonthParam(c, "month")
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.GetBudget(m)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"month": m.String(), "budget": budget})
}

// SetBudget handles creating or replacing the budget of a month.
// @Summary     Set budget
// @Description Create the month's budget or overwrite its amount
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       month   path string           true "Month (YYYY-MM)"
// @Param       request body SetBudgetRequest true "Budget amount"
// @Success     200 {object} models.Budget "Stored budget"
// @Failure     400 {object} ErrorResponse "Invalid month or amount"
// @Failure     503 {object} ErrorResponse "Storage unavailable"
// @Router      /budgets/{month} [put]
func (h *BudgetHandler) SetBudget(c *gin.Context) {
	m, err := parseMonthParam(c, "month")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	amount, err := parseAmount(req.Amount.String())
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.SetBudget(m, amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(services.AuditActionSetBudget, "budget", budget.Month, c.ClientIP(),
		map[string]interface{}{"amount": budget.Amount.String()})

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// GetStatus handles computing the budget status of a month.
// @Summary     Get budget status
// @Description Spent, remaining, percentage used and warning level for a month
// @Tags        budgets
// @Produce     json
// @Param       month path string true "Month (YYYY-MM)"
// @Success     200 {object} services.BudgetStatus "Budget status"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     503 {object} ErrorResponse "Storage unavailable"
// @Router      /status/{month} [get]
func (h *BudgetHandler) GetStatus(c *gin.Context) {
	m, err := parseMonthParam(c, "month")
	if err != nil {
		respondWithError(c, err)
		return
	}

	status, err := h.statusService.GetStatus(m)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"month": m.String(), "status": status})
}

// GetDashboard handles the combined month overview.
// @Summary     Get dashboard
// @Description Budget, status and most recent expenses of a month
// @Tags        budgets
// @Produce     json
// @Param       month path  string true  "Month (YYYY-MM)"
// @Param       limit query int    false "Number of recent expenses (default 10, max 100)"
// @Success     200 {object} services.Dashboard "Dashboard"
// @Failure     400 {object} ErrorResponse "Invalid month or limit"
// @Failure     503 {object} ErrorResponse "Storage unavailable"
// @Router      /dashboard/{month} [get]
func (h *BudgetHandler) GetDashboard(c *gin.Context) {
	m, err := parseMonthParam(c, "month")
	if err != nil {
		respondWithError(c, err)
		return
	}

	limit := h.recentLimit
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit must be between 1 and 100"))
			return
		}
		limit = n
	}

	dashboard, err := h.statusService.GetDashboard(m, limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
