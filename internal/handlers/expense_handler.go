package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"budgetplanner/internal/models"
	"budgetplanner/internal/pagination"
	"budgetplanner/internal/services"
)

// ExpenseHandler handles expense-related requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
	auditService   services.AuditServicer
	location       *time.Location
	recentLimit    int
}

// NewExpenseHandler creates a new ExpenseHandler. loc decides which month is
// "current" when a request does not name one.
func NewExpenseHandler(
	expenseService services.ExpenseServicer,
	auditService services.AuditServicer,
	loc *time.Location,
	recentLimit int,
) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		auditService:   auditService,
		location:       loc,
		recentLimit:    recentLimit,
	}
}

// CreateExpenseRequest represents the request payload for recording an expense.
type CreateExpenseRequest struct {
	Description string                 `json:"description" binding:"required,max=255"`
	Amount      json.Number            `json:"amount" binding:"required" swaggertype:"string" example:"12.50"`
	Category    models.ExpenseCategory `json:"category" example:"Food"`
	ExpenseDate string                 `json:"expense_date" binding:"required,iso_date" example:"2025-03-14"`
}

// monthQuery is the optional month filter shared by the list endpoints.
type monthQuery struct {
	Month string `form:"month" binding:"omitempty,month_key"`
}

// CreateExpense handles recording a new expense.
// @Summary     Add an expense
// @Description Record a new expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       request body CreateExpenseRequest true "Expense details"
// @Success     201 {object} models.Expense "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid amount, category or date"
// @Failure     503 {object} ErrorResponse "Storage unavailable"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	amount, err := parseAmount(req.Amount.String())
	if err != nil {
		respondWithError(c, err)
		return
	}

	date, err := parseDate(req.ExpenseDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.AddExpense(req.Description, amount, req.Category, date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(services.AuditActionAddExpense, "expense", strconv.FormatUint(uint64(expense.ID), 10), c.ClientIP(),
		map[string]interface{}{"amount": expense.Amount.String(), "category": expense.Category})

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// ListExpenses handles listing a month's expenses page by page.
// @Summary     List expenses
// @Description Paginated expenses of a month, newest first
// @Tags        expenses
// @Produce     json
// @Param       month     query string false "Month (YYYY-MM), defaults to the current month"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Expense] "Paginated expenses"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     503 {object} ErrorResponse "Storage unavailable"
// @Router      /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	var q monthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	m, err := monthOrCurrent(q.Month, h.location)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.expenseService.ListExpenses(m, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// recentQuery holds the parameters of the recent-expenses endpoint.
type recentQuery struct {
	Month string `form:"month" binding:"omitempty,month_key"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

// ListRecent handles listing the most recent expenses of a month.
// @Summary     Recent expenses
// @Description Most recent expenses of a month ordered by date, then entry time
// @Tags        expenses
// @Produce     json
// @Param       month query string false "Month (YYYY-MM), defaults to the current month"
// @Param       limit query int    false "Maximum number of expenses (default 10, max 100)"
// @Success     200 {array}  models.Expense "Recent expenses"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     503 {object} ErrorResponse "Storage unavailable"
// @Router      /expenses/recent [get]
func (h *ExpenseHandler) ListRecent(c *gin.Context) {
	var q recentQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	m, err := monthOrCurrent(q.Month, h.location)
	if err != nil {
		respondWithError(c, err)
		return
	}

	limit := q.Limit
	if limit == 0 {
		limit = h.recentLimit
	}

	expenses, err := h.expenseService.ListRecent(m, limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"month": m.String(), "expenses": expenses})
}

// DeleteExpense handles deleting an expense. Unknown ids succeed.
// @Summary     Delete expense
// @Description Delete an expense by ID; deleting a missing expense is not an error
// @Tags        expenses
// @Produce     json
// @Param       id path int true "Expense ID"
// @Success     200 {object} MessageResponse "Expense deleted"
// @Failure     400 {object} ErrorResponse "Invalid expense ID"
// @Failure     503 {object} ErrorResponse "Storage unavailable"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteExpense(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(services.AuditActionDeleteExpense, "expense", strconv.FormatUint(uint64(id), 10), c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Expense deleted successfully"})
}

// GetCategories returns the fixed list of expense categories.
// @Summary     List categories
// @Description The expense categories accepted by the API, in display order
// @Tags        expenses
// @Produce     json
// @Success     200 {array} string "Categories"
// @Router      /categories [get]
func (h *ExpenseHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": models.ExpenseCategories})
}
