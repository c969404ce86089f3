package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"budgetplanner/internal/models"
	"budgetplanner/internal/services"
	appvalidator "budgetplanner/internal/validator"
)

// PageHandler renders the server-side HTML pages and handles their form posts.
type PageHandler struct {
	budgetService  services.BudgetServicer
	expenseService services.ExpenseServicer
	statusService  services.StatusServicer
	auditService   services.AuditServicer
	location       *time.Location
	recentLimit    int
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(
	budgetService services.BudgetServicer,
	expenseService services.ExpenseServicer,
	statusService services.StatusServicer,
	auditService services.AuditServicer,
	loc *time.Location,
	recentLimit int,
) *PageHandler {
	return &PageHandler{
		budgetService:  budgetService,
		expenseService: expenseService,
		statusService:  statusService,
		auditService:   auditService,
		location:       loc,
		recentLimit:    recentLimit,
	}
}

// budgetForm is the "Set Monthly Budget" form.
type budgetForm struct {
	Month  string `form:"month" binding:"required,month_key"`
	Amount string `form:"amount" binding:"required"`
}

// expenseForm is the "Add Expense" form.
type expenseForm struct {
	Description string `form:"description" binding:"required,max=255"`
	Amount      string `form:"amount" binding:"required"`
	Category    string `form:"category"`
	ExpenseDate string `form:"expense_date" binding:"required,iso_date"`
	Month       string `form:"month" binding:"omitempty,month_key"`
}

// deleteForm carries the month to return to after a delete.
type deleteForm struct {
	Month string `form:"month" binding:"omitempty,month_key"`
}

// dashboardPage is the data rendered by index.html.
type dashboardPage struct {
	services.Dashboard
	PrevMonth  string
	NextMonth  string
	Today      string
	Categories []models.ExpenseCategory
}

// Dashboard renders the month overview page.
func (h *PageHandler) Dashboard(c *gin.Context) {
	m, err := monthOrCurrent(c.Query("month"), h.location)
	if err != nil {
		h.renderError(c, err)
		return
	}

	dashboard, err := h.statusService.GetDashboard(m, h.recentLimit)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "index.html", dashboardPage{
		Dashboard:  *dashboard,
		PrevMonth:  m.Prev().String(),
		NextMonth:  m.Next().String(),
		Today:      time.Now().In(h.location).Format(appvalidator.DateLayout),
		Categories: models.ExpenseCategories,
	})
}

// SetBudget handles the budget form.
func (h *PageHandler) SetBudget(c *gin.Context) {
	var form budgetForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderError(c, bindingError(err))
		return
	}

	m, err := monthOrCurrent(form.Month, h.location)
	if err != nil {
		h.renderError(c, err)
		return
	}

	amount, err := parseAmount(form.Amount)
	if err != nil {
		h.renderError(c, err)
		return
	}

	budget, err := h.budgetService.SetBudget(m, amount)
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.auditService.Log(services.AuditActionSetBudget, "budget", budget.Month, c.ClientIP(),
		map[string]interface{}{"amount": budget.Amount.String()})

	h.redirectToMonth(c, budget.Month)
}

// AddExpense handles the expense form.
func (h *PageHandler) AddExpense(c *gin.Context) {
	var form expenseForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderError(c, bindingError(err))
		return
	}

	amount, err := parseAmount(form.Amount)
	if err != nil {
		h.renderError(c, err)
		return
	}

	date, err := parseDate(form.ExpenseDate)
	if err != nil {
		h.renderError(c, err)
		return
	}

	expense, err := h.expenseService.AddExpense(form.Description, amount, models.ExpenseCategory(form.Category), date)
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.auditService.Log(services.AuditActionAddExpense, "expense", strconv.FormatUint(uint64(expense.ID), 10), c.ClientIP(),
		map[string]interface{}{"amount": expense.Amount.String(), "category": expense.Category})

	target := form.Month
	if target == "" {
		target = date.Format("2006-01")
	}
	h.redirectToMonth(c, target)
}

// DeleteExpense handles the delete button of the recent expenses table.
func (h *PageHandler) DeleteExpense(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		h.renderError(c, err)
		return
	}

	var form deleteForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderError(c, bindingError(err))
		return
	}

	if err := h.expenseService.DeleteExpense(id); err != nil {
		h.renderError(c, err)
		return
	}

	h.auditService.Log(services.AuditActionDeleteExpense, "expense", strconv.FormatUint(uint64(id), 10), c.ClientIP(), nil)

	h.redirectToMonth(c, form.Month)
}

// redirectToMonth sends the browser back to the dashboard (Post/Redirect/Get).
func (h *PageHandler) redirectToMonth(c *gin.Context, monthKey string) {
	target := "/"
	if monthKey != "" {
		target += "?month=" + url.QueryEscape(monthKey)
	}
	c.Redirect(http.StatusSeeOther, target)
}

// renderError shows the error page with the error's status code.
func (h *PageHandler) renderError(c *gin.Context, err error) {
	appErr := toAppError(c, err)
	c.HTML(appErr.StatusCode, "error.html", gin.H{
		"Status":  appErr.StatusCode,
		"Code":    appErr.Code,
		"Message": appErr.Message,
	})
}
