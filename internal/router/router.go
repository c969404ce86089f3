// Package router wires services, handlers and middleware into the HTTP engine.
package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "budgetplanner/internal/docs" // Import swagger docs
	apperrors "budgetplanner/internal/errors"
	"budgetplanner/internal/handlers"
	"budgetplanner/internal/middleware"
	"budgetplanner/internal/services"
	"budgetplanner/internal/validator"
	"budgetplanner/web"
)

// Options tune the behavior of the handlers.
type Options struct {
	// Location decides "today" and the current month. Nil means UTC.
	Location *time.Location
	// RecentLimit is the number of recent expenses shown by default.
	RecentLimit int
}

// New builds the gin engine serving the dashboard and the JSON API on top of db.
func New(db *gorm.DB, opts Options) (*gin.Engine, error) {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.RecentLimit < 1 {
		opts.RecentLimit = 10
	}

	validator.Register()

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	// Initialize services
	budgetService := services.NewBudgetService(db)
	expenseService := services.NewExpenseService(db)
	statusService := services.NewStatusService(budgetService, expenseService)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	budgetHandler := handlers.NewBudgetHandler(budgetService, statusService, auditService, opts.RecentLimit)
	expenseHandler := handlers.NewExpenseHandler(expenseService, auditService, opts.Location, opts.RecentLimit)
	pageHandler := handlers.NewPageHandler(budgetService, expenseService, statusService, auditService,
		opts.Location, opts.RecentLimit)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())
	router.SetHTMLTemplate(tmpl)

	router.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperrors.ErrNotFound)
	})

	// HTML dashboard
	router.GET("/", pageHandler.Dashboard)
	router.POST("/budget", pageHandler.SetBudget)
	router.POST("/expenses", pageHandler.AddExpense)
	router.POST("/expenses/:id/delete", pageHandler.DeleteExpense)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	budgets := v1.Group("/budgets")
	budgets.GET("/:month", budgetHandler.GetBudget)
	budgets.PUT("/:month", budgetHandler.SetBudget)

	v1.GET("/status/:month", budgetHandler.GetStatus)
	v1.GET("/dashboard/:month", budgetHandler.GetDashboard)

	expenses := v1.Group("/expenses")
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("/recent", expenseHandler.ListRecent)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	v1.GET("/categories", expenseHandler.GetCategories)

	return router, nil
}
