package main

import (
	"fmt"
	"os"

	"budgetplanner/internal/config"
	"budgetplanner/internal/database"
	"budgetplanner/internal/logger"
	"budgetplanner/internal/router"
)

// @title           Budget Planner API
// @version         1.0
// @description     Budget Planner tracks a monthly budget against the expenses recorded in that month.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig(appConfig)
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("failed to close database: %v", err)
		}
	}()

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	engine, err := router.New(dbManager.DB(), router.Options{
		Location:    appConfig.Location,
		RecentLimit: appConfig.RecentExpensesLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	log.Infow("Starting Budget Planner server",
		"port", appConfig.Port,
		"db_driver", dbConfig.Driver,
		"timezone", appConfig.Location.String(),
	)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return engine.Run(":" + appConfig.Port)
}
