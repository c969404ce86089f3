package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
	_ "time/tzdata" // BUDGET_TIMEZONE must resolve on hosts without a zoneinfo database

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Database
	DBDriver     string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSSLMode    string
	DBSQLitePath string

	// Budget
	Location            *time.Location
	RecentExpensesLimit int
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Database
		DBDriver:     getEnv("DB_DRIVER", "postgres"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "budget"),
		DBPassword:   getEnv("DB_PASSWORD", "budget"),
		DBName:       getEnv("DB_NAME", "budget_planner"),
		DBSSLMode:    getEnv("DB_SSLMODE", "disable"),
		DBSQLitePath: getEnv("DB_SQLITE_PATH", "budget_planner.db"),
	}

	tz := getEnv("BUDGET_TIMEZONE", "UTC")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid BUDGET_TIMEZONE %q: %w", tz, err)
	}
	config.Location = loc

	limitStr := getEnv("RECENT_EXPENSES_LIMIT", "10")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		log.Printf("Warning: invalid RECENT_EXPENSES_LIMIT value '%s', falling back to 10\n", limitStr)
		limit = 10
	}
	config.RecentExpensesLimit = limit

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// PostgresURL returns the migrate-style connection URL for the configured database.
func (c *Config) PostgresURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
