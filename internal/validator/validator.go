// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"budgetplanner/internal/month"
)

// DateLayout is the format of expense dates in forms and JSON bodies.
const DateLayout = "2006-01-02"

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("month_key", validateMonthKey)
		_ = v.RegisterValidation("iso_date", validateISODate)
	}
}

func validateMonthKey(fl validator.FieldLevel) bool {
	_, err := month.Parse(fl.Field().String())
	return err == nil
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateLayout, fl.Field().String())
	return err == nil
}
