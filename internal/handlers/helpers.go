package handlers

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	apperrors "budgetplanner/internal/errors"
	"budgetplanner/internal/logger"
	"budgetplanner/internal/month"
	appvalidator "budgetplanner/internal/validator"
)

// ErrorDetail is the body of an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope of every JSON error.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse is returned by endpoints that have nothing else to report.
type MessageResponse struct {
	Message string `json:"message"`
}

// parsePathID parses a uint path parameter.
// Returns ErrInvalidInput if the parameter is not a valid positive integer.
func parsePathID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return uint(id), nil
}

// parseMonthParam parses a YYYY-MM path parameter.
func parseMonthParam(c *gin.Context, param string) (month.Month, error) {
	m, err := month.Parse(c.Param(param))
	if err != nil {
		return month.Month{}, apperrors.ErrInvalidMonth
	}
	return m, nil
}

// monthOrCurrent parses raw as a month key, falling back to the current month in loc when raw is empty.
func monthOrCurrent(raw string, loc *time.Location) (month.Month, error) {
	if raw == "" {
		return month.Current(loc), nil
	}
	m, err := month.Parse(raw)
	if err != nil {
		return month.Month{}, apperrors.ErrInvalidMonth
	}
	return m, nil
}

// parseAmount converts a submitted amount into a decimal.
func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, apperrors.WithMessage(apperrors.ErrInvalidAmount, "Amount must be a number")
	}
	return amount, nil
}

// parseDate converts a YYYY-MM-DD string into midnight UTC of that day.
func parseDate(raw string) (time.Time, error) {
	d, err := time.Parse(appvalidator.DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, apperrors.ErrInvalidDate
	}
	return d, nil
}

// bindingError maps a gin binding failure onto the matching AppError.
func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.Tag() {
			case "month_key":
				return apperrors.ErrInvalidMonth
			case "iso_date":
				return apperrors.ErrInvalidDate
			}
		}
	}

	var numErr *strconv.NumError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &numErr) || errors.As(err, &typeErr) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Malformed request field")
	}
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}

// toAppError returns err as an *AppError, logging and masking anything unexpected.
func toAppError(c *gin.Context, err error) *apperrors.AppError {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		return appErr
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	return apperrors.ErrInternalServer
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	appErr := toAppError(c, err)
	c.JSON(appErr.StatusCode, ErrorResponse{
		Error: ErrorDetail{Code: appErr.Code, Message: appErr.Message},
	})
}
