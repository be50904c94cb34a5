package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"finance-assistant/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	// amounts validate as plain numbers; an unparseable amount has no value at all
	v.RegisterCustomTypeFunc(amountValue, models.Amount{})

	_ = v.RegisterValidation("money", validateMoney)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("goal_status", validateGoalStatus)
	_ = v.RegisterValidation("category_type", validateCategoryType)
	_ = v.RegisterValidation("iso_date", validateISODate)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates s and returns validator.ValidationErrors on failure
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

func amountValue(field reflect.Value) interface{} {
	amount, ok := field.Interface().(models.Amount)
	if !ok || !amount.Valid {
		return nil
	}
	f, _ := amount.Value.Float64()
	return f
}

// validateMoney validates that an amount is positive and has at most 2 decimal places
func validateMoney(fl validator.FieldLevel) bool {
	var amount float64
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		amount = fl.Field().Float()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		amount = float64(fl.Field().Int())
	default:
		return false
	}

	if amount <= 0 {
		return false
	}

	amountStr := fmt.Sprintf("%.10f", amount)
	parts := strings.Split(amountStr, ".")
	if len(parts) > 1 {
		fraction := strings.TrimRight(parts[1], "0")
		if len(fraction) > 2 {
			return false
		}
	}

	return true
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(fl.Field().String())
}

func validateGoalStatus(fl validator.FieldLevel) bool {
	return models.IsValidGoalStatus(fl.Field().String())
}

func validateCategoryType(fl validator.FieldLevel) bool {
	return models.IsValidCategoryType(fl.Field().String())
}

// validateISODate accepts an ISO-8601 date or date-time
func validateISODate(fl validator.FieldLevel) bool {
	_, ok := models.ParseDate(fl.Field().String())
	return ok
}

// FieldMessages flattens validation errors into field name to message pairs.
// The second result is false when err is not a validation error.
func FieldMessages(err error) (map[string]string, bool) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil, false
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields[fieldErr.Field()] = FormatFieldError(fieldErr)
	}
	return fields, true
}

// FormatFieldError converts a validator.FieldError to a human-readable message
func FormatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "numeric":
		return "must be a valid number"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "money":
		return "must be a positive amount with at most 2 decimal places"
	case "transaction_type":
		return "must be a valid transaction type (income, expense)"
	case "goal_status":
		return "must be a valid goal status (in_progress, completed, on_hold)"
	case "category_type":
		return "must be a valid category type (income, expense)"
	case "iso_date":
		return "must be a valid date (YYYY-MM-DD)"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
