package validation

import (
	"reflect"
	"regexp"
	"strings"

	"reunion-planner/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("source_module", validateSourceModule)
	_ = v.RegisterValidation("budget_category", validateBudgetCategory)
	_ = v.RegisterValidation("reunion_type", validateReunionType)
	_ = v.RegisterValidation("money_amount", validateMoneyAmount)
	_ = v.RegisterValidation("source_key", validateSourceKey)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateSourceModule validates that a source module is one of the allowed modules
func validateSourceModule(fl validator.FieldLevel) bool {
	return models.IsValidSourceModule(fl.Field().String())
}

// validateBudgetCategory validates that a budget category is one of the fixed set
func validateBudgetCategory(fl validator.FieldLevel) bool {
	return models.IsValidBudgetCategory(fl.Field().String())
}

// validateReunionType validates that a reunion type is one of the allowed types
func validateReunionType(fl validator.FieldLevel) bool {
	return models.IsValidReunionType(fl.Field().String())
}

// validateMoneyAmount validates a monetary string: parseable as a decimal,
// non-negative, at most 2 decimal places
func validateMoneyAmount(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return false
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}

	if amount.IsNegative() {
		return false
	}

	return amount.Exponent() >= -2
}

// validateSourceKey validates the stable per-module key of a source record.
// Keys are short identifiers like "evt-1" or "vnd-42".
func validateSourceKey(fl validator.FieldLevel) bool {
	key := fl.Field().String()
	if key == "" {
		return false
	}

	matched, _ := regexp.MatchString(`^[A-Za-z0-9][A-Za-z0-9._-]{0,99}$`, key)
	return matched
}
