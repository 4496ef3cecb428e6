package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ValidateRequired checks if a string field is not empty
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return NewFieldError(fieldName, fmt.Sprintf("%s is required", fieldName))
	}
	return nil
}

// ValidatePositive checks if a number is positive
func ValidatePositive(value decimal.Decimal, fieldName string) error {
	if !value.IsPositive() {
		return NewFieldError(fieldName, fmt.Sprintf("%s must be positive", fieldName))
	}
	return nil
}

// ValidateNonNegative checks if a number is non-negative
func ValidateNonNegative(value decimal.Decimal, fieldName string) error {
	if value.IsNegative() {
		return NewFieldError(fieldName, fmt.Sprintf("%s cannot be negative", fieldName))
	}
	return nil
}

// ValidateWholeNumber checks that a number has no fractional part
func ValidateWholeNumber(value decimal.Decimal, fieldName string) error {
	if !value.IsInteger() {
		return NewFieldError(fieldName, fmt.Sprintf("%s must be a whole number", fieldName))
	}
	return nil
}

// ValidateOneOf checks that value is one of the allowed labels
func ValidateOneOf(value string, allowed []string, fieldName string) error {
	for _, candidate := range allowed {
		if value == candidate {
			return nil
		}
	}
	return NewFieldError(fieldName, fmt.Sprintf("%s must be one of: %s", fieldName, strings.Join(allowed, ", ")))
}

// ValidateRange checks that lower <= value <= upper. aboveFormat and
// belowFormat receive the violated bound.
func ValidateRange(value, lower, upper float64, fieldName, aboveFormat, belowFormat string) error {
	if value > upper {
		return NewFieldError(fieldName, fmt.Sprintf(aboveFormat, FormatNumber(upper)))
	}
	if value < lower {
		return NewFieldError(fieldName, fmt.Sprintf(belowFormat, FormatNumber(lower)))
	}
	return nil
}
