package utils

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrEmptyValue is returned when a numeric field was left blank
var ErrEmptyValue = errors.New("value is empty")

// ErrNotNumber is returned when a field does not hold a finite number
var ErrNotNumber = errors.New("value is not a number")

// Round rounds a number to 2 decimal places, halves away from zero
func Round(num float64) float64 {
	return math.Round(num*MoneyPrecision) / MoneyPrecision
}

// ParseNumber parses a raw form value as a finite float
func ParseNumber(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrEmptyValue
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrNotNumber
	}
	return f, nil
}

// ParseDecimal parses a raw form value as an exact decimal
func ParseDecimal(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, ErrEmptyValue
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ErrNotNumber
	}
	return d, nil
}

// FormatNumber renders a float without trailing zeros
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
