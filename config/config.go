// config/config.go
package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DiscountRule describes the cart-wide discount applied above a subtotal threshold
type DiscountRule struct {
	Threshold decimal.Decimal
	Rate      decimal.Decimal
}

// GradeStep is one rung of the grade ladder
type GradeStep struct {
	Grade string
	Min   float64
}

// GradeScale holds the accepted score range and the grade ladder.
// Steps are kept in descending order of Min.
type GradeScale struct {
	Steps    []GradeStep
	Fallback string
	ScoreMin float64
	ScoreMax float64
}

// Rules groups the business constants injected into the services
type Rules struct {
	Discount   DiscountRule
	Grades     GradeScale
	Categories []string
}

// Config is the full application configuration
type Config struct {
	Port            string
	NewRelicAppName string
	NewRelicLicense string
	AllowOrigins    []string
	Rules           Rules
}

var defaultCategories = []string{
	"Elektronik",
	"Pakaian",
	"Makanan & Minuman",
	"Kesehatan",
	"Otomotif",
}

// DefaultRules returns the stock business rules
func DefaultRules() Rules {
	return Rules{
		Discount: DiscountRule{
			Threshold: decimal.NewFromInt(500000),
			Rate:      decimal.RequireFromString("0.10"),
		},
		Grades: GradeScale{
			Steps: []GradeStep{
				{Grade: "A", Min: 90},
				{Grade: "B", Min: 80},
				{Grade: "C", Min: 70},
				{Grade: "D", Min: 60},
			},
			Fallback: "E",
			ScoreMin: 0,
			ScoreMax: 100,
		},
		Categories: append([]string(nil), defaultCategories...),
	}
}

// Load builds the configuration from environment variables, falling back to defaults
func Load() (*Config, error) {
	rules := DefaultRules()

	if v := os.Getenv("DISCOUNT_THRESHOLD"); v != "" {
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil || d.IsNegative() {
			return nil, fmt.Errorf("invalid DISCOUNT_THRESHOLD %q", v)
		}
		rules.Discount.Threshold = d
	}
	if v := os.Getenv("DISCOUNT_RATE"); v != "" {
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil || d.IsNegative() || d.GreaterThan(decimal.NewFromInt(1)) {
			return nil, fmt.Errorf("invalid DISCOUNT_RATE %q", v)
		}
		rules.Discount.Rate = d
	}
	if v := os.Getenv("GRADE_THRESHOLDS"); v != "" {
		steps, err := ParseGradeSteps(v)
		if err != nil {
			return nil, err
		}
		rules.Grades.Steps = steps
	}
	rules.Grades.Fallback = getEnvOrDefault("GRADE_FALLBACK", rules.Grades.Fallback)

	var err error
	if rules.Grades.ScoreMin, err = getFloatOrDefault("SCORE_MIN", rules.Grades.ScoreMin); err != nil {
		return nil, err
	}
	if rules.Grades.ScoreMax, err = getFloatOrDefault("SCORE_MAX", rules.Grades.ScoreMax); err != nil {
		return nil, err
	}
	if rules.Grades.ScoreMin > rules.Grades.ScoreMax {
		return nil, fmt.Errorf("SCORE_MIN %v is greater than SCORE_MAX %v", rules.Grades.ScoreMin, rules.Grades.ScoreMax)
	}

	if v := os.Getenv("PRODUCT_CATEGORIES"); v != "" {
		categories := splitList(v)
		if len(categories) == 0 {
			return nil, fmt.Errorf("PRODUCT_CATEGORIES must list at least one category")
		}
		rules.Categories = categories
	}

	origins := splitList(getEnvOrDefault("CORS_ALLOW_ORIGINS", "*"))

	return &Config{
		Port:            getEnvOrDefault("PORT", "8080"),
		NewRelicAppName: getEnvOrDefault("NEW_RELIC_APP_NAME", "TokoCalc API"),
		NewRelicLicense: os.Getenv("NEW_RELIC_LICENSE_KEY"),
		AllowOrigins:    origins,
		Rules:           rules,
	}, nil
}

// ParseGradeSteps parses a ladder such as "A:90,B:80,C:70,D:60".
// The result is ordered by descending minimum.
func ParseGradeSteps(raw string) ([]GradeStep, error) {
	var steps []GradeStep
	for _, part := range splitList(raw) {
		grade, threshold, found := strings.Cut(part, ":")
		grade = strings.TrimSpace(grade)
		if !found || grade == "" {
			return nil, fmt.Errorf("invalid grade step %q", part)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(threshold), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid grade step %q: %v", part, err)
		}
		steps = append(steps, GradeStep{Grade: grade, Min: value})
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("grade ladder is empty")
	}

	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].Min > steps[j].Min
	})
	return steps, nil
}

func splitList(raw string) []string {
	var result []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}

func getFloatOrDefault(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", key, value)
	}
	return f, nil
}

// Helper function to get environment variable with default value
func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
