package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "CORS_ALLOW_ORIGINS", "DISCOUNT_THRESHOLD", "DISCOUNT_RATE",
		"GRADE_THRESHOLDS", "GRADE_FALLBACK", "SCORE_MIN", "SCORE_MAX", "PRODUCT_CATEGORIES"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"*"}, cfg.AllowOrigins)
	assert.True(t, decimal.NewFromInt(500000).Equal(cfg.Rules.Discount.Threshold))
	assert.True(t, decimal.RequireFromString("0.1").Equal(cfg.Rules.Discount.Rate))
	assert.Equal(t, "E", cfg.Rules.Grades.Fallback)
	assert.Len(t, cfg.Rules.Grades.Steps, 4)
	assert.Len(t, cfg.Rules.Categories, 5)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DISCOUNT_THRESHOLD", "100000")
	t.Setenv("DISCOUNT_RATE", "0.25")
	t.Setenv("GRADE_THRESHOLDS", "B:75, A:85")
	t.Setenv("GRADE_FALLBACK", "F")
	t.Setenv("PRODUCT_CATEGORIES", "Buku, Mainan ,")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:5173,https://toko.example")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, decimal.NewFromInt(100000).Equal(cfg.Rules.Discount.Threshold))
	assert.True(t, decimal.RequireFromString("0.25").Equal(cfg.Rules.Discount.Rate))
	assert.Equal(t, []GradeStep{{Grade: "A", Min: 85}, {Grade: "B", Min: 75}}, cfg.Rules.Grades.Steps)
	assert.Equal(t, "F", cfg.Rules.Grades.Fallback)
	assert.Equal(t, []string{"Buku", "Mainan"}, cfg.Rules.Categories)
	assert.Equal(t, []string{"http://localhost:5173", "https://toko.example"}, cfg.AllowOrigins)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"threshold not numeric", "DISCOUNT_THRESHOLD", "lots"},
		{"negative threshold", "DISCOUNT_THRESHOLD", "-1"},
		{"rate above one", "DISCOUNT_RATE", "1.5"},
		{"grade step without minimum", "GRADE_THRESHOLDS", "A"},
		{"grade step not numeric", "GRADE_THRESHOLDS", "A:high"},
		{"score max not numeric", "SCORE_MAX", "hundred"},
		{"score range inverted", "SCORE_MIN", "200"},
		{"empty category list", "PRODUCT_CATEGORIES", " , "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()

			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestParseGradeSteps_SortsDescending(t *testing.T) {
	steps, err := ParseGradeSteps("D:60,A:90,C:70,B:80")

	require.NoError(t, err)
	assert.Equal(t, []GradeStep{
		{Grade: "A", Min: 90},
		{Grade: "B", Min: 80},
		{Grade: "C", Min: 70},
		{Grade: "D", Min: 60},
	}, steps)
}
