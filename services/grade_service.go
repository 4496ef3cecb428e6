package services

import (
	"fmt"

	"github.com/fadhlanhapp/tokocalc-backend/config"
	"github.com/fadhlanhapp/tokocalc-backend/models"
	"github.com/fadhlanhapp/tokocalc-backend/utils"
)

// GradeService averages exam scores and maps the average to a letter grade
type GradeService struct {
	scale config.GradeScale
}

// NewGradeService creates a new grade service
func NewGradeService(scale config.GradeScale) *GradeService {
	return &GradeService{scale: scale}
}

// EnterScore puts raw into the given slot when it is empty or a number within
// the accepted range. Rejected values leave the set unchanged.
func (s *GradeService) EnterScore(set models.ScoreSet, slot int, raw models.FieldValue) (models.ScoreSet, error) {
	if slot < 0 || slot >= len(set.Scores) {
		return set, utils.NewValidationError(utils.ErrScoreSlotRange)
	}
	field := scoreField(slot)

	if raw.IsEmpty() {
		set.Scores[slot] = ""
		return set, nil
	}

	value, err := utils.ParseNumber(raw.String())
	if err != nil {
		return set, utils.NewFieldError(field, utils.ErrScoreNotNumber)
	}
	if err := utils.ValidateRange(value, s.scale.ScoreMin, s.scale.ScoreMax, field, utils.ErrScoreAboveMax, utils.ErrScoreBelowMin); err != nil {
		return set, err
	}

	set.Scores[slot] = raw
	return set, nil
}

// Compute averages the three scores. The result is only valid when every
// slot holds a number within range.
func (s *GradeService) Compute(scores [3]models.FieldValue) models.GradeResult {
	var total float64
	for _, raw := range scores {
		value, ok := s.parseScore(raw)
		if !ok {
			return models.GradeResult{IsValid: false}
		}
		total += value
	}

	average := total / float64(len(scores))
	rounded := utils.Round(average)
	grade := s.Classify(average)

	return models.GradeResult{
		Average: &rounded,
		Grade:   &grade,
		IsValid: true,
	}
}

// Classify walks the grade ladder from the top; the first step whose minimum
// the average reaches wins.
func (s *GradeService) Classify(average float64) string {
	for _, step := range s.scale.Steps {
		if average >= step.Min {
			return step.Grade
		}
	}
	return s.scale.Fallback
}

func (s *GradeService) parseScore(raw models.FieldValue) (float64, bool) {
	value, err := utils.ParseNumber(raw.String())
	if err != nil {
		return 0, false
	}
	if value < s.scale.ScoreMin || value > s.scale.ScoreMax {
		return 0, false
	}
	return value, true
}

func scoreField(slot int) string {
	return fmt.Sprintf("score%d", slot+1)
}
