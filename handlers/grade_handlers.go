package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fadhlanhapp/tokocalc-backend/models"
	"github.com/fadhlanhapp/tokocalc-backend/utils"
)

// EnterScore accepts a raw value into one score slot
func EnterScore(c *gin.Context) {
	var request models.EnterScoreRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	set, err := handlerServices.GradeService.EnterScore(models.ScoreSet{Scores: request.Scores}, *request.Slot, request.Value)
	if err != nil {
		logger.Debug("score rejected", zap.Int("slot", *request.Slot), zap.String("reason", err.Error()))
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, set)
}

// CalculateGrade averages the three scores and assigns a letter grade.
// Incomplete input is answered with isValid false, not an error.
func CalculateGrade(c *gin.Context) {
	var request models.CalculateGradeRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	result := handlerServices.GradeService.Compute(request.Scores)
	if result.IsValid {
		logger.Info("grade calculated", zap.Float64("average", *result.Average), zap.String("grade", *result.Grade))
	}

	utils.HandleSuccess(c, result)
}
