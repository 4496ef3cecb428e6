package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/fadhlanhapp/tokocalc-backend/utils"
)

// MonthlySales returns the monthly sales chart series
func MonthlySales(c *gin.Context) {
	utils.HandleSuccess(c, gin.H{"series": handlerServices.SalesService.MonthlySeries()})
}
