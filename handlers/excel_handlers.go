package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/fadhlanhapp/tokocalc-backend/models"
	"github.com/fadhlanhapp/tokocalc-backend/utils"
)

// ExportCart exports the posted cart and its totals to Excel format
func ExportCart(c *gin.Context) {
	var request models.CartItemsRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	summary := handlerServices.CartService.Compute(request.Items)
	excelFile, filename, err := handlerServices.ExcelService.ExportCart(request.Items, summary)
	if err != nil {
		logger.Error("cart export failed", zap.Error(err))
		utils.HandleError(c, utils.NewInternalError(utils.ErrFailedToExport))
		return
	}

	writeWorkbook(c, excelFile, filename)
}

// ExportProducts exports the price-ranked catalog to Excel format
func ExportProducts(c *gin.Context) {
	excelFile, filename, err := handlerServices.ExcelService.ExportRanking(handlerServices.RankingService.RankCatalog())
	if err != nil {
		logger.Error("product export failed", zap.Error(err))
		utils.HandleError(c, utils.NewInternalError(utils.ErrFailedToExport))
		return
	}

	writeWorkbook(c, excelFile, filename)
}

func writeWorkbook(c *gin.Context, excelFile *excelize.File, filename string) {
	defer excelFile.Close()

	// Set headers for file download
	c.Header("Content-Type", utils.XLSXContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Header("Content-Transfer-Encoding", "binary")

	// Write Excel file to response
	if err := excelFile.Write(c.Writer); err != nil {
		logger.Error("failed to write workbook", zap.String("filename", filename), zap.Error(err))
		c.Status(http.StatusInternalServerError)
	}
}
