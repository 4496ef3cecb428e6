package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fadhlanhapp/tokocalc-backend/models"
	"github.com/fadhlanhapp/tokocalc-backend/utils"
)

// ListProducts returns the catalog ranked by price
func ListProducts(c *gin.Context) {
	utils.HandleSuccess(c, handlerServices.RankingService.RankCatalog())
}

// RankProducts ranks the posted products by price
func RankProducts(c *gin.Context) {
	var request models.RankProductsRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	utils.HandleSuccess(c, handlerServices.RankingService.Rank(request.Products))
}

// ListCategories returns the selectable product categories
func ListCategories(c *gin.Context) {
	utils.HandleSuccess(c, gin.H{"categories": handlerServices.ProductFormService.Categories()})
}

// ValidateProduct checks a product draft. Field errors are part of a
// successful response.
func ValidateProduct(c *gin.Context) {
	var draft models.ProductDraft

	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	result := handlerServices.ProductFormService.Validate(draft)
	if !result.OK {
		logger.Debug("product draft rejected", zap.Int("errors", len(result.Errors)))
	}

	utils.HandleSuccess(c, result)
}

// EditProductForm sets one field of the product form
func EditProductForm(c *gin.Context) {
	var request models.EditProductFormRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	form, err := handlerServices.ProductFormService.EditField(request.Form, request.Field, request.Value)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, form)
}

// SubmitProductForm validates the form and resets it on success
func SubmitProductForm(c *gin.Context) {
	var request models.SubmitProductFormRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	form := handlerServices.ProductFormService.Submit(request.Form)
	if form.Submitted {
		logger.Info("product submitted", zap.String("name", request.Form.Draft.Name.String()))
	}

	utils.HandleSuccess(c, form)
}
