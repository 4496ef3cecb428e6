package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fadhlanhapp/tokocalc-backend/models"
	"github.com/fadhlanhapp/tokocalc-backend/utils"
)

// CartSummary computes subtotal, discount and final total for the posted items
func CartSummary(c *gin.Context) {
	var request models.CartItemsRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	utils.HandleSuccess(c, handlerServices.CartService.Compute(request.Items))
}

// AddCartItem validates the draft and appends it to the posted items
func AddCartItem(c *gin.Context) {
	var request models.AddCartItemRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	items, draft, err := handlerServices.CartService.AddItem(request.Items, request.Draft)
	if err != nil {
		logger.Debug("cart item rejected", zap.String("reason", err.Error()))
		utils.HandleError(c, err)
		return
	}

	added := items[len(items)-1]
	logger.Info("cart item added",
		zap.String("item_id", added.ID),
		zap.Int("qty", added.Qty),
		zap.String("price", added.Price.String()),
	)

	utils.HandleSuccess(c, models.AddCartItemResponse{
		Items:   items,
		Draft:   draft,
		Summary: handlerServices.CartService.Compute(items),
	})
}

// RemoveCartItem drops the item with the given id from the posted items
func RemoveCartItem(c *gin.Context) {
	var request models.RemoveCartItemRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	items := handlerServices.CartService.RemoveItem(request.Items, request.ID)
	logger.Info("cart item removed",
		zap.String("item_id", request.ID),
		zap.Bool("found", len(items) != len(request.Items)),
	)

	utils.HandleSuccess(c, models.CartItemsResponse{
		Items:   items,
		Summary: handlerServices.CartService.Compute(items),
	})
}

// EditCartDraft sets one field of the add-item draft
func EditCartDraft(c *gin.Context) {
	var request models.EditDraftRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	draft, err := handlerServices.CartService.EditDraft(request.Draft, request.Field, request.Value)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, draft)
}
