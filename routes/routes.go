package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/fadhlanhapp/tokocalc-backend/handlers"
)

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	{
		// Cart endpoints
		v1.POST("/cart/summary", handlers.CartSummary)
		v1.POST("/cart/items/add", handlers.AddCartItem)
		v1.POST("/cart/items/remove", handlers.RemoveCartItem)
		v1.POST("/cart/draft/edit", handlers.EditCartDraft)
		v1.POST("/cart/export", handlers.ExportCart)

		// Grade endpoints
		v1.POST("/grades/score", handlers.EnterScore)
		v1.POST("/grades/calculate", handlers.CalculateGrade)

		// Product endpoints
		v1.GET("/products", handlers.ListProducts)
		v1.POST("/products/rank", handlers.RankProducts)
		v1.GET("/products/export", handlers.ExportProducts)
		v1.GET("/products/categories", handlers.ListCategories)
		v1.POST("/products/validate", handlers.ValidateProduct)
		v1.POST("/products/form/edit", handlers.EditProductForm)
		v1.POST("/products/form/submit", handlers.SubmitProductForm)

		// Sales endpoints
		v1.GET("/sales/monthly", handlers.MonthlySales)
	}
}
