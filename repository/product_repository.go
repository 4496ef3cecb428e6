// repository/product_repository.go
package repository

import (
	"github.com/shopspring/decimal"

	"github.com/fadhlanhapp/tokocalc-backend/models"
)

// ProductRepository serves the read-only product catalog
type ProductRepository struct {
	products []models.Product
}

// NewProductRepository creates a repository over the seed catalog
func NewProductRepository() *ProductRepository {
	return NewProductRepositoryWith([]models.Product{
		{ID: 1, Name: "Laptop Gaming", Price: decimal.NewFromInt(15000000), Stock: 10},
		{ID: 2, Name: "Mouse Wireless", Price: decimal.NewFromInt(250000), Stock: 50},
		{ID: 3, Name: "Keyboard Mekanik", Price: decimal.NewFromInt(1200000), Stock: 15},
		{ID: 4, Name: "Monitor 24 inch", Price: decimal.NewFromInt(3500000), Stock: 8},
		{ID: 5, Name: "Webcam HD", Price: decimal.NewFromInt(400000), Stock: 30},
	})
}

// NewProductRepositoryWith creates a repository over the given products
func NewProductRepositoryWith(products []models.Product) *ProductRepository {
	return &ProductRepository{products: products}
}

// GetProducts returns a copy of the catalog in seed order
func (r *ProductRepository) GetProducts() []models.Product {
	products := make([]models.Product, len(r.products))
	copy(products, r.products)
	return products
}
