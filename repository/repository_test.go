package repository

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProductRepository_ReturnsCopy(t *testing.T) {
	repo := NewProductRepository()

	products := repo.GetProducts()
	assert.Len(t, products, 5)
	assert.Equal(t, "Laptop Gaming", products[0].Name)

	products[0].Name = "changed"
	assert.Equal(t, "Laptop Gaming", repo.GetProducts()[0].Name)
}

func TestSalesRepository_CalendarOrder(t *testing.T) {
	sales := NewSalesRepository().GetMonthlySales()

	assert.Len(t, sales, 6)
	assert.Equal(t, "Januari", sales[0].Month)
	assert.Equal(t, "Juni", sales[5].Month)
	assert.True(t, decimal.NewFromInt(7500000).Equal(sales[4].Amount))
}
