// repository/sales_repository.go
package repository

import (
	"github.com/shopspring/decimal"

	"github.com/fadhlanhapp/tokocalc-backend/models"
)

// SalesRepository serves the recorded monthly sales
type SalesRepository struct {
	sales []models.MonthlySales
}

// NewSalesRepository creates a repository over the Januari to Juni figures
func NewSalesRepository() *SalesRepository {
	return &SalesRepository{
		sales: []models.MonthlySales{
			{Month: "Januari", Amount: decimal.NewFromInt(4500000)},
			{Month: "Februari", Amount: decimal.NewFromInt(5200000)},
			{Month: "Maret", Amount: decimal.NewFromInt(3800000)},
			{Month: "April", Amount: decimal.NewFromInt(6100000)},
			{Month: "Mei", Amount: decimal.NewFromInt(7500000)},
			{Month: "Juni", Amount: decimal.NewFromInt(5900000)},
		},
	}
}

// GetMonthlySales returns a copy of the recorded months in calendar order
func (r *SalesRepository) GetMonthlySales() []models.MonthlySales {
	sales := make([]models.MonthlySales, len(r.sales))
	copy(sales, r.sales)
	return sales
}
