package services

import (
	"github.com/fadhlanhapp/tokocalc-backend/models"
	"github.com/fadhlanhapp/tokocalc-backend/repository"
)

// SalesService supplies chart series for recorded sales
type SalesService struct {
	salesRepo *repository.SalesRepository
}

// NewSalesService creates a new sales service
func NewSalesService(salesRepo *repository.SalesRepository) *SalesService {
	return &SalesService{salesRepo: salesRepo}
}

// MonthlySeries returns one {label, value} point per recorded month
func (s *SalesService) MonthlySeries() []models.SeriesPoint {
	sales := s.salesRepo.GetMonthlySales()

	series := make([]models.SeriesPoint, 0, len(sales))
	for _, month := range sales {
		series = append(series, models.SeriesPoint{
			Label: month.Month,
			Value: month.Amount,
		})
	}
	return series
}
