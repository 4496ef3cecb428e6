package services

import (
	"sort"

	"github.com/fadhlanhapp/tokocalc-backend/models"
	"github.com/fadhlanhapp/tokocalc-backend/repository"
)

// RankingService orders products by price and picks the cheapest and dearest
type RankingService struct {
	productRepo *repository.ProductRepository
}

// NewRankingService creates a new ranking service
func NewRankingService(productRepo *repository.ProductRepository) *RankingService {
	return &RankingService{productRepo: productRepo}
}

// Rank sorts a copy of products by ascending price. Equal prices keep their
// input order.
func (s *RankingService) Rank(products []models.Product) models.Ranking {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Price.LessThan(sorted[j].Price)
	})

	ranking := models.Ranking{Sorted: sorted}
	if len(sorted) > 0 {
		lowest := sorted[0]
		highest := sorted[len(sorted)-1]
		ranking.Lowest = &lowest
		ranking.Highest = &highest
	}
	return ranking
}

// RankCatalog ranks the seed catalog
func (s *RankingService) RankCatalog() models.Ranking {
	return s.Rank(s.productRepo.GetProducts())
}
