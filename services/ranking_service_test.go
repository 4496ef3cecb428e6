package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadhlanhapp/tokocalc-backend/models"
	"github.com/fadhlanhapp/tokocalc-backend/repository"
)

func newTestRankingService() *RankingService {
	return NewRankingService(repository.NewProductRepository())
}

func TestRankingService_Rank_MinMax(t *testing.T) {
	service := newTestRankingService()
	products := []models.Product{
		{ID: 1, Name: "Laptop Gaming", Price: dec("15000000"), Stock: 10},
		{ID: 2, Name: "Mouse Wireless", Price: dec("250000"), Stock: 50},
		{ID: 3, Name: "Keyboard Mekanik", Price: dec("1200000"), Stock: 15},
		{ID: 4, Name: "Monitor 24 inch", Price: dec("3500000"), Stock: 8},
		{ID: 5, Name: "Webcam HD", Price: dec("400000"), Stock: 30},
	}

	ranking := service.Rank(products)

	require.NotNil(t, ranking.Lowest)
	require.NotNil(t, ranking.Highest)
	assertDecimal(t, "250000", ranking.Lowest.Price)
	assertDecimal(t, "15000000", ranking.Highest.Price)

	var ids []int
	for _, p := range ranking.Sorted {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int{2, 5, 3, 4, 1}, ids)
}

func TestRankingService_Rank_DoesNotMutateInput(t *testing.T) {
	service := newTestRankingService()
	products := []models.Product{
		{ID: 1, Name: "B", Price: dec("200")},
		{ID: 2, Name: "A", Price: dec("100")},
	}

	service.Rank(products)

	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, 2, products[1].ID)
}

func TestRankingService_Rank_StableTies(t *testing.T) {
	service := newTestRankingService()
	products := []models.Product{
		{ID: 1, Name: "first", Price: dec("500")},
		{ID: 2, Name: "second", Price: dec("100")},
		{ID: 3, Name: "third", Price: dec("500")},
		{ID: 4, Name: "fourth", Price: dec("100.00")},
		{ID: 5, Name: "fifth", Price: dec("500")},
	}

	ranking := service.Rank(products)

	var ids []int
	for _, p := range ranking.Sorted {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int{2, 4, 1, 3, 5}, ids)
	assert.Equal(t, 2, ranking.Lowest.ID)
	assert.Equal(t, 5, ranking.Highest.ID)
}

func TestRankingService_Rank_Idempotent(t *testing.T) {
	service := newTestRankingService()

	once := service.Rank(repository.NewProductRepository().GetProducts())
	twice := service.Rank(once.Sorted)

	assert.Equal(t, once.Sorted, twice.Sorted)
	assert.Equal(t, once.Lowest, twice.Lowest)
	assert.Equal(t, once.Highest, twice.Highest)
}

func TestRankingService_Rank_Empty(t *testing.T) {
	service := newTestRankingService()

	for _, input := range [][]models.Product{nil, {}} {
		ranking := service.Rank(input)

		assert.Empty(t, ranking.Sorted)
		assert.NotNil(t, ranking.Sorted)
		assert.Nil(t, ranking.Lowest)
		assert.Nil(t, ranking.Highest)
	}
}

func TestRankingService_Rank_SingleProduct(t *testing.T) {
	service := newTestRankingService()
	products := []models.Product{{ID: 7, Name: "Flashdisk", Price: dec("90000"), Stock: 3}}

	ranking := service.Rank(products)

	assert.Equal(t, 7, ranking.Lowest.ID)
	assert.Equal(t, 7, ranking.Highest.ID)
}

func TestRankingService_RankCatalog(t *testing.T) {
	service := newTestRankingService()

	ranking := service.RankCatalog()

	require.Len(t, ranking.Sorted, 5)
	assert.Equal(t, "Mouse Wireless", ranking.Lowest.Name)
	assert.Equal(t, "Laptop Gaming", ranking.Highest.Name)
}
