package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/fadhlanhapp/tokocalc-backend/models"
	"github.com/fadhlanhapp/tokocalc-backend/repository"
)

func newTestExcelService() *ExcelService {
	service := NewExcelService()
	service.now = func() time.Time {
		return time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	}
	return service
}

func cellValue(t *testing.T, f *excelize.File, sheet, cell string) string {
	t.Helper()
	value, err := f.GetCellValue(sheet, cell)
	require.NoError(t, err)
	return value
}

func TestExcelService_ExportCart(t *testing.T) {
	service := newTestExcelService()
	items := []models.LineItem{
		{ID: "1", Name: "A", Qty: 2, Price: dec("200000")},
		{ID: "2", Name: "B", Qty: 1, Price: dec("150000")},
	}
	summary := newTestCartService().Compute(items)

	f, filename, err := service.ExportCart(items, summary)

	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, "Shopping_Cart_Export_2024-03-05.xlsx", filename)
	assert.Equal(t, []string{"Cart"}, f.GetSheetList())

	assert.Equal(t, "Item", cellValue(t, f, "Cart", "A1"))
	assert.Equal(t, "A", cellValue(t, f, "Cart", "A2"))
	assert.Equal(t, "2", cellValue(t, f, "Cart", "B2"))
	assert.Equal(t, "400000", cellValue(t, f, "Cart", "D2"))
	assert.Equal(t, "B", cellValue(t, f, "Cart", "A3"))

	assert.Equal(t, "Subtotal", cellValue(t, f, "Cart", "A5"))
	assert.Equal(t, "550000", cellValue(t, f, "Cart", "D5"))
	assert.Equal(t, "Discount", cellValue(t, f, "Cart", "A6"))
	assert.Equal(t, "55000", cellValue(t, f, "Cart", "D6"))
	assert.Equal(t, "Final Total", cellValue(t, f, "Cart", "A7"))
	assert.Equal(t, "495000", cellValue(t, f, "Cart", "D7"))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	assert.NotZero(t, buf.Len())
}

func TestExcelService_ExportRanking(t *testing.T) {
	service := newTestExcelService()
	ranking := NewRankingService(repository.NewProductRepository()).RankCatalog()

	f, filename, err := service.ExportRanking(ranking)

	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, "Product_Ranking_Export_2024-03-05.xlsx", filename)

	assert.Equal(t, "1", cellValue(t, f, "Products", "A2"))
	assert.Equal(t, "Mouse Wireless", cellValue(t, f, "Products", "C2"))
	assert.Equal(t, "Laptop Gaming", cellValue(t, f, "Products", "C6"))

	assert.Equal(t, "Lowest Price", cellValue(t, f, "Products", "A8"))
	assert.Equal(t, "Mouse Wireless", cellValue(t, f, "Products", "C8"))
	assert.Equal(t, "Highest Price", cellValue(t, f, "Products", "A9"))
	assert.Equal(t, "15000000", cellValue(t, f, "Products", "D9"))
}

func TestExcelService_ExportRanking_Empty(t *testing.T) {
	service := newTestExcelService()

	f, _, err := service.ExportRanking(models.Ranking{Sorted: []models.Product{}})

	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, "Rank", cellValue(t, f, "Products", "A1"))
	assert.Equal(t, "", cellValue(t, f, "Products", "A2"))
	assert.Equal(t, "", cellValue(t, f, "Products", "A3"))
}
