package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/fadhlanhapp/tokocalc-backend/models"
	"github.com/fadhlanhapp/tokocalc-backend/utils"
)

const (
	cartSheet     = "Cart"
	productsSheet = "Products"
)

// ExcelService handles Excel export functionality
type ExcelService struct {
	now func() time.Time
}

// NewExcelService creates a new Excel service
func NewExcelService() *ExcelService {
	return &ExcelService{now: time.Now}
}

// ExportCart writes the cart lines followed by the computed totals
func (s *ExcelService) ExportCart(items []models.LineItem, summary models.CartSummary) (*excelize.File, string, error) {
	f := excelize.NewFile()

	headerStyle, err := s.prepareSheet(f, cartSheet, []string{"Item", "Qty", "Price", "Line Total"})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create cart sheet: %v", err)
	}

	row := 2
	for _, item := range items {
		lineTotal := item.Price.Mul(decimal.NewFromInt(int64(item.Qty)))
		if err := setRow(f, cartSheet, row, item.Name, item.Qty, money(item.Price), money(lineTotal)); err != nil {
			return nil, "", err
		}
		row++
	}

	// Totals block, one blank row below the items
	row++
	totals := []struct {
		label string
		value decimal.Decimal
	}{
		{"Subtotal", summary.Subtotal},
		{"Discount", summary.Discount},
		{"Final Total", summary.FinalTotal},
	}
	for _, total := range totals {
		if err := setRow(f, cartSheet, row, total.label, nil, nil, money(total.value)); err != nil {
			return nil, "", err
		}
		if err := styleRow(f, cartSheet, row, 1, headerStyle); err != nil {
			return nil, "", err
		}
		row++
	}

	f.SetColWidth(cartSheet, "A", "A", 25)
	f.SetColWidth(cartSheet, "B", "D", 15)

	return f, s.filename("Shopping Cart"), nil
}

// ExportRanking writes the price-ordered catalog and its cheapest and dearest entries
func (s *ExcelService) ExportRanking(ranking models.Ranking) (*excelize.File, string, error) {
	f := excelize.NewFile()

	headerStyle, err := s.prepareSheet(f, productsSheet, []string{"Rank", "ID", "Name", "Price", "Stock"})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create products sheet: %v", err)
	}

	row := 2
	for i, product := range ranking.Sorted {
		if err := setRow(f, productsSheet, row, i+1, product.ID, product.Name, money(product.Price), product.Stock); err != nil {
			return nil, "", err
		}
		row++
	}

	row++
	extremes := []struct {
		label   string
		product *models.Product
	}{
		{"Lowest Price", ranking.Lowest},
		{"Highest Price", ranking.Highest},
	}
	for _, extreme := range extremes {
		if extreme.product == nil {
			continue
		}
		p := extreme.product
		if err := setRow(f, productsSheet, row, extreme.label, p.ID, p.Name, money(p.Price), p.Stock); err != nil {
			return nil, "", err
		}
		if err := styleRow(f, productsSheet, row, 1, headerStyle); err != nil {
			return nil, "", err
		}
		row++
	}

	f.SetColWidth(productsSheet, "A", "B", 14)
	f.SetColWidth(productsSheet, "C", "C", 25)
	f.SetColWidth(productsSheet, "D", "E", 15)

	return f, s.filename("Product Ranking"), nil
}

// prepareSheet replaces the default sheet with a named one and writes a styled header row
func (s *ExcelService) prepareSheet(f *excelize.File, sheetName string, headers []string) (int, error) {
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return 0, err
	}

	cells := make([]interface{}, len(headers))
	for i, header := range headers {
		cells[i] = header
	}
	if err := setRow(f, sheetName, 1, cells...); err != nil {
		return 0, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return 0, err
	}
	if err := styleRow(f, sheetName, 1, len(headers), headerStyle); err != nil {
		return 0, err
	}
	return headerStyle, nil
}

func (s *ExcelService) filename(name string) string {
	return fmt.Sprintf("%s_Export_%s.xlsx", utils.CleanFileName(name), s.now().Format("2006-01-02"))
}

// setRow writes values left to right starting at column A; nil leaves a cell blank
func setRow(f *excelize.File, sheetName string, row int, values ...interface{}) error {
	for i, value := range values {
		if value == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return err
		}
	}
	return nil
}

func styleRow(f *excelize.File, sheetName string, row, columns, style int) error {
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(columns, row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheetName, first, last, style)
}

// money converts an exact amount into a spreadsheet number
func money(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
