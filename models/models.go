// models/models.go
package models

import "github.com/shopspring/decimal"

// LineItem represents one shopping-cart entry
type LineItem struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Qty   int             `json:"qty"`
	Price decimal.Decimal `json:"price"`
}

// LineItemDraft holds the raw values of the add-item form
type LineItemDraft struct {
	Name  FieldValue `json:"name"`
	Qty   FieldValue `json:"qty"`
	Price FieldValue `json:"price"`
}

// EmptyLineItemDraft returns the draft the add-item form starts with
func EmptyLineItemDraft() LineItemDraft {
	return LineItemDraft{Qty: "1"}
}

// CartSummary is derived from the full line item collection
type CartSummary struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	Discount   decimal.Decimal `json:"discount"`
	FinalTotal decimal.Decimal `json:"finalTotal"`
}

// ScoreSet holds the three exam score slots; an empty slot has not been entered yet
type ScoreSet struct {
	Scores [3]FieldValue `json:"scores"`
}

// GradeResult is the outcome of averaging a ScoreSet.
// Average and Grade are nil unless IsValid.
type GradeResult struct {
	Average *float64 `json:"average"`
	Grade   *string  `json:"grade"`
	IsValid bool     `json:"isValid"`
}

// Product represents a catalog entry
type Product struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

// Ranking is a price-ordered view of a product list
type Ranking struct {
	Sorted  []Product `json:"sorted"`
	Lowest  *Product  `json:"lowest"`
	Highest *Product  `json:"highest"`
}

// ProductDraft holds the raw values of the product entry form
type ProductDraft struct {
	Name     FieldValue `json:"name"`
	Price    FieldValue `json:"price"`
	Stock    FieldValue `json:"stock"`
	Category FieldValue `json:"category"`
}

// Product draft field names
const (
	FieldName     = "name"
	FieldPrice    = "price"
	FieldStock    = "stock"
	FieldCategory = "category"
	FieldQty      = "qty"
)

// ValidationResult reports per-field errors
type ValidationResult struct {
	Errors map[string]string `json:"errors"`
	OK     bool              `json:"ok"`
}

// ProductForm is the state of the product entry form between edits
type ProductForm struct {
	Draft     ProductDraft      `json:"draft"`
	Errors    map[string]string `json:"errors"`
	Submitted bool              `json:"submitted"`
}

// SeriesPoint is one bar of a chart series
type SeriesPoint struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// MonthlySales is one month of recorded sales
type MonthlySales struct {
	Month  string
	Amount decimal.Decimal
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// CartItemsRequest request model
type CartItemsRequest struct {
	Items []LineItem `json:"items"`
}

// AddCartItemRequest request model
type AddCartItemRequest struct {
	Items []LineItem    `json:"items"`
	Draft LineItemDraft `json:"draft"`
}

// AddCartItemResponse response model
type AddCartItemResponse struct {
	Items   []LineItem    `json:"items"`
	Draft   LineItemDraft `json:"draft"`
	Summary CartSummary   `json:"summary"`
}

// RemoveCartItemRequest request model
type RemoveCartItemRequest struct {
	Items []LineItem `json:"items"`
	ID    string     `json:"id" binding:"required"`
}

// CartItemsResponse response model
type CartItemsResponse struct {
	Items   []LineItem  `json:"items"`
	Summary CartSummary `json:"summary"`
}

// EditDraftRequest request model
type EditDraftRequest struct {
	Draft LineItemDraft `json:"draft"`
	Field string        `json:"field" binding:"required"`
	Value FieldValue    `json:"value"`
}

// EnterScoreRequest request model
type EnterScoreRequest struct {
	Scores [3]FieldValue `json:"scores"`
	Slot   *int          `json:"slot" binding:"required"`
	Value  FieldValue    `json:"value"`
}

// CalculateGradeRequest request model
type CalculateGradeRequest struct {
	Scores [3]FieldValue `json:"scores"`
}

// RankProductsRequest request model
type RankProductsRequest struct {
	Products []Product `json:"products"`
}

// EditProductFormRequest request model
type EditProductFormRequest struct {
	Form  ProductForm `json:"form"`
	Field string      `json:"field" binding:"required"`
	Value FieldValue  `json:"value"`
}

// SubmitProductFormRequest request model
type SubmitProductFormRequest struct {
	Form ProductForm `json:"form"`
}
