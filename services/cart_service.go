package services

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fadhlanhapp/tokocalc-backend/config"
	"github.com/fadhlanhapp/tokocalc-backend/models"
	"github.com/fadhlanhapp/tokocalc-backend/utils"
)

// CartService handles shopping cart totals and line item changes
type CartService struct {
	rule config.DiscountRule
}

// NewCartService creates a new cart service
func NewCartService(rule config.DiscountRule) *CartService {
	return &CartService{rule: rule}
}

// Compute derives subtotal, discount and final total from the full item list
func (s *CartService) Compute(items []models.LineItem) models.CartSummary {
	subtotal := s.calculateSubtotal(items)
	discount := s.calculateDiscount(subtotal)

	return models.CartSummary{
		Subtotal:   subtotal,
		Discount:   discount,
		FinalTotal: subtotal.Sub(discount),
	}
}

// calculateSubtotal calculates the sum of all items
func (s *CartService) calculateSubtotal(items []models.LineItem) decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Qty))))
	}
	return subtotal
}

// calculateDiscount applies the rate only strictly above the threshold
func (s *CartService) calculateDiscount(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(s.rule.Threshold) {
		return subtotal.Mul(s.rule.Rate)
	}
	return decimal.Zero
}

// AddItem validates the draft and returns a new item list with the item appended,
// together with a reset draft. On error the inputs are returned untouched.
func (s *CartService) AddItem(items []models.LineItem, draft models.LineItemDraft) ([]models.LineItem, models.LineItemDraft, error) {
	item, err := s.validateDraft(draft)
	if err != nil {
		return items, draft, err
	}

	updated := make([]models.LineItem, 0, len(items)+1)
	updated = append(updated, items...)
	updated = append(updated, item)

	return updated, models.EmptyLineItemDraft(), nil
}

// validateDraft converts a draft into a line item
func (s *CartService) validateDraft(draft models.LineItemDraft) (models.LineItem, error) {
	if draft.Name.IsEmpty() || draft.Qty.IsEmpty() || draft.Price.IsEmpty() {
		return models.LineItem{}, utils.NewValidationError(utils.ErrCartFieldsRequired)
	}

	qty, qtyErr := utils.ParseDecimal(draft.Qty.String())
	price, priceErr := utils.ParseDecimal(draft.Price.String())
	if qtyErr != nil || priceErr != nil {
		return models.LineItem{}, utils.NewValidationError(utils.ErrCartValuesNotPositive)
	}
	if utils.ValidatePositive(qty, models.FieldQty) != nil || utils.ValidatePositive(price, models.FieldPrice) != nil {
		return models.LineItem{}, utils.NewValidationError(utils.ErrCartValuesNotPositive)
	}
	if err := utils.ValidateWholeNumber(qty, models.FieldQty); err != nil {
		return models.LineItem{}, utils.NewFieldError(models.FieldQty, utils.ErrCartQtyNotWhole)
	}
	if qty.GreaterThan(decimal.NewFromInt(utils.MaxLineQty)) {
		return models.LineItem{}, utils.NewFieldError(models.FieldQty, fmt.Sprintf(utils.ErrCartQtyTooLarge, utils.MaxLineQty))
	}

	return models.LineItem{
		ID:    utils.GenerateID(),
		Name:  utils.NormalizeName(draft.Name.String()),
		Qty:   int(qty.IntPart()),
		Price: price,
	}, nil
}

// RemoveItem returns a new item list without the item carrying id.
// An unknown id yields an equal copy of items.
func (s *CartService) RemoveItem(items []models.LineItem, id string) []models.LineItem {
	remaining := make([]models.LineItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			remaining = append(remaining, item)
		}
	}
	return remaining
}

// EditDraft sets one field of the add-item draft. Negative quantities and
// prices are clamped to zero.
func (s *CartService) EditDraft(draft models.LineItemDraft, field string, value models.FieldValue) (models.LineItemDraft, error) {
	switch field {
	case models.FieldName:
		draft.Name = value
	case models.FieldQty:
		draft.Qty = clampNegative(value)
	case models.FieldPrice:
		draft.Price = clampNegative(value)
	default:
		return draft, utils.NewFieldError(field, unknownFieldMessage(field))
	}
	return draft, nil
}

func clampNegative(value models.FieldValue) models.FieldValue {
	if d, err := utils.ParseDecimal(value.String()); err == nil && d.IsNegative() {
		return "0"
	}
	return models.FieldValue(strings.TrimSpace(value.String()))
}
