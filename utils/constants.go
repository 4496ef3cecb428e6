package utils

import "math"

const (
	// HTTP status messages
	ErrInvalidRequest = "Invalid request"
	ErrFailedToExport = "Failed to export workbook"

	// Cart add-item messages
	ErrCartFieldsRequired    = "All fields are required"
	ErrCartValuesNotPositive = "Quantity and price must be greater than zero"
	ErrCartQtyNotWhole       = "Quantity must be a whole number"
	ErrCartQtyTooLarge       = "Quantity cannot exceed %d"

	// Largest quantity a single line item may carry
	MaxLineQty = math.MaxInt32

	// Product form messages
	ErrProductNameRequired = "Product name is required"
	ErrProductPriceInvalid = "Price is required and must be a positive number"
	ErrProductStockInvalid = "Stock is required and must be a non-negative whole number"
	ErrProductCategory     = "Category must be selected"

	// Score entry messages
	ErrScoreNotNumber = "Score must be a number"
	ErrScoreSlotRange = "Score slot does not exist"
	ErrScoreAboveMax  = "Maximum score is %s"
	ErrScoreBelowMin  = "Minimum score is %s"

	ErrUnknownField = "Unknown field %q"

	// Precision for reported averages
	MoneyPrecision = 100.0

	// Workbook content type
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)
