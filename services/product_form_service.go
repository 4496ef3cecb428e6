package services

import (
	"fmt"

	"github.com/fadhlanhapp/tokocalc-backend/models"
	"github.com/fadhlanhapp/tokocalc-backend/utils"
)

// ProductFormService validates product entry drafts
type ProductFormService struct {
	categories []string
}

// NewProductFormService creates a new product form service
func NewProductFormService(categories []string) *ProductFormService {
	return &ProductFormService{categories: append([]string(nil), categories...)}
}

// Categories returns the selectable category labels
func (s *ProductFormService) Categories() []string {
	return append([]string(nil), s.categories...)
}

// Validate checks every field of the draft and reports all failures at once
func (s *ProductFormService) Validate(draft models.ProductDraft) models.ValidationResult {
	errs := make(map[string]string)

	if err := utils.ValidateRequired(draft.Name.String(), models.FieldName); err != nil {
		errs[models.FieldName] = utils.ErrProductNameRequired
	}
	if err := s.validatePrice(draft.Price); err != nil {
		errs[models.FieldPrice] = utils.ErrProductPriceInvalid
	}
	if err := s.validateStock(draft.Stock); err != nil {
		errs[models.FieldStock] = utils.ErrProductStockInvalid
	}
	if err := utils.ValidateOneOf(draft.Category.String(), s.categories, models.FieldCategory); err != nil {
		errs[models.FieldCategory] = utils.ErrProductCategory
	}

	return models.ValidationResult{
		Errors: errs,
		OK:     len(errs) == 0,
	}
}

func (s *ProductFormService) validatePrice(raw models.FieldValue) error {
	price, err := utils.ParseDecimal(raw.String())
	if err != nil {
		return err
	}
	return utils.ValidatePositive(price, models.FieldPrice)
}

func (s *ProductFormService) validateStock(raw models.FieldValue) error {
	stock, err := utils.ParseDecimal(raw.String())
	if err != nil {
		return err
	}
	if err := utils.ValidateWholeNumber(stock, models.FieldStock); err != nil {
		return err
	}
	return utils.ValidateNonNegative(stock, models.FieldStock)
}

// EditField sets one draft field, clears that field's error and clears the
// submitted flag
func (s *ProductFormService) EditField(form models.ProductForm, field string, value models.FieldValue) (models.ProductForm, error) {
	switch field {
	case models.FieldName:
		form.Draft.Name = value
	case models.FieldPrice:
		form.Draft.Price = value
	case models.FieldStock:
		form.Draft.Stock = value
	case models.FieldCategory:
		form.Draft.Category = value
	default:
		return form, utils.NewFieldError(field, unknownFieldMessage(field))
	}

	errs := make(map[string]string, len(form.Errors))
	for k, v := range form.Errors {
		if k != field {
			errs[k] = v
		}
	}
	form.Errors = errs
	form.Submitted = false

	return form, nil
}

// Submit validates the draft. A valid draft is committed and the form resets;
// an invalid one is kept so it can be corrected.
func (s *ProductFormService) Submit(form models.ProductForm) models.ProductForm {
	result := s.Validate(form.Draft)
	if !result.OK {
		return models.ProductForm{
			Draft:     form.Draft,
			Errors:    result.Errors,
			Submitted: false,
		}
	}

	return models.ProductForm{
		Draft:     models.ProductDraft{},
		Errors:    map[string]string{},
		Submitted: true,
	}
}

func unknownFieldMessage(field string) string {
	return fmt.Sprintf(utils.ErrUnknownField, field)
}
