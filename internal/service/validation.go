package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// quantity bounds accepted on a bill line item.
var (
	maxItemQuantity = decimal.NewFromInt(999999)
	minItemQuantity = decimal.NewFromInt(-999999)
)

// FieldError describes one failing input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every failing field of a request so callers see
// the full list in one round trip. It is raised before any persistence.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// validateCreateBill checks a bill request against the catalog and shop
// records before anything is written. Product rates and tax fields are
// range-checked only: the supplied sgst/cgst values are trusted as-is and
// never re-derived from the product's GST percent at save time.
func (s *BillingService) validateCreateBill(ctx context.Context, input CreateBillInput) error {
	verr := &ValidationError{}

	if input.ShopID <= 0 {
		verr.add("shop_id", "must be a positive id")
	} else if ok, err := s.shops.Exists(ctx, input.ShopID); err != nil {
		return err
	} else if !ok {
		verr.add("shop_id", fmt.Sprintf("shop %d does not exist", input.ShopID))
	}

	if input.UserID <= 0 {
		verr.add("user_id", "must be a positive id")
	} else if ok, err := s.users.Exists(ctx, input.UserID); err != nil {
		return err
	} else if !ok {
		verr.add("user_id", fmt.Sprintf("user %d does not exist", input.UserID))
	}

	if input.ReceivedAmount.IsNegative() {
		verr.add("received_amount", "must not be negative")
	}

	for i, item := range input.Items {
		field := func(name string) string {
			return fmt.Sprintf("items[%d].%s", i, name)
		}
		if item.ProductID <= 0 {
			verr.add(field("product_id"), "must be a positive id")
		} else if ok, err := s.products.Exists(ctx, item.ProductID); err != nil {
			return err
		} else if !ok {
			verr.add(field("product_id"), fmt.Sprintf("product %d does not exist", item.ProductID))
		}
		if item.Quantity.GreaterThan(maxItemQuantity) || item.Quantity.LessThan(minItemQuantity) {
			verr.add(field("quantity"), "must be between -999999 and 999999")
		}
		if item.Rate.IsNegative() {
			verr.add(field("rate"), "must not be negative")
		}
		if item.SGST.IsNegative() {
			verr.add(field("sgst"), "must not be negative")
		}
		if item.CGST.IsNegative() {
			verr.add(field("cgst"), "must not be negative")
		}
	}

	return verr.orNil()
}
