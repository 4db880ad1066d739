package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/domain/bill"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/pkg/money"
)

// CreateBillInput is a bill request as submitted by the presentation layer.
// A request with no items and a positive received amount records a pure
// payment; ApplyToPending controls whether that payment is immediately swept
// into the shop's outstanding bills.
type CreateBillInput struct {
	ShopID         int64
	UserID         int64
	BillDate       *time.Time
	ReceivedAmount decimal.Decimal
	Notes          string
	ApplyToPending bool
	Items          []ItemInput
}

// CreateBill validates the request, prices its line items, and persists the
// bill, its items, its stock effects and any payment sweep as one atomic
// unit. Any failure mid-way leaves no bill row, no items, no stock change
// and no partial allocation behind.
func (s *BillingService) CreateBill(ctx context.Context, input CreateBillInput) (*bill.Bill, error) {
	if err := s.validateCreateBill(ctx, input); err != nil {
		return nil, err
	}

	now := s.now()

	number, err := s.nextBillNumber(ctx, now)
	if err != nil {
		return nil, err
	}

	items, total := priceItems(input.Items)

	billDate := now
	if input.BillDate != nil {
		billDate = *input.BillDate
	}

	received := money.Round2(input.ReceivedAmount)
	pending := money.Round2(total.Sub(received))

	b := &bill.Bill{
		BillNumber:     number,
		ShopID:         input.ShopID,
		UserID:         input.UserID,
		BillDate:       billDate,
		TotalAmount:    total,
		ReceivedAmount: received,
		PendingAmount:  money.ClampNonNegative(pending),
		Status:         bill.DeriveStatus(pending, bill.StatusPending),
		Notes:          input.Notes,
		CreatedAt:      now,
		Items:          items,
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.bills.Create(ctx, b); err != nil {
			return fmt.Errorf("create bill %s: %w", number, err)
		}

		if b.IsPaymentBill() {
			if !input.ApplyToPending {
				// The payment stays recorded on this bill only.
				return nil
			}
			result, err := s.allocateToPending(ctx, input.ShopID, received)
			if err != nil {
				return err
			}
			s.log.Info("payment allocated",
				"bill_number", number,
				"shop_id", input.ShopID,
				"bills_settled", len(result.Applied),
				"remainder", result.Remainder.String(),
			)
			return nil
		}

		return s.deductStock(ctx, items)
	})
	if err != nil {
		s.log.Error("bill creation failed",
			"bill_number", number,
			"shop_id", input.ShopID,
			"error", err.Error(),
		)
		return nil, err
	}

	s.log.Info("bill created",
		"bill_number", number,
		"shop_id", input.ShopID,
		"total", total.String(),
		"status", string(b.Status),
	)

	return s.bills.FindByID(ctx, b.ID)
}

// deductStock decrements stock for every sale line, floored at zero. Return
// lines (quantity <= 0) are wastage and intentionally leave stock untouched.
// Runs inside the bill's transaction so the read-modify-write on the stock
// row cannot interleave with a concurrent bill for the same product.
func (s *BillingService) deductStock(ctx context.Context, items []bill.Item) error {
	for _, item := range items {
		if !item.Quantity.IsPositive() {
			continue
		}
		st, err := s.products.GetStock(ctx, item.ProductID)
		if err != nil {
			return fmt.Errorf("read stock for product %d: %w", item.ProductID, err)
		}
		newQty := money.ClampNonNegative(st.Quantity.Sub(item.Quantity))
		if err := s.products.SetStockQuantity(ctx, item.ProductID, newQty); err != nil {
			return fmt.Errorf("deduct stock for product %d: %w", item.ProductID, err)
		}
	}
	return nil
}
