package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/domain/bill"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/pkg/money"
)

// UpdateBillInput carries the directly editable fields of a bill. Nil
// pointers leave the corresponding field untouched.
type UpdateBillInput struct {
	ReceivedAmount *decimal.Decimal
	Status         *bill.Status
	Notes          *string
}

// UpdateBill edits a bill's received amount, notes or status. A new received
// amount recomputes the pending amount against the bill's existing total and
// re-derives the status; a cancelled bill keeps its status through such
// recomputes. An explicitly supplied status is applied last and wins, which
// is how a bill is cancelled (or un-cancelled) in the first place. Line
// items and stock are never touched here.
func (s *BillingService) UpdateBill(ctx context.Context, id int64, input UpdateBillInput) (*bill.Bill, error) {
	verr := &ValidationError{}
	if input.ReceivedAmount != nil && input.ReceivedAmount.IsNegative() {
		verr.add("received_amount", "must not be negative")
	}
	if input.Status != nil && !input.Status.Valid() {
		verr.add("status", "must be one of PENDING, COMPLETED, CANCELLED")
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	b, err := s.bills.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Notes != nil {
		b.Notes = *input.Notes
	}

	if input.ReceivedAmount != nil {
		b.ReceivedAmount = money.Round2(*input.ReceivedAmount)
		pending := money.Round2(b.TotalAmount.Sub(b.ReceivedAmount))
		b.Status = bill.DeriveStatus(pending, b.Status)
		b.PendingAmount = money.ClampNonNegative(pending)
	}

	if input.Status != nil {
		b.Status = *input.Status
	}

	if err := s.bills.Update(ctx, b); err != nil {
		return nil, err
	}

	s.log.Info("bill updated",
		"bill_id", b.ID,
		"bill_number", b.BillNumber,
		"status", string(b.Status),
	)

	return b, nil
}
