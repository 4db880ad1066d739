package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/domain/bill"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/pkg/money"
)

// AppliedBill records how much of a payment landed on one bill.
type AppliedBill struct {
	BillID        int64           `json:"bill_id"`
	BillNumber    string          `json:"bill_number"`
	AppliedAmount decimal.Decimal `json:"applied_amount"`
	NewStatus     bill.Status     `json:"new_status"`
}

// AllocationResult is the outcome of sweeping a payment across a shop's
// outstanding bills.
type AllocationResult struct {
	Applied   []AppliedBill   `json:"applied"`
	Remainder decimal.Decimal `json:"remainder"`
}

// allocateToPending distributes amount across the shop's PENDING bills,
// oldest bill date first, settling each in full before moving on. It must be
// called inside the unit of work of whatever triggered it so a partial sweep
// is never visible.
//
// Any remainder beyond the shop's total pending debt is returned but not
// persisted anywhere: the payment bill that triggered the sweep already
// records the full amount the customer handed over.
func (s *BillingService) allocateToPending(ctx context.Context, shopID int64, amount decimal.Decimal) (*AllocationResult, error) {
	pending, err := s.bills.ListPendingByShop(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("list pending bills for shop %d: %w", shopID, err)
	}

	result := &AllocationResult{Applied: []AppliedBill{}}
	remaining := amount

	for _, b := range pending {
		if !remaining.IsPositive() {
			break
		}

		applied := money.Min(remaining, b.PendingAmount)
		b.ReceivedAmount = money.Round2(b.ReceivedAmount.Add(applied))
		b.PendingAmount = money.ClampNonNegative(money.Round2(b.PendingAmount.Sub(applied)))
		b.Status = bill.DeriveStatus(b.PendingAmount, b.Status)

		if err := s.bills.Update(ctx, b); err != nil {
			return nil, fmt.Errorf("apply payment to bill %d: %w", b.ID, err)
		}

		remaining = money.Round2(remaining.Sub(applied))
		result.Applied = append(result.Applied, AppliedBill{
			BillID:        b.ID,
			BillNumber:    b.BillNumber,
			AppliedAmount: applied,
			NewStatus:     b.Status,
		})
	}

	result.Remainder = remaining
	return result, nil
}
