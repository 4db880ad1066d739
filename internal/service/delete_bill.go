package service

import (
	"context"
	"fmt"
)

// DeleteBill removes a bill and its line items after adding each item's
// quantity back onto the product's stock. The restore is unconditional —
// return lines subtract back out what was never deducted, mirroring the
// deduction symmetry of creation — and the bill and its items go away in the
// same transaction as the stock writes.
func (s *BillingService) DeleteBill(ctx context.Context, id int64) error {
	b, err := s.bills.FindByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		for _, item := range b.Items {
			if err := s.products.AdjustStock(ctx, item.ProductID, item.Quantity); err != nil {
				return fmt.Errorf("restore stock for product %d: %w", item.ProductID, err)
			}
		}
		if err := s.bills.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete bill %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		s.log.Error("bill deletion failed", "bill_id", id, "error", err.Error())
		return err
	}

	s.log.Info("bill deleted", "bill_id", id, "bill_number", b.BillNumber)
	return nil
}
