package service

import (
	"context"
	"fmt"
	"time"
)

// nextBillNumber derives the human-readable identifier for a bill created at
// ref: "BILL" + YYYYMMDD + a 4-digit sequence scoped to that calendar day.
// The sequence is the count of bills already created that day plus one.
//
// The count-then-format scheme is not globally unique under concurrent
// same-day creation; that matches the deployed behavior and is acceptable at
// this business's concurrency level. The bills table does not carry a unique
// index on bill_number for the same reason.
func (s *BillingService) nextBillNumber(ctx context.Context, ref time.Time) (string, error) {
	start := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	end := start.AddDate(0, 0, 1)

	n, err := s.bills.CountByCreatedRange(ctx, start, end)
	if err != nil {
		return "", fmt.Errorf("count bills for %s: %w", ref.Format("2006-01-02"), err)
	}

	return fmt.Sprintf("BILL%s%04d", ref.Format("20060102"), n+1), nil
}
