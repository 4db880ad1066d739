package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/domain/bill"
)

// seedPendingBill inserts a PENDING bill directly into the store.
func seedPendingBill(f *fixture, shopID int64, billDate time.Time, pending string) *bill.Bill {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	f.store.nextBillID++
	b := &bill.Bill{
		ID:            f.store.nextBillID,
		BillNumber:    "BILL" + billDate.Format("20060102") + "0001",
		ShopID:        shopID,
		UserID:        1,
		BillDate:      billDate,
		TotalAmount:   dec(pending),
		PendingAmount: dec(pending),
		Status:        bill.StatusPending,
		CreatedAt:     billDate,
	}
	f.store.bills[b.ID] = b
	return b
}

func TestAllocateOldestFirst(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	b1 := seedPendingBill(f, 1, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "100")
	b2 := seedPendingBill(f, 1, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), "50")

	result, err := f.svc.allocateToPending(ctx, 1, dec("120"))
	require.NoError(t, err)

	require.Len(t, result.Applied, 2)
	assert.Equal(t, b1.ID, result.Applied[0].BillID)
	assert.True(t, result.Applied[0].AppliedAmount.Equal(dec("100")))
	assert.Equal(t, bill.StatusCompleted, result.Applied[0].NewStatus)
	assert.Equal(t, b2.ID, result.Applied[1].BillID)
	assert.True(t, result.Applied[1].AppliedAmount.Equal(dec("20")))
	assert.Equal(t, bill.StatusPending, result.Applied[1].NewStatus)
	assert.True(t, result.Remainder.IsZero())

	got1, err := f.svc.GetBill(ctx, b1.ID)
	require.NoError(t, err)
	assert.Equal(t, bill.StatusCompleted, got1.Status)
	assert.True(t, got1.PendingAmount.IsZero())

	got2, err := f.svc.GetBill(ctx, b2.ID)
	require.NoError(t, err)
	assert.Equal(t, bill.StatusPending, got2.Status)
	assert.True(t, got2.PendingAmount.Equal(dec("30")))
}

func TestAllocateOverpaymentSettlesEverythingAndDropsExcess(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	b1 := seedPendingBill(f, 1, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "100")
	b2 := seedPendingBill(f, 1, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), "50")

	result, err := f.svc.allocateToPending(ctx, 1, dec("200"))
	require.NoError(t, err)

	assert.True(t, result.Remainder.Equal(dec("50")))
	for _, id := range []int64{b1.ID, b2.ID} {
		got, err := f.svc.GetBill(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, bill.StatusCompleted, got.Status)
		assert.True(t, got.PendingAmount.IsZero())
	}
}

func TestAllocateSkipsCancelledAndCompletedBills(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	cancelled := seedPendingBill(f, 1, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "70")
	f.store.bills[cancelled.ID].Status = bill.StatusCancelled
	open := seedPendingBill(f, 1, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), "40")

	result, err := f.svc.allocateToPending(ctx, 1, dec("60"))
	require.NoError(t, err)

	require.Len(t, result.Applied, 1)
	assert.Equal(t, open.ID, result.Applied[0].BillID)
	assert.True(t, result.Remainder.Equal(dec("20")))

	got, err := f.svc.GetBill(ctx, cancelled.ID)
	require.NoError(t, err)
	assert.Equal(t, bill.StatusCancelled, got.Status)
	assert.True(t, got.PendingAmount.Equal(dec("70")))
}

func TestAllocateFractionalPaymentRounds(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	b1 := seedPendingBill(f, 1, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), "33.33")
	b2 := seedPendingBill(f, 1, time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC), "66.67")

	result, err := f.svc.allocateToPending(ctx, 1, dec("50.5"))
	require.NoError(t, err)

	require.Len(t, result.Applied, 2)
	assert.True(t, result.Applied[0].AppliedAmount.Equal(dec("33.33")))
	assert.True(t, result.Applied[1].AppliedAmount.Equal(dec("17.17")))
	assert.True(t, result.Remainder.IsZero())

	got1, _ := f.svc.GetBill(ctx, b1.ID)
	got2, _ := f.svc.GetBill(ctx, b2.ID)
	assert.Equal(t, bill.StatusCompleted, got1.Status)
	assert.Equal(t, bill.StatusPending, got2.Status)
	assert.True(t, got2.PendingAmount.Equal(dec("49.5")))
}

func TestAllocateWithNoPendingBills(t *testing.T) {
	f := newFixture()

	result, err := f.svc.allocateToPending(context.Background(), 1, dec("75"))
	require.NoError(t, err)

	assert.Empty(t, result.Applied)
	assert.True(t, result.Remainder.Equal(dec("75")))
}
