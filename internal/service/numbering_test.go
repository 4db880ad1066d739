package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillNumberIsDateScopedAndSequential(t *testing.T) {
	day := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	f := newFixture().at(day)
	ctx := context.Background()

	sale := CreateBillInput{
		ShopID: 1,
		UserID: 1,
		Items:  []ItemInput{{ProductID: 1, Quantity: dec("1"), Rate: dec("50")}},
	}

	first, err := f.svc.CreateBill(ctx, sale)
	require.NoError(t, err)
	second, err := f.svc.CreateBill(ctx, sale)
	require.NoError(t, err)
	third, err := f.svc.CreateBill(ctx, sale)
	require.NoError(t, err)

	assert.Equal(t, "BILL202406150001", first.BillNumber)
	assert.Equal(t, "BILL202406150002", second.BillNumber)
	assert.Equal(t, "BILL202406150003", third.BillNumber)
}

func TestBillNumberSequenceResetsNextDay(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	sale := CreateBillInput{
		ShopID: 1,
		UserID: 1,
		Items:  []ItemInput{{ProductID: 1, Quantity: dec("1"), Rate: dec("50")}},
	}

	f.at(time.Date(2024, 6, 15, 23, 50, 0, 0, time.UTC))
	_, err := f.svc.CreateBill(ctx, sale)
	require.NoError(t, err)

	f.at(time.Date(2024, 6, 16, 0, 5, 0, 0, time.UTC))
	nextDay, err := f.svc.CreateBill(ctx, sale)
	require.NoError(t, err)

	assert.Equal(t, "BILL202406160001", nextDay.BillNumber)
}
