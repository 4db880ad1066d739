package bill

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	testCases := []struct {
		name    string
		pending string
		current Status
		want    Status
	}{
		{"positive_pending_stays_pending", "10", StatusPending, StatusPending},
		{"zero_pending_completes", "0", StatusPending, StatusCompleted},
		{"negative_pending_completes", "-5", StatusPending, StatusCompleted},
		{"completed_reopens_when_debt_returns", "25", StatusCompleted, StatusPending},
		{"cancelled_is_sticky_with_debt", "10", StatusCancelled, StatusCancelled},
		{"cancelled_is_sticky_when_settled", "0", StatusCancelled, StatusCancelled},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveStatus(decimal.RequireFromString(tc.pending), tc.current)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIsPaymentBill(t *testing.T) {
	payment := &Bill{ReceivedAmount: decimal.NewFromInt(100)}
	assert.True(t, payment.IsPaymentBill())

	withItems := &Bill{
		ReceivedAmount: decimal.NewFromInt(100),
		Items:          []Item{{ProductID: 1}},
	}
	assert.False(t, withItems.IsPaymentBill())

	zeroPayment := &Bill{}
	assert.False(t, zeroPayment.IsPaymentBill())
}
