package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRound2(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"10.005", "10.01"},
		{"10.004", "10"},
		{"99.999", "100"},
		{"0.001", "0"},
		{"123.45", "123.45"},
		{"-2.675", "-2.68"},
	}
	for _, tc := range testCases {
		got := Round2(d(tc.in))
		assert.True(t, got.Equal(d(tc.want)), "Round2(%s) = %s, want %s", tc.in, got, tc.want)
	}
}

func TestRound2Idempotent(t *testing.T) {
	for _, raw := range []string{"10.005", "3.14159", "-0.005", "250"} {
		once := Round2(d(raw))
		assert.True(t, once.Equal(Round2(once)))
	}
}

func TestMin(t *testing.T) {
	assert.True(t, Min(d("3"), d("7")).Equal(d("3")))
	assert.True(t, Min(d("7"), d("3")).Equal(d("3")))
	assert.True(t, Min(d("5"), d("5")).Equal(d("5")))
}

func TestClampNonNegative(t *testing.T) {
	assert.True(t, ClampNonNegative(d("-0.01")).IsZero())
	assert.True(t, ClampNonNegative(d("0")).IsZero())
	assert.True(t, ClampNonNegative(d("4.2")).Equal(d("4.2")))
}

func TestHalf(t *testing.T) {
	assert.True(t, Half(d("10")).Equal(d("5")))
	assert.True(t, Half(d("0.05")).Equal(d("0.03")), "half of 0.05 rounds to 0.03")
	assert.True(t, Half(d("9.99")).Equal(d("5")))
}
