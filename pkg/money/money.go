package money

import "github.com/shopspring/decimal"

// Zero is the shared zero amount.
var Zero = decimal.Zero

// Round2 rounds a monetary amount to 2 decimal places, half away from zero.
// Every arithmetic combination of amounts in the system passes through this
// before being stored or compared, so repeated updates cannot accumulate
// drift.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Min returns the smaller of a and b.
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// ClampNonNegative floors d at zero.
func ClampNonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Half splits d evenly in two, rounded to 2 decimal places. Used to split a
// GST amount into its SGST and CGST components.
func Half(d decimal.Decimal) decimal.Decimal {
	return Round2(d.Div(decimal.NewFromInt(2)))
}
