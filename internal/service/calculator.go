package service

import (
	"github.com/shopspring/decimal"

	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/domain/bill"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/pkg/money"
)

// ItemInput is one raw line of a bill request: a product, a signed quantity
// and the unit rate agreed for this shop. SGST/CGST are supplied by the
// caller (the client derives them from the product's GST percent before
// submission) and default to zero when omitted.
type ItemInput struct {
	ProductID int64
	Quantity  decimal.Decimal
	Rate      decimal.Decimal
	SGST      decimal.Decimal
	CGST      decimal.Decimal
}

// priceItems turns raw request lines into priced, tax-annotated line items
// and the bill total. Each line's amount keeps the sign of its quantity, so
// return lines subtract from the total on their own. Tax is carried only on
// sale lines; return lines are forced to zero tax regardless of input.
//
// Every amount is rounded to 2 decimals as it is combined so repeated
// updates of the stored totals cannot drift.
func priceItems(items []ItemInput) ([]bill.Item, decimal.Decimal) {
	total := decimal.Zero
	priced := make([]bill.Item, 0, len(items))

	for _, in := range items {
		amount := money.Round2(in.Quantity.Mul(in.Rate))

		sgst := money.Round2(in.SGST)
		cgst := money.Round2(in.CGST)
		if !in.Quantity.IsPositive() {
			sgst = decimal.Zero
			cgst = decimal.Zero
		}

		total = money.Round2(total.Add(amount).Add(sgst).Add(cgst))

		priced = append(priced, bill.Item{
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			Rate:      in.Rate,
			Amount:    amount,
			SGST:      sgst,
			CGST:      cgst,
		})
	}

	return priced, total
}
