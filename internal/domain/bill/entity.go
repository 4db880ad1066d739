package bill

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/domain/product"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/domain/shop"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/domain/user"
)

// Status represents the settlement state of a bill.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Bill is one invoice issued to one shop on one date. A bill with no line
// items and a positive received amount is a payment bill: it records a pure
// payment event and carries no stock effect.
type Bill struct {
	ID             int64           `json:"id"`
	BillNumber     string          `json:"bill_number"`
	ShopID         int64           `json:"shop_id"`
	UserID         int64           `json:"user_id"`
	BillDate       time.Time       `json:"bill_date"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	ReceivedAmount decimal.Decimal `json:"received_amount"`
	PendingAmount  decimal.Decimal `json:"pending_amount"`
	Status         Status          `json:"status"`
	Notes          string          `json:"notes"`
	CreatedAt      time.Time       `json:"created_at"`

	Shop  *shop.Shop `json:"shop,omitempty"`
	User  *user.User `json:"user,omitempty"`
	Items []Item     `json:"items,omitempty"`
}

// Item is one product line on a bill. Quantity is signed: positive lines are
// sales, negative lines are returns/wastage. Return lines carry a negative
// amount and no tax, and never restock.
type Item struct {
	ID        int64           `json:"id"`
	BillID    int64           `json:"bill_id"`
	ProductID int64           `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Rate      decimal.Decimal `json:"rate"`
	Amount    decimal.Decimal `json:"amount"`
	SGST      decimal.Decimal `json:"sgst"`
	CGST      decimal.Decimal `json:"cgst"`

	Product *product.Product `json:"product,omitempty"`
}

// IsPaymentBill reports whether the bill records a pure payment event.
func (b *Bill) IsPaymentBill() bool {
	return len(b.Items) == 0 && b.ReceivedAmount.IsPositive()
}

// DeriveStatus is the single status rule used by create, update and
// allocation paths. CANCELLED is sticky: payment-driven recomputes never move
// a cancelled bill back to PENDING or COMPLETED.
func DeriveStatus(pendingAmount decimal.Decimal, current Status) Status {
	if current == StatusCancelled {
		return StatusCancelled
	}
	if pendingAmount.LessThanOrEqual(decimal.Zero) {
		return StatusCompleted
	}
	return StatusPending
}
