package bill

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a bill does not exist.
var ErrNotFound = errors.New("bill not found")

// Repository defines the persistence contract for bills and their line
// items. Write methods participate in the transaction carried by ctx when one
// is open (see uow.Runner).
type Repository interface {
	// Create persists a bill together with its line items.
	Create(ctx context.Context, b *Bill) error

	// FindByID returns a bill with its shop, issuing user and line items
	// (with product detail) attached.
	FindByID(ctx context.Context, id int64) (*Bill, error)

	// Update persists the bill's received/pending/status/notes fields. Line
	// items are immutable after creation and are not touched.
	Update(ctx context.Context, b *Bill) error

	// Delete removes a bill and its line items.
	Delete(ctx context.Context, id int64) error

	// List returns bills ordered by bill date descending.
	List(ctx context.Context, limit, offset int) ([]*Bill, error)

	// Count returns the total number of bills.
	Count(ctx context.Context) (int, error)

	// ListByShop returns a shop's bills ordered by bill date descending.
	ListByShop(ctx context.Context, shopID int64) ([]*Bill, error)

	// ListPendingByShop returns a shop's PENDING bills ordered by bill date
	// ascending: the payment-allocation queue, oldest debt first.
	ListPendingByShop(ctx context.Context, shopID int64) ([]*Bill, error)

	// CountByCreatedRange counts bills with created_at in [start, end).
	// Used for date-scoped bill numbering.
	CountByCreatedRange(ctx context.Context, start, end time.Time) (int, error)

	// PendingTotalByShop sums the pending amounts of a shop's PENDING bills.
	PendingTotalByShop(ctx context.Context, shopID int64) (decimal.Decimal, error)
}
