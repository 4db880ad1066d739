package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/domain/bill"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/domain/product"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/domain/shop"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/domain/uow"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/domain/user"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/pkg/logger"
)

// BillingService creates, updates and deletes bills, and allocates incoming
// payments across a shop's outstanding bills. All multi-step writes run
// inside one unit of work supplied by the uow.Runner.
type BillingService struct {
	bills    bill.Repository
	shops    shop.Repository
	products product.Repository
	users    user.Repository
	tx       uow.Runner
	log      logger.Logger

	// now is indirected so date-scoped bill numbering is testable.
	now func() time.Time
}

// NewBillingService wires a BillingService with its collaborators.
func NewBillingService(
	bills bill.Repository,
	shops shop.Repository,
	products product.Repository,
	users user.Repository,
	tx uow.Runner,
	log logger.Logger,
) *BillingService {
	return &BillingService{
		bills:    bills,
		shops:    shops,
		products: products,
		users:    users,
		tx:       tx,
		log:      log,
		now:      time.Now,
	}
}

// GetBill returns a bill with its shop, user and line items attached.
func (s *BillingService) GetBill(ctx context.Context, id int64) (*bill.Bill, error) {
	return s.bills.FindByID(ctx, id)
}

// ListBills returns bills ordered by bill date descending, with the total
// count for pagination.
func (s *BillingService) ListBills(ctx context.Context, limit, offset int) ([]*bill.Bill, int, error) {
	bills, err := s.bills.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.bills.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return bills, total, nil
}

// ListBillsByShop returns a shop's bills, newest first.
func (s *BillingService) ListBillsByShop(ctx context.Context, shopID int64) ([]*bill.Bill, error) {
	if _, err := s.shops.FindByID(ctx, shopID); err != nil {
		return nil, err
	}
	return s.bills.ListByShop(ctx, shopID)
}

// ListPendingBills returns a shop's PENDING bills oldest first: the queue a
// payment would be allocated against.
func (s *BillingService) ListPendingBills(ctx context.Context, shopID int64) ([]*bill.Bill, error) {
	if _, err := s.shops.FindByID(ctx, shopID); err != nil {
		return nil, err
	}
	return s.bills.ListPendingByShop(ctx, shopID)
}

// ShopOutstanding returns the sum of a shop's pending amounts.
func (s *BillingService) ShopOutstanding(ctx context.Context, shopID int64) (decimal.Decimal, error) {
	if _, err := s.shops.FindByID(ctx, shopID); err != nil {
		return decimal.Zero, err
	}
	return s.bills.PendingTotalByShop(ctx, shopID)
}
