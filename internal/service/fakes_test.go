package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/domain/bill"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/domain/product"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/domain/shop"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/domain/user"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/pkg/money"
)

// errInjected simulates a mid-transaction persistence failure.
var errInjected = errors.New("injected store failure")

type priceKey struct {
	shopID    int64
	productID int64
}

// fakeStore is an in-memory stand-in for the backing database. The
// repository fakes below share one store so the unit-of-work fake can
// snapshot and restore all state at once, giving real rollback semantics.
type fakeStore struct {
	mu sync.Mutex

	shops      map[int64]*shop.Shop
	users      map[int64]*user.User
	products   map[int64]*product.Product
	shopPrices map[priceKey]*product.ShopPrice
	stock      map[int64]decimal.Decimal
	bills      map[int64]*bill.Bill

	nextBillID int64
	nextItemID int64

	// failStockWriteFor makes stock writes for that product fail, to
	// exercise mid-transaction aborts.
	failStockWriteFor int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		shops:      map[int64]*shop.Shop{},
		users:      map[int64]*user.User{},
		products:   map[int64]*product.Product{},
		shopPrices: map[priceKey]*product.ShopPrice{},
		stock:      map[int64]decimal.Decimal{},
		bills:      map[int64]*bill.Bill{},
	}
}

func cloneBill(b *bill.Bill) *bill.Bill {
	c := *b
	c.Items = make([]bill.Item, len(b.Items))
	copy(c.Items, b.Items)
	c.Shop = nil
	c.User = nil
	return &c
}

func (s *fakeStore) snapshot() map[int64]*bill.Bill {
	snap := make(map[int64]*bill.Bill, len(s.bills))
	for id, b := range s.bills {
		snap[id] = cloneBill(b)
	}
	return snap
}

func (s *fakeStore) snapshotStock() map[int64]decimal.Decimal {
	snap := make(map[int64]decimal.Decimal, len(s.stock))
	for id, q := range s.stock {
		snap[id] = q
	}
	return snap
}

// fakeTx implements uow.Runner over the fake store: state is snapshotted
// before fn and restored wholesale when fn fails, so a failed unit of work
// leaves nothing behind.
type fakeTx struct {
	s *fakeStore
}

func (t *fakeTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.s.mu.Lock()
	bills := t.s.snapshot()
	stock := t.s.snapshotStock()
	nextBillID := t.s.nextBillID
	nextItemID := t.s.nextItemID
	t.s.mu.Unlock()

	if err := fn(ctx); err != nil {
		t.s.mu.Lock()
		t.s.bills = bills
		t.s.stock = stock
		t.s.nextBillID = nextBillID
		t.s.nextItemID = nextItemID
		t.s.mu.Unlock()
		return err
	}
	return nil
}

// --- bill repository fake ---

type fakeBillRepo struct {
	s *fakeStore
}

func (r *fakeBillRepo) Create(_ context.Context, b *bill.Bill) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextBillID++
	b.ID = r.s.nextBillID
	for i := range b.Items {
		r.s.nextItemID++
		b.Items[i].ID = r.s.nextItemID
		b.Items[i].BillID = b.ID
	}
	r.s.bills[b.ID] = cloneBill(b)
	return nil
}

func (r *fakeBillRepo) FindByID(_ context.Context, id int64) (*bill.Bill, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.bills[id]
	if !ok {
		return nil, bill.ErrNotFound
	}
	c := cloneBill(b)
	if sh, ok := r.s.shops[c.ShopID]; ok {
		shCopy := *sh
		c.Shop = &shCopy
	}
	if u, ok := r.s.users[c.UserID]; ok {
		uCopy := *u
		c.User = &uCopy
	}
	for i := range c.Items {
		if p, ok := r.s.products[c.Items[i].ProductID]; ok {
			pCopy := *p
			c.Items[i].Product = &pCopy
		}
	}
	return c, nil
}

func (r *fakeBillRepo) Update(_ context.Context, b *bill.Bill) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.bills[b.ID]
	if !ok {
		return bill.ErrNotFound
	}
	cur.ReceivedAmount = b.ReceivedAmount
	cur.PendingAmount = b.PendingAmount
	cur.Status = b.Status
	cur.Notes = b.Notes
	return nil
}

func (r *fakeBillRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.bills[id]; !ok {
		return bill.ErrNotFound
	}
	delete(r.s.bills, id)
	return nil
}

func (r *fakeBillRepo) sorted(filter func(*bill.Bill) bool, asc bool) []*bill.Bill {
	var out []*bill.Bill
	for _, b := range r.s.bills {
		if filter == nil || filter(b) {
			out = append(out, cloneBill(b))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if asc {
			return out[i].BillDate.Before(out[j].BillDate)
		}
		return out[i].BillDate.After(out[j].BillDate)
	})
	return out
}

func (r *fakeBillRepo) List(_ context.Context, limit, offset int) ([]*bill.Bill, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	all := r.sorted(nil, false)
	if offset >= len(all) {
		return []*bill.Bill{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *fakeBillRepo) Count(_ context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.bills), nil
}

func (r *fakeBillRepo) ListByShop(_ context.Context, shopID int64) ([]*bill.Bill, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.sorted(func(b *bill.Bill) bool { return b.ShopID == shopID }, false), nil
}

func (r *fakeBillRepo) ListPendingByShop(_ context.Context, shopID int64) ([]*bill.Bill, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.sorted(func(b *bill.Bill) bool {
		return b.ShopID == shopID && b.Status == bill.StatusPending
	}, true), nil
}

func (r *fakeBillRepo) CountByCreatedRange(_ context.Context, start, end time.Time) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, b := range r.s.bills {
		if !b.CreatedAt.Before(start) && b.CreatedAt.Before(end) {
			n++
		}
	}
	return n, nil
}

func (r *fakeBillRepo) PendingTotalByShop(_ context.Context, shopID int64) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	total := decimal.Zero
	for _, b := range r.s.bills {
		if b.ShopID == shopID && b.Status == bill.StatusPending {
			total = money.Round2(total.Add(b.PendingAmount))
		}
	}
	return total, nil
}

// --- shop repository fake ---

type fakeShopRepo struct {
	s *fakeStore
}

func (r *fakeShopRepo) Create(_ context.Context, sh *shop.Shop) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.shops[sh.ID] = sh
	return nil
}

func (r *fakeShopRepo) FindByID(_ context.Context, id int64) (*shop.Shop, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sh, ok := r.s.shops[id]
	if !ok {
		return nil, shop.ErrNotFound
	}
	c := *sh
	return &c, nil
}

func (r *fakeShopRepo) FindAll(_ context.Context) ([]*shop.Shop, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*shop.Shop
	for _, sh := range r.s.shops {
		c := *sh
		out = append(out, &c)
	}
	return out, nil
}

func (r *fakeShopRepo) FindByDeliveryDay(_ context.Context, day shop.DeliveryDay) ([]*shop.Shop, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*shop.Shop
	for _, sh := range r.s.shops {
		if sh.DeliveryDay == day {
			c := *sh
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeShopRepo) Update(_ context.Context, sh *shop.Shop) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.shops[sh.ID]; !ok {
		return shop.ErrNotFound
	}
	r.s.shops[sh.ID] = sh
	return nil
}

func (r *fakeShopRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.shops[id]; !ok {
		return shop.ErrNotFound
	}
	delete(r.s.shops, id)
	return nil
}

func (r *fakeShopRepo) Exists(_ context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.shops[id]
	return ok, nil
}

// --- product repository fake ---

type fakeProductRepo struct {
	s *fakeStore
}

func (r *fakeProductRepo) Create(_ context.Context, p *product.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id int64) (*product.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	c := *p
	return &c, nil
}

func (r *fakeProductRepo) FindAll(_ context.Context) ([]*product.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*product.Product
	for _, p := range r.s.products {
		c := *p
		out = append(out, &c)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *product.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID]; !ok {
		return product.ErrNotFound
	}
	r.s.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return product.ErrNotFound
	}
	delete(r.s.products, id)
	return nil
}

func (r *fakeProductRepo) Exists(_ context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.products[id]
	return ok, nil
}

func (r *fakeProductRepo) PriceFor(_ context.Context, shopID, productID int64) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if sp, ok := r.s.shopPrices[priceKey{shopID, productID}]; ok {
		return sp.Rate, nil
	}
	p, ok := r.s.products[productID]
	if !ok {
		return decimal.Zero, product.ErrNotFound
	}
	return p.DefaultRate, nil
}

func (r *fakeProductRepo) UpsertShopPrice(_ context.Context, sp *product.ShopPrice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.shopPrices[priceKey{sp.ShopID, sp.ProductID}] = sp
	return nil
}

func (r *fakeProductRepo) ListShopPrices(_ context.Context, shopID int64) ([]*product.ShopPrice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*product.ShopPrice
	for key, sp := range r.s.shopPrices {
		if key.shopID == shopID {
			c := *sp
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) GetStock(_ context.Context, productID int64) (*product.Stock, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	qty, ok := r.s.stock[productID]
	if !ok {
		return nil, product.ErrStockNotFound
	}
	return &product.Stock{ProductID: productID, Quantity: qty}, nil
}

func (r *fakeProductRepo) ListStock(_ context.Context) ([]*product.Stock, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*product.Stock
	for id, qty := range r.s.stock {
		out = append(out, &product.Stock{ProductID: id, Quantity: qty})
	}
	return out, nil
}

func (r *fakeProductRepo) SetStockQuantity(_ context.Context, productID int64, qty decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failStockWriteFor == productID {
		return errInjected
	}
	if _, ok := r.s.stock[productID]; !ok {
		return product.ErrStockNotFound
	}
	r.s.stock[productID] = money.ClampNonNegative(qty)
	return nil
}

func (r *fakeProductRepo) AdjustStock(_ context.Context, productID int64, delta decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failStockWriteFor == productID {
		return errInjected
	}
	qty, ok := r.s.stock[productID]
	if !ok {
		return product.ErrStockNotFound
	}
	r.s.stock[productID] = money.ClampNonNegative(qty.Add(delta))
	return nil
}

// --- user repository fake ---

type fakeUserRepo struct {
	s *fakeStore
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int64) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	c := *u
	return &c, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*user.User
	for _, u := range r.s.users {
		c := *u
		out = append(out, &c)
	}
	return out, nil
}

func (r *fakeUserRepo) Exists(_ context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.users[id]
	return ok, nil
}

// --- test fixture ---

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Warn(string, ...interface{})  {}

// fixture is a BillingService wired against the in-memory store, seeded with
// one shop, one user and three stocked products.
type fixture struct {
	svc   *BillingService
	store *fakeStore
}

func newFixture() *fixture {
	store := newFakeStore()

	store.shops[1] = &shop.Shop{ID: 1, Name: "Murugan Stores", DeliveryDay: shop.DayMonday}
	store.users[1] = &user.User{ID: 1, Name: "Arumugam", Role: user.RoleAdmin}
	store.products[1] = &product.Product{ID: 1, Name: "Murukku 100g", DefaultRate: decimal.NewFromInt(50), GSTPercent: decimal.NewFromInt(10)}
	store.products[2] = &product.Product{ID: 2, Name: "Mixture 250g", DefaultRate: decimal.NewFromInt(80), GSTPercent: decimal.NewFromInt(12)}
	store.products[3] = &product.Product{ID: 3, Name: "Ribbon Pakoda 100g", DefaultRate: decimal.NewFromInt(45), GSTPercent: decimal.NewFromInt(5)}
	store.stock[1] = decimal.NewFromInt(100)
	store.stock[2] = decimal.NewFromInt(40)
	store.stock[3] = decimal.NewFromInt(10)

	svc := NewBillingService(
		&fakeBillRepo{s: store},
		&fakeShopRepo{s: store},
		&fakeProductRepo{s: store},
		&fakeUserRepo{s: store},
		&fakeTx{s: store},
		noopLogger{},
	)

	return &fixture{svc: svc, store: store}
}

func (f *fixture) at(t time.Time) *fixture {
	f.svc.now = func() time.Time { return t }
	return f
}

func (f *fixture) stockOf(productID int64) decimal.Decimal {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return f.store.stock[productID]
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
