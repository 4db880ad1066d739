package product

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound is returned when a product does not exist.
	ErrNotFound = errors.New("product not found")
	// ErrStockNotFound is returned when a product has no stock row.
	ErrStockNotFound = errors.New("stock not found for product")
)

// Repository is the catalog store contract: products, per-shop price
// overrides and current stock quantities. Stock methods are
// atomic-within-transaction when the ctx carries one (see uow.Runner);
// concurrent bill creations touching the same product serialize on the
// stock row.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	FindByID(ctx context.Context, id int64) (*Product, error)
	FindAll(ctx context.Context) ([]*Product, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)

	// PriceFor returns the effective unit rate for (shop, product): the
	// shop's override when present, the product's default rate otherwise.
	PriceFor(ctx context.Context, shopID, productID int64) (decimal.Decimal, error)

	// UpsertShopPrice creates or replaces the price override for the
	// (shop, product) pair.
	UpsertShopPrice(ctx context.Context, sp *ShopPrice) error

	// ListShopPrices returns a shop's price overrides.
	ListShopPrices(ctx context.Context, shopID int64) ([]*ShopPrice, error)

	// GetStock returns the stock row for a product.
	GetStock(ctx context.Context, productID int64) (*Stock, error)

	// ListStock returns all stock rows.
	ListStock(ctx context.Context) ([]*Stock, error)

	// SetStockQuantity writes an absolute stock quantity, clamped at zero.
	SetStockQuantity(ctx context.Context, productID int64, quantity decimal.Decimal) error

	// AdjustStock adds a signed delta to a product's stock quantity,
	// clamped at zero.
	AdjustStock(ctx context.Context, productID int64, delta decimal.Decimal) error
}
