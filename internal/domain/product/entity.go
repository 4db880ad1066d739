package product

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. DefaultRate is the list price; shops can carry
// a per-shop override (ShopPrice). GSTPercent is the combined GST rate split
// evenly into SGST and CGST on sale lines.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Unit        string          `json:"unit"`
	DefaultRate decimal.Decimal `json:"default_rate"`
	GSTPercent  decimal.Decimal `json:"gst_percent"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ShopPrice is a per-shop price override for one product. At most one row
// exists per (shop, product) pair.
type ShopPrice struct {
	ID        int64           `json:"id"`
	ShopID    int64           `json:"shop_id"`
	ProductID int64           `json:"product_id"`
	Rate      decimal.Decimal `json:"rate"`
	CreatedAt time.Time       `json:"created_at"`
}

// Stock is the current on-hand quantity for one product. Quantity is never
// negative; writes clamp at zero.
type Stock struct {
	ProductID int64           `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UpdatedAt time.Time       `json:"updated_at"`
}
