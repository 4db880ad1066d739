package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/domain/product"
)

// ProductRequest creates or updates a catalog product.
type ProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Unit        string          `json:"unit"`
	DefaultRate decimal.Decimal `json:"default_rate"`
	GSTPercent  decimal.Decimal `json:"gst_percent"`
}

// ToProduct converts the request to a domain product.
func (r *ProductRequest) ToProduct() *product.Product {
	return &product.Product{
		Name:        r.Name,
		Unit:        r.Unit,
		DefaultRate: r.DefaultRate,
		GSTPercent:  r.GSTPercent,
	}
}

// ProductResponse is a product in replies.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Unit        string          `json:"unit"`
	DefaultRate decimal.Decimal `json:"default_rate"`
	GSTPercent  decimal.Decimal `json:"gst_percent"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse is a product list.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// ToProductResponse converts a domain product to its DTO.
func ToProductResponse(p *product.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Unit:        p.Unit,
		DefaultRate: p.DefaultRate,
		GSTPercent:  p.GSTPercent,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductListResponse converts a domain product list to its DTO.
func ToProductListResponse(products []*product.Product) *ProductListResponse {
	items := make([]ProductResponse, len(products))
	for i, p := range products {
		items[i] = *ToProductResponse(p)
	}
	return &ProductListResponse{Items: items, Total: len(items)}
}

// ShopPriceRequest sets a shop's price override for a product.
type ShopPriceRequest struct {
	ProductID int64           `json:"product_id" binding:"required"`
	Rate      decimal.Decimal `json:"rate" binding:"required"`
}

// ShopPriceResponse is a price override in replies.
type ShopPriceResponse struct {
	ID        int64           `json:"id"`
	ShopID    int64           `json:"shop_id"`
	ProductID int64           `json:"product_id"`
	Rate      decimal.Decimal `json:"rate"`
	CreatedAt time.Time       `json:"created_at"`
}

// ToShopPriceResponse converts a domain price override to its DTO.
func ToShopPriceResponse(sp *product.ShopPrice) *ShopPriceResponse {
	return &ShopPriceResponse{
		ID:        sp.ID,
		ShopID:    sp.ShopID,
		ProductID: sp.ProductID,
		Rate:      sp.Rate,
		CreatedAt: sp.CreatedAt,
	}
}

// ToShopPriceListResponse converts a list of price overrides.
func ToShopPriceListResponse(prices []*product.ShopPrice) []ShopPriceResponse {
	items := make([]ShopPriceResponse, len(prices))
	for i, sp := range prices {
		items[i] = *ToShopPriceResponse(sp)
	}
	return items
}

// EffectivePriceResponse is the server's pricing suggestion for a
// (shop, product) pair: the effective rate plus the GST split a sale line at
// that rate would carry.
type EffectivePriceResponse struct {
	ShopID      int64           `json:"shop_id"`
	ProductID   int64           `json:"product_id"`
	Rate        decimal.Decimal `json:"rate"`
	SGSTPercent decimal.Decimal `json:"sgst_percent"`
	CGSTPercent decimal.Decimal `json:"cgst_percent"`
}

// StockResponse is a stock quantity in replies.
type StockResponse struct {
	ProductID int64           `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// StockUpdateRequest sets an absolute stock quantity.
type StockUpdateRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
}

// StockAdjustRequest applies a signed delta to a stock quantity.
type StockAdjustRequest struct {
	Delta decimal.Decimal `json:"delta" binding:"required"`
}

// ToStockResponse converts a domain stock row to its DTO.
func ToStockResponse(st *product.Stock) *StockResponse {
	return &StockResponse{
		ProductID: st.ProductID,
		Quantity:  st.Quantity,
		UpdatedAt: st.UpdatedAt,
	}
}

// ToStockListResponse converts a list of stock rows.
func ToStockListResponse(stocks []*product.Stock) []StockResponse {
	items := make([]StockResponse, len(stocks))
	for i, st := range stocks {
		items[i] = *ToStockResponse(st)
	}
	return items
}
