package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/domain/product"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/infrastructure/database"
)

const productColumns = `id, name, unit, default_rate, gst_percent, created_at, updated_at`

// ProductRepository implements product.Repository on PostgreSQL: the catalog,
// per-shop price overrides and stock quantities.
type ProductRepository struct {
	db *database.PostgresDB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *database.PostgresDB) product.Repository {
	return &ProductRepository{db: db}
}

// Create implements product.Repository.Create. A zero stock row is created
// alongside so stock reads never miss for cataloged products.
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	q := r.db.Querier(ctx)

	err := q.QueryRow(ctx,
		`INSERT INTO products (name, unit, default_rate, gst_percent, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		p.Name, p.Unit, p.DefaultRate, p.GSTPercent, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}

	_, err = q.Exec(ctx,
		`INSERT INTO stock (product_id, quantity, updated_at) VALUES ($1, 0, $2)`,
		p.ID, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert stock row: %w", err)
	}
	return nil
}

// FindByID implements product.Repository.FindByID.
func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*product.Product, error) {
	q := r.db.Querier(ctx)

	var p product.Product
	err := q.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`,
		id).Scan(&p.ID, &p.Name, &p.Unit, &p.DefaultRate, &p.GSTPercent, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &p, nil
}

// FindAll implements product.Repository.FindAll.
func (r *ProductRepository) FindAll(ctx context.Context) ([]*product.Product, error) {
	q := r.db.Querier(ctx)

	rows, err := q.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []*product.Product
	for rows.Next() {
		var p product.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Unit, &p.DefaultRate, &p.GSTPercent, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return products, nil
}

// Update implements product.Repository.Update.
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	q := r.db.Querier(ctx)

	tag, err := q.Exec(ctx,
		`UPDATE products
		SET name = $2, unit = $3, default_rate = $4, gst_percent = $5, updated_at = $6
		WHERE id = $1`,
		p.ID, p.Name, p.Unit, p.DefaultRate, p.GSTPercent, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return product.ErrNotFound
	}
	return nil
}

// Delete implements product.Repository.Delete. Price overrides and the stock
// row go with the product.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	q := r.db.Querier(ctx)

	if _, err := q.Exec(ctx, `DELETE FROM shop_prices WHERE product_id = $1`, id); err != nil {
		return fmt.Errorf("delete shop prices: %w", err)
	}
	if _, err := q.Exec(ctx, `DELETE FROM stock WHERE product_id = $1`, id); err != nil {
		return fmt.Errorf("delete stock row: %w", err)
	}

	tag, err := q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return product.ErrNotFound
	}
	return nil
}

// Exists implements product.Repository.Exists.
func (r *ProductRepository) Exists(ctx context.Context, id int64) (bool, error) {
	q := r.db.Querier(ctx)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check product exists: %w", err)
	}
	return exists, nil
}

// PriceFor implements product.Repository.PriceFor: the shop override when one
// exists, the product default rate otherwise.
func (r *ProductRepository) PriceFor(ctx context.Context, shopID, productID int64) (decimal.Decimal, error) {
	q := r.db.Querier(ctx)

	var rate decimal.Decimal
	err := q.QueryRow(ctx,
		`SELECT COALESCE(sp.rate, p.default_rate)
		FROM products p
		LEFT JOIN shop_prices sp ON sp.product_id = p.id AND sp.shop_id = $1
		WHERE p.id = $2`,
		shopID, productID).Scan(&rate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, product.ErrNotFound
		}
		return decimal.Zero, fmt.Errorf("resolve price: %w", err)
	}
	return rate, nil
}

// UpsertShopPrice implements product.Repository.UpsertShopPrice.
func (r *ProductRepository) UpsertShopPrice(ctx context.Context, sp *product.ShopPrice) error {
	q := r.db.Querier(ctx)

	err := q.QueryRow(ctx,
		`INSERT INTO shop_prices (shop_id, product_id, rate, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (shop_id, product_id) DO UPDATE SET rate = EXCLUDED.rate
		RETURNING id`,
		sp.ShopID, sp.ProductID, sp.Rate, sp.CreatedAt,
	).Scan(&sp.ID)
	if err != nil {
		return fmt.Errorf("upsert shop price: %w", err)
	}
	return nil
}

// ListShopPrices implements product.Repository.ListShopPrices.
func (r *ProductRepository) ListShopPrices(ctx context.Context, shopID int64) ([]*product.ShopPrice, error) {
	q := r.db.Querier(ctx)

	rows, err := q.Query(ctx,
		`SELECT id, shop_id, product_id, rate, created_at
		FROM shop_prices WHERE shop_id = $1 ORDER BY product_id`,
		shopID)
	if err != nil {
		return nil, fmt.Errorf("query shop prices: %w", err)
	}
	defer rows.Close()

	var prices []*product.ShopPrice
	for rows.Next() {
		var sp product.ShopPrice
		if err := rows.Scan(&sp.ID, &sp.ShopID, &sp.ProductID, &sp.Rate, &sp.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan shop price: %w", err)
		}
		prices = append(prices, &sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shop prices: %w", err)
	}

	return prices, nil
}

// GetStock implements product.Repository.GetStock. Inside a transaction the
// row is locked so concurrent bill creations touching the same product
// serialize on it.
func (r *ProductRepository) GetStock(ctx context.Context, productID int64) (*product.Stock, error) {
	q := r.db.Querier(ctx)

	query := `SELECT product_id, quantity, updated_at FROM stock WHERE product_id = $1`
	if r.db.InTx(ctx) {
		query += ` FOR UPDATE`
	}

	var st product.Stock
	err := q.QueryRow(ctx, query, productID).Scan(&st.ProductID, &st.Quantity, &st.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrStockNotFound
		}
		return nil, fmt.Errorf("find stock: %w", err)
	}
	return &st, nil
}

// ListStock implements product.Repository.ListStock.
func (r *ProductRepository) ListStock(ctx context.Context) ([]*product.Stock, error) {
	q := r.db.Querier(ctx)

	rows, err := q.Query(ctx,
		`SELECT product_id, quantity, updated_at FROM stock ORDER BY product_id`)
	if err != nil {
		return nil, fmt.Errorf("query stock: %w", err)
	}
	defer rows.Close()

	var stocks []*product.Stock
	for rows.Next() {
		var st product.Stock
		if err := rows.Scan(&st.ProductID, &st.Quantity, &st.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		stocks = append(stocks, &st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stock: %w", err)
	}

	return stocks, nil
}

// SetStockQuantity implements product.Repository.SetStockQuantity. Quantity
// is clamped at zero on write.
func (r *ProductRepository) SetStockQuantity(ctx context.Context, productID int64, quantity decimal.Decimal) error {
	q := r.db.Querier(ctx)

	tag, err := q.Exec(ctx,
		`UPDATE stock SET quantity = GREATEST(0, $2::numeric), updated_at = NOW()
		WHERE product_id = $1`,
		productID, quantity)
	if err != nil {
		return fmt.Errorf("set stock quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return product.ErrStockNotFound
	}
	return nil
}

// AdjustStock implements product.Repository.AdjustStock: a signed delta,
// clamped at zero.
func (r *ProductRepository) AdjustStock(ctx context.Context, productID int64, delta decimal.Decimal) error {
	q := r.db.Querier(ctx)

	tag, err := q.Exec(ctx,
		`UPDATE stock SET quantity = GREATEST(0, quantity + $2::numeric), updated_at = NOW()
		WHERE product_id = $1`,
		productID, delta)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return product.ErrStockNotFound
	}
	return nil
}
