package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/domain/bill"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/domain/product"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/domain/shop"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/domain/user"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/infrastructure/database"
)

const billColumns = `id, bill_number, shop_id, user_id, bill_date,
		total_amount, received_amount, pending_amount, status, notes, created_at`

// BillRepository implements bill.Repository on PostgreSQL. Every statement
// goes through db.Querier(ctx) so the repository joins the transaction
// carried by ctx when one is open.
type BillRepository struct {
	db *database.PostgresDB
}

// NewBillRepository creates a new BillRepository.
func NewBillRepository(db *database.PostgresDB) bill.Repository {
	return &BillRepository{db: db}
}

// Create implements bill.Repository.Create.
func (r *BillRepository) Create(ctx context.Context, b *bill.Bill) error {
	q := r.db.Querier(ctx)

	err := q.QueryRow(ctx,
		`INSERT INTO bills (
			bill_number, shop_id, user_id, bill_date,
			total_amount, received_amount, pending_amount, status, notes, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		b.BillNumber, b.ShopID, b.UserID, b.BillDate,
		b.TotalAmount, b.ReceivedAmount, b.PendingAmount, b.Status, b.Notes, b.CreatedAt,
	).Scan(&b.ID)
	if err != nil {
		return fmt.Errorf("insert bill: %w", err)
	}

	for i := range b.Items {
		item := &b.Items[i]
		item.BillID = b.ID
		err := q.QueryRow(ctx,
			`INSERT INTO bill_items (bill_id, product_id, quantity, rate, amount, sgst, cgst)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id`,
			item.BillID, item.ProductID, item.Quantity, item.Rate, item.Amount, item.SGST, item.CGST,
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("insert bill item: %w", err)
		}
	}

	return nil
}

// FindByID implements bill.Repository.FindByID. The returned bill carries its
// shop, issuing user and line items with product detail.
func (r *BillRepository) FindByID(ctx context.Context, id int64) (*bill.Bill, error) {
	q := r.db.Querier(ctx)

	var b bill.Bill
	var s shop.Shop
	var u user.User

	err := q.QueryRow(ctx,
		`SELECT
			b.id, b.bill_number, b.shop_id, b.user_id, b.bill_date,
			b.total_amount, b.received_amount, b.pending_amount, b.status, b.notes, b.created_at,
			s.id, s.name, s.owner_name, s.phone, s.address, s.delivery_day, s.created_at, s.updated_at,
			u.id, u.name, u.phone, u.role, u.created_at
		FROM bills b
		JOIN shops s ON s.id = b.shop_id
		JOIN users u ON u.id = b.user_id
		WHERE b.id = $1`,
		id).Scan(
		&b.ID, &b.BillNumber, &b.ShopID, &b.UserID, &b.BillDate,
		&b.TotalAmount, &b.ReceivedAmount, &b.PendingAmount, &b.Status, &b.Notes, &b.CreatedAt,
		&s.ID, &s.Name, &s.OwnerName, &s.Phone, &s.Address, &s.DeliveryDay, &s.CreatedAt, &s.UpdatedAt,
		&u.ID, &u.Name, &u.Phone, &u.Role, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, bill.ErrNotFound
		}
		return nil, fmt.Errorf("find bill: %w", err)
	}

	b.Shop = &s
	b.User = &u

	items, err := r.findItems(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	b.Items = items

	return &b, nil
}

// findItems loads a bill's line items with product detail attached.
func (r *BillRepository) findItems(ctx context.Context, billID int64) ([]bill.Item, error) {
	q := r.db.Querier(ctx)

	rows, err := q.Query(ctx,
		`SELECT
			i.id, i.bill_id, i.product_id, i.quantity, i.rate, i.amount, i.sgst, i.cgst,
			p.id, p.name, p.unit, p.default_rate, p.gst_percent, p.created_at, p.updated_at
		FROM bill_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.bill_id = $1
		ORDER BY i.id`,
		billID)
	if err != nil {
		return nil, fmt.Errorf("list bill items: %w", err)
	}
	defer rows.Close()

	var items []bill.Item
	for rows.Next() {
		var item bill.Item
		var p product.Product
		if err := rows.Scan(
			&item.ID, &item.BillID, &item.ProductID, &item.Quantity, &item.Rate,
			&item.Amount, &item.SGST, &item.CGST,
			&p.ID, &p.Name, &p.Unit, &p.DefaultRate, &p.GSTPercent, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan bill item: %w", err)
		}
		item.Product = &p
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bill items: %w", err)
	}

	return items, nil
}

// Update implements bill.Repository.Update. Line items are immutable after
// creation and are not touched.
func (r *BillRepository) Update(ctx context.Context, b *bill.Bill) error {
	q := r.db.Querier(ctx)

	tag, err := q.Exec(ctx,
		`UPDATE bills
		SET received_amount = $2, pending_amount = $3, status = $4, notes = $5
		WHERE id = $1`,
		b.ID, b.ReceivedAmount, b.PendingAmount, b.Status, b.Notes)
	if err != nil {
		return fmt.Errorf("update bill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return bill.ErrNotFound
	}
	return nil
}

// Delete implements bill.Repository.Delete.
func (r *BillRepository) Delete(ctx context.Context, id int64) error {
	q := r.db.Querier(ctx)

	if _, err := q.Exec(ctx, `DELETE FROM bill_items WHERE bill_id = $1`, id); err != nil {
		return fmt.Errorf("delete bill items: %w", err)
	}

	tag, err := q.Exec(ctx, `DELETE FROM bills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return bill.ErrNotFound
	}
	return nil
}

// List implements bill.Repository.List.
func (r *BillRepository) List(ctx context.Context, limit, offset int) ([]*bill.Bill, error) {
	return r.findByQuery(ctx,
		`SELECT `+billColumns+` FROM bills
		ORDER BY bill_date DESC, id DESC
		LIMIT $1 OFFSET $2`,
		limit, offset)
}

// Count implements bill.Repository.Count.
func (r *BillRepository) Count(ctx context.Context) (int, error) {
	q := r.db.Querier(ctx)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM bills`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count bills: %w", err)
	}
	return count, nil
}

// ListByShop implements bill.Repository.ListByShop.
func (r *BillRepository) ListByShop(ctx context.Context, shopID int64) ([]*bill.Bill, error) {
	return r.findByQuery(ctx,
		`SELECT `+billColumns+` FROM bills
		WHERE shop_id = $1
		ORDER BY bill_date DESC, id DESC`,
		shopID)
}

// ListPendingByShop implements bill.Repository.ListPendingByShop: the shop's
// payment-allocation queue, oldest debt first. Rows are locked so concurrent
// allocations against the same shop serialize.
func (r *BillRepository) ListPendingByShop(ctx context.Context, shopID int64) ([]*bill.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills
		WHERE shop_id = $1 AND status = $2
		ORDER BY bill_date ASC, id ASC`
	if r.db.InTx(ctx) {
		query += ` FOR UPDATE`
	}
	return r.findByQuery(ctx, query, shopID, bill.StatusPending)
}

// CountByCreatedRange implements bill.Repository.CountByCreatedRange.
func (r *BillRepository) CountByCreatedRange(ctx context.Context, start, end time.Time) (int, error) {
	q := r.db.Querier(ctx)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM bills WHERE created_at >= $1 AND created_at < $2`,
		start, end).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count bills by created range: %w", err)
	}
	return count, nil
}

// PendingTotalByShop implements bill.Repository.PendingTotalByShop.
func (r *BillRepository) PendingTotalByShop(ctx context.Context, shopID int64) (decimal.Decimal, error) {
	q := r.db.Querier(ctx)

	var total decimal.Decimal
	err := q.QueryRow(ctx,
		`SELECT COALESCE(SUM(pending_amount), 0) FROM bills
		WHERE shop_id = $1 AND status = $2`,
		shopID, bill.StatusPending).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum pending by shop: %w", err)
	}
	return total, nil
}

// findByQuery runs a SELECT over billColumns and scans the result list.
func (r *BillRepository) findByQuery(ctx context.Context, query string, args ...any) ([]*bill.Bill, error) {
	q := r.db.Querier(ctx)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query bills: %w", err)
	}
	defer rows.Close()

	var bills []*bill.Bill
	for rows.Next() {
		var b bill.Bill
		if err := rows.Scan(
			&b.ID, &b.BillNumber, &b.ShopID, &b.UserID, &b.BillDate,
			&b.TotalAmount, &b.ReceivedAmount, &b.PendingAmount, &b.Status, &b.Notes, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		bills = append(bills, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bills: %w", err)
	}

	return bills, nil
}
