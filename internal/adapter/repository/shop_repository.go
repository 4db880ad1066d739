package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/domain/shop"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/infrastructure/database"
)

const shopColumns = `id, name, owner_name, phone, address, delivery_day, created_at, updated_at`

// ShopRepository implements shop.Repository on PostgreSQL.
type ShopRepository struct {
	db *database.PostgresDB
}

// NewShopRepository creates a new ShopRepository.
func NewShopRepository(db *database.PostgresDB) shop.Repository {
	return &ShopRepository{db: db}
}

// Create implements shop.Repository.Create.
func (r *ShopRepository) Create(ctx context.Context, s *shop.Shop) error {
	q := r.db.Querier(ctx)

	err := q.QueryRow(ctx,
		`INSERT INTO shops (name, owner_name, phone, address, delivery_day, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		s.Name, s.OwnerName, s.Phone, s.Address, s.DeliveryDay, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("insert shop: %w", err)
	}
	return nil
}

// FindByID implements shop.Repository.FindByID.
func (r *ShopRepository) FindByID(ctx context.Context, id int64) (*shop.Shop, error) {
	q := r.db.Querier(ctx)

	var s shop.Shop
	err := q.QueryRow(ctx,
		`SELECT `+shopColumns+` FROM shops WHERE id = $1`,
		id).Scan(&s.ID, &s.Name, &s.OwnerName, &s.Phone, &s.Address, &s.DeliveryDay, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shop.ErrNotFound
		}
		return nil, fmt.Errorf("find shop: %w", err)
	}
	return &s, nil
}

// FindAll implements shop.Repository.FindAll.
func (r *ShopRepository) FindAll(ctx context.Context) ([]*shop.Shop, error) {
	return r.findByQuery(ctx, `SELECT `+shopColumns+` FROM shops ORDER BY name`)
}

// FindByDeliveryDay implements shop.Repository.FindByDeliveryDay.
func (r *ShopRepository) FindByDeliveryDay(ctx context.Context, day shop.DeliveryDay) ([]*shop.Shop, error) {
	return r.findByQuery(ctx,
		`SELECT `+shopColumns+` FROM shops WHERE delivery_day = $1 ORDER BY name`,
		day)
}

// Update implements shop.Repository.Update.
func (r *ShopRepository) Update(ctx context.Context, s *shop.Shop) error {
	q := r.db.Querier(ctx)

	tag, err := q.Exec(ctx,
		`UPDATE shops
		SET name = $2, owner_name = $3, phone = $4, address = $5, delivery_day = $6, updated_at = $7
		WHERE id = $1`,
		s.ID, s.Name, s.OwnerName, s.Phone, s.Address, s.DeliveryDay, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update shop: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shop.ErrNotFound
	}
	return nil
}

// Delete implements shop.Repository.Delete.
func (r *ShopRepository) Delete(ctx context.Context, id int64) error {
	q := r.db.Querier(ctx)

	tag, err := q.Exec(ctx, `DELETE FROM shops WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete shop: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shop.ErrNotFound
	}
	return nil
}

// Exists implements shop.Repository.Exists.
func (r *ShopRepository) Exists(ctx context.Context, id int64) (bool, error) {
	q := r.db.Querier(ctx)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM shops WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check shop exists: %w", err)
	}
	return exists, nil
}

func (r *ShopRepository) findByQuery(ctx context.Context, query string, args ...any) ([]*shop.Shop, error) {
	q := r.db.Querier(ctx)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query shops: %w", err)
	}
	defer rows.Close()

	var shops []*shop.Shop
	for rows.Next() {
		var s shop.Shop
		if err := rows.Scan(&s.ID, &s.Name, &s.OwnerName, &s.Phone, &s.Address, &s.DeliveryDay, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan shop: %w", err)
		}
		shops = append(shops, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shops: %w", err)
	}

	return shops, nil
}
