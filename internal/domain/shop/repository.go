package shop

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a shop does not exist.
var ErrNotFound = errors.New("shop not found")

// Repository defines the persistence contract for shops.
type Repository interface {
	Create(ctx context.Context, s *Shop) error
	FindByID(ctx context.Context, id int64) (*Shop, error)
	FindAll(ctx context.Context) ([]*Shop, error)
	FindByDeliveryDay(ctx context.Context, day DeliveryDay) ([]*Shop, error)
	Update(ctx context.Context, s *Shop) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}
