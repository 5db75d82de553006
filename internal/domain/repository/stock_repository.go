package repository

import (
	"context"

	"github.com/fajara33/rd-company/internal/domain/entity"
)

// StockRepository defines data operations over the stock collection.
type StockRepository interface {
	// List returns the stock collection in insertion order.
	List(ctx context.Context) ([]entity.StockItem, error)
	// GetByID returns the item with the given id, or (nil, nil) if absent.
	GetByID(ctx context.Context, id string) (*entity.StockItem, error)
	// Create assigns a unique id, appends the item and persists the
	// collection. Duplicate names are allowed and constitute separate entries.
	Create(ctx context.Context, item *entity.StockItem) error
	// AdjustQuantity adds delta to the item's quantity. Unknown ids are a
	// silent no-op. Quantity is not clamped at zero: a negative balance is
	// visible backorder state, and the sale flows own the stock check.
	AdjustQuantity(ctx context.Context, id string, delta int) error
}
