package entity

import (
	"github.com/fajara33/rd-company/internal/domain/enum"
)

// StockItem is a sellable, quantity-tracked unit. The JSON field names are the
// persisted wire format of the `rd_stok` collection and must not change.
type StockItem struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Category enum.Category `json:"category"`
	Price    int64         `json:"price"`
	Quantity int           `json:"quantity"`
}

// SoldAtRetail reports whether the item is sold through the retail counter.
// Phone-credit products are sold exclusively through the konter flow.
func (s *StockItem) SoldAtRetail() bool {
	return s.Category != enum.CategoryPhoneCounter
}

// InStock reports whether at least one unit is on hand.
func (s *StockItem) InStock() bool {
	return s.Quantity > 0
}
