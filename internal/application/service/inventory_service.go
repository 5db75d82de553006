package service

import (
	"context"
	"strings"

	"github.com/fajara33/rd-company/internal/domain/entity"
	"github.com/fajara33/rd-company/internal/domain/enum"
	"github.com/fajara33/rd-company/internal/domain/repository"
	"github.com/fajara33/rd-company/pkg/apperror"
)

// InventoryService handles stock management operations
type InventoryService struct {
	stockRepo repository.StockRepository
}

// NewInventoryService creates a new inventory service
func NewInventoryService(stockRepo repository.StockRepository) *InventoryService {
	return &InventoryService{stockRepo: stockRepo}
}

// ListStock returns stock items, optionally filtered by a case-insensitive
// name/category substring match.
func (s *InventoryService) ListStock(ctx context.Context, search string) ([]entity.StockItem, error) {
	items, err := s.stockRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return items, nil
	}

	filtered := []entity.StockItem{}
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), search) ||
			strings.Contains(strings.ToLower(item.Category.String()), search) {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

// AddStockInput represents the add stock input
type AddStockInput struct {
	Name     string
	Category enum.Category
	Price    int64
	Quantity int
}

// AddStock creates a new stock item. Duplicate names are allowed and
// constitute separate entries.
func (s *InventoryService) AddStock(ctx context.Context, input *AddStockInput) (*entity.StockItem, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewBadRequestError("Item name is required")
	}
	if !input.Category.Valid() {
		return nil, apperror.NewBadRequestError("Unknown category")
	}
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Price must not be negative")
	}
	if input.Quantity < 0 {
		return nil, apperror.NewBadRequestError("Initial quantity must not be negative")
	}

	item := &entity.StockItem{
		Name:     name,
		Category: input.Category,
		Price:    input.Price,
		Quantity: input.Quantity,
	}
	if err := s.stockRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// AdjustStock applies a quantity delta to an existing item and returns the
// updated record. The quantity is not clamped: a negative balance is kept
// visible as backorder state rather than silently corrected.
func (s *InventoryService) AdjustStock(ctx context.Context, id string, delta int) (*entity.StockItem, error) {
	item, err := s.stockRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Stock item")
	}

	if err := s.stockRepo.AdjustQuantity(ctx, id, delta); err != nil {
		return nil, err
	}
	return s.stockRepo.GetByID(ctx, id)
}
