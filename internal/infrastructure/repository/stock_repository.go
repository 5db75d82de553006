package repository

import (
	"context"

	"github.com/fajara33/rd-company/internal/domain/entity"
	domainRepo "github.com/fajara33/rd-company/internal/domain/repository"
	"github.com/fajara33/rd-company/internal/infrastructure/database"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type stockRepository struct {
	kv kvStore
}

// NewStockRepository creates a new store-backed stock repository
func NewStockRepository(db *gorm.DB) domainRepo.StockRepository {
	return &stockRepository{kv: kvStore{db: db}}
}

func (r *stockRepository) List(ctx context.Context) ([]entity.StockItem, error) {
	items := []entity.StockItem{}
	if err := r.kv.load(ctx, database.KeyStock, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *stockRepository) GetByID(ctx context.Context, id string) (*entity.StockItem, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

func (r *stockRepository) Create(ctx context.Context, item *entity.StockItem) error {
	storeMu.Lock()
	defer storeMu.Unlock()

	items, err := r.List(ctx)
	if err != nil {
		return err
	}
	item.ID = uuid.New().String()
	items = append(items, *item)
	return r.kv.save(ctx, database.KeyStock, items)
}

func (r *stockRepository) AdjustQuantity(ctx context.Context, id string, delta int) error {
	storeMu.Lock()
	defer storeMu.Unlock()

	items, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == id {
			items[i].Quantity += delta
			return r.kv.save(ctx, database.KeyStock, items)
		}
	}
	// Unknown id: silent no-op.
	return nil
}
