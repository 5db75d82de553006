package repository

import (
	"context"
	"time"

	"github.com/fajara33/rd-company/internal/domain/entity"
	domainRepo "github.com/fajara33/rd-company/internal/domain/repository"
	"github.com/fajara33/rd-company/internal/infrastructure/database"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type transactionRepository struct {
	kv kvStore
}

// NewTransactionRepository creates a new store-backed transaction repository
func NewTransactionRepository(db *gorm.DB) domainRepo.TransactionRepository {
	return &transactionRepository{kv: kvStore{db: db}}
}

func (r *transactionRepository) List(ctx context.Context) ([]entity.Transaction, error) {
	txs := []entity.Transaction{}
	if err := r.kv.load(ctx, database.KeyTransactions, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (r *transactionRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	storeMu.Lock()
	defer storeMu.Unlock()

	txs, err := r.List(ctx)
	if err != nil {
		return err
	}
	tx.ID = uuid.New().String()
	tx.Date = time.Now().UTC()
	txs = append(txs, *tx)
	return r.kv.save(ctx, database.KeyTransactions, txs)
}

func (r *transactionRepository) TotalRevenue(ctx context.Context) (int64, error) {
	txs, err := r.List(ctx)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, tx := range txs {
		total += tx.Total
	}
	return total, nil
}
