package repository

import (
	"context"

	"github.com/fajara33/rd-company/internal/domain/entity"
)

// TransactionRepository defines data operations over the append-only ledger.
type TransactionRepository interface {
	// List returns the full ledger in insertion order.
	List(ctx context.Context) ([]entity.Transaction, error)
	// Create assigns the id and the store-side timestamp, appends the
	// transaction and persists the ledger. Ledger entries are never mutated.
	Create(ctx context.Context, tx *entity.Transaction) error
	// TotalRevenue sums Total across the whole ledger. Recomputed on each
	// call, never cached.
	TotalRevenue(ctx context.Context) (int64, error)
}
