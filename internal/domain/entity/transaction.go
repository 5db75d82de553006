package entity

import (
	"time"

	"github.com/fajara33/rd-company/internal/domain/enum"
)

// Transaction is an immutable record of a completed sale. The append-only
// ledger is the sole source of revenue truth: once written a transaction is
// never mutated, and Detail is stored verbatim rather than recomputed.
//
// JSON field names are the persisted wire format of the `rd_transaksi`
// collection (dates serialize as ISO-8601).
type Transaction struct {
	ID            string               `json:"id"`
	Date          time.Time            `json:"date"`
	Type          enum.TransactionType `json:"type"`
	Detail        string               `json:"detail"`
	Total         int64                `json:"total"`
	CustomerPhone string               `json:"customerPhone,omitempty"`
}
