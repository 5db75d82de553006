package entity

import "time"

// Receipt is a value object handed back to the POS after a checkout so the
// operator can show/print it. It is not a persisted entity; it is composed
// from the freshly written transaction.
type Receipt struct {
	ID     string    `json:"id"`
	Date   time.Time `json:"date"`
	Detail string    `json:"detail"`
	Total  int64     `json:"total"`
}

// NewReceipt builds a receipt from a written ledger entry.
func NewReceipt(tx *Transaction) *Receipt {
	return &Receipt{
		ID:     tx.ID,
		Date:   tx.Date,
		Detail: tx.Detail,
		Total:  tx.Total,
	}
}
