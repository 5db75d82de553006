package enum

// TransactionType identifies which counter a sale went through.
// The values are stored verbatim in the transaction ledger.
type TransactionType string

const (
	TransactionLaundry TransactionType = "LAUNDRY"
	TransactionRetail  TransactionType = "RETAIL"
	TransactionKonter  TransactionType = "KONTER"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionLaundry, TransactionRetail, TransactionKonter:
		return true
	}
	return false
}

func (t TransactionType) String() string {
	return string(t)
}
