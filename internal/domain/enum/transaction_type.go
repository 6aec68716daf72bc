package enum

// TransactionType marks a ledger entry as money coming in or going out.
type TransactionType string

const (
	TransactionTypeIn  TransactionType = "IN"
	TransactionTypeOut TransactionType = "OUT"
)

// Valid reports whether the type is one of the known values.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIn || t == TransactionTypeOut
}

// Opposite returns the offsetting direction, used when building
// correction entries.
func (t TransactionType) Opposite() TransactionType {
	if t == TransactionTypeIn {
		return TransactionTypeOut
	}
	return TransactionTypeIn
}
