package enum

// TransactionCategory classifies treasury and cash-register ledger entries.
type TransactionCategory string

const (
	// CategoryVenda marks income from sales.
	CategoryVenda TransactionCategory = "VENDA"
	// CategoryInternalTransfer marks cash moved between drawer and
	// treasury. Never counted as revenue.
	CategoryInternalTransfer TransactionCategory = "INTERNAL_TRANSFER"
	// CategoryCompraProduto marks stock purchase expenses.
	CategoryCompraProduto TransactionCategory = "COMPRA_PRODUTO"
	// CategoryReembolso marks refunds paid out to customers.
	CategoryReembolso TransactionCategory = "REEMBOLSO"
	// CategorySangria marks cash removed from an open drawer.
	CategorySangria TransactionCategory = "SANGRIA"
	// CategorySuprimento marks cash added to an open drawer.
	CategorySuprimento TransactionCategory = "SUPRIMENTO"
	// CategoryCorrecao marks an offsetting entry that corrects an earlier
	// one. Ledger rows are never edited in place.
	CategoryCorrecao TransactionCategory = "CORRECAO"
	// CategoryOutro is the catch-all for manual entries.
	CategoryOutro TransactionCategory = "OUTRO"
)

// Valid reports whether the category is one of the known values.
func (c TransactionCategory) Valid() bool {
	switch c {
	case CategoryVenda, CategoryInternalTransfer, CategoryCompraProduto,
		CategoryReembolso, CategorySangria, CategorySuprimento,
		CategoryCorrecao, CategoryOutro:
		return true
	}
	return false
}
