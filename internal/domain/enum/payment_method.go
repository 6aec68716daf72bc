package enum

import "strings"

// PaymentMethod is the canonical set of payment methods accepted at the
// register. Historical data carried mixed casing and English aliases
// ("CASH", "Dinheiro"); NormalizeMethod maps those onto this set at the
// ingestion boundary so downstream comparisons stay case-sensitive.
type PaymentMethod string

const (
	PaymentMethodDinheiro  PaymentMethod = "DINHEIRO"
	PaymentMethodPix       PaymentMethod = "PIX"
	PaymentMethodCredito   PaymentMethod = "CREDITO"
	PaymentMethodDebito    PaymentMethod = "DEBITO"
	PaymentMethodCrediario PaymentMethod = "CREDIARIO"
)

// Valid reports whether the method belongs to the canonical set.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodDinheiro, PaymentMethodPix, PaymentMethodCredito,
		PaymentMethodDebito, PaymentMethodCrediario:
		return true
	}
	return false
}

// IsCash reports whether the method settles into the physical drawer.
func (m PaymentMethod) IsCash() bool {
	return m == PaymentMethodDinheiro
}

// NormalizeMethod maps raw method strings, including legacy aliases and
// mixed casing, onto the canonical set. Unknown strings are uppercased and
// returned as-is so they surface in reports instead of disappearing.
func NormalizeMethod(raw string) PaymentMethod {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "DINHEIRO", "CASH", "MONEY":
		return PaymentMethodDinheiro
	case "PIX":
		return PaymentMethodPix
	case "CREDITO", "CREDIT", "CARTAO_CREDITO", "CREDIT_CARD":
		return PaymentMethodCredito
	case "DEBITO", "DEBIT", "CARTAO_DEBITO", "DEBIT_CARD":
		return PaymentMethodDebito
	case "CREDIARIO", "FIADO":
		return PaymentMethodCrediario
	default:
		return PaymentMethod(strings.ToUpper(strings.TrimSpace(raw)))
	}
}
