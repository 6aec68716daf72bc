package finance_test

import (
	"testing"

	"github.com/colorikids/retail-api/internal/domain/entity"
	"github.com/colorikids/retail-api/internal/domain/enum"
	"github.com/colorikids/retail-api/internal/domain/finance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRevenueExcludesInternalTransfers(t *testing.T) {
	txs := []entity.TreasuryTransaction{
		{Type: enum.TransactionTypeIn, Amount: dec("100"), Category: enum.CategoryVenda},
		{Type: enum.TransactionTypeIn, Amount: dec("50"), Category: enum.CategoryInternalTransfer},
	}

	s := finance.Revenue(txs)

	assert.True(t, s.TotalIn.Equal(dec("150")), "totalIn = %s", s.TotalIn)
	assert.True(t, s.Revenue.Equal(dec("100")), "revenue = %s", s.Revenue)
	assert.True(t, s.TotalOut.IsZero())
	assert.True(t, s.Balance.Equal(dec("150")))
}

func TestRevenueExcludesCorrections(t *testing.T) {
	// An OUT entered by mistake and its IN correction cancel out on the
	// balance; the correction is not income.
	txs := []entity.TreasuryTransaction{
		{Type: enum.TransactionTypeIn, Amount: dec("100"), Category: enum.CategoryVenda},
		{Type: enum.TransactionTypeOut, Amount: dec("30"), Category: enum.CategoryCompraProduto},
		{Type: enum.TransactionTypeIn, Amount: dec("30"), Category: enum.CategoryCorrecao},
	}

	s := finance.Revenue(txs)

	assert.True(t, s.TotalIn.Equal(dec("130")))
	assert.True(t, s.Balance.Equal(dec("100")))
	assert.True(t, s.Revenue.Equal(dec("100")), "revenue = %s", s.Revenue)
}

func TestRevenueBalance(t *testing.T) {
	txs := []entity.TreasuryTransaction{
		{Type: enum.TransactionTypeIn, Amount: dec("200.50"), Category: enum.CategoryVenda},
		{Type: enum.TransactionTypeOut, Amount: dec("75.25"), Category: enum.CategoryCompraProduto},
		{Type: enum.TransactionTypeOut, Amount: dec("10.00"), Category: enum.CategoryReembolso},
	}

	s := finance.Revenue(txs)

	assert.True(t, s.TotalIn.Equal(dec("200.50")))
	assert.True(t, s.TotalOut.Equal(dec("85.25")))
	assert.True(t, s.Balance.Equal(dec("115.25")))
	assert.True(t, s.Revenue.Equal(dec("200.50")))
}

func TestRevenueEmpty(t *testing.T) {
	s := finance.Revenue(nil)
	assert.True(t, s.TotalIn.IsZero())
	assert.True(t, s.TotalOut.IsZero())
	assert.True(t, s.Balance.IsZero())
	assert.True(t, s.Revenue.IsZero())
}

func TestSummarizeRegisterDrawerShortfall(t *testing.T) {
	final := dec("175")
	register := entity.CashRegister{
		InitialAmount: dec("100"),
		FinalAmount:   &final,
	}
	orders := []entity.Order{
		{
			Total: dec("100"),
			Payments: []entity.Payment{
				{Method: enum.PaymentMethodDinheiro, Amount: dec("50")},
				{Method: enum.PaymentMethodDinheiro, Amount: dec("30")},
				{Method: enum.PaymentMethodCredito, Amount: dec("20")},
			},
		},
	}

	s := finance.SummarizeRegister(register, orders)

	assert.True(t, s.CashSales.Equal(dec("80")), "cashSales = %s", s.CashSales)
	assert.True(t, s.ExpectedTotal.Equal(dec("180")), "expectedTotal = %s", s.ExpectedTotal)
	assert.True(t, s.Difference.Equal(dec("-5")), "difference = %s", s.Difference)
	assert.True(t, s.TotalSales.Equal(dec("100")))
}

func TestSummarizeRegisterLegacyFallback(t *testing.T) {
	register := entity.CashRegister{InitialAmount: decimal.Zero}

	legacy := entity.Order{Total: dec("40"), PaymentMethod: "DINHEIRO"}
	modern := entity.Order{
		Total: dec("40"),
		Payments: []entity.Payment{
			{Method: enum.PaymentMethodDinheiro, Amount: dec("40")},
		},
	}

	fromLegacy := finance.SummarizeRegister(register, []entity.Order{legacy})
	fromModern := finance.SummarizeRegister(register, []entity.Order{modern})

	require.Contains(t, fromLegacy.SalesByMethod, enum.PaymentMethodDinheiro)
	assert.True(t, fromLegacy.SalesByMethod[enum.PaymentMethodDinheiro].Equal(dec("40")))
	assert.True(t, fromLegacy.CashSales.Equal(fromModern.CashSales))
	assert.True(t, fromLegacy.ExpectedTotal.Equal(fromModern.ExpectedTotal))
}

func TestSummarizeRegisterLegacyAndModernCoexist(t *testing.T) {
	// The fallback is applied per order: one register's history may mix
	// legacy single-method orders with itemized ones.
	register := entity.CashRegister{InitialAmount: dec("50")}
	orders := []entity.Order{
		{Total: dec("30"), PaymentMethod: "cash"}, // legacy alias, mixed case
		{
			Total: dec("70"),
			Payments: []entity.Payment{
				{Method: enum.PaymentMethodPix, Amount: dec("45")},
				{Method: enum.PaymentMethodDinheiro, Amount: dec("25")},
			},
		},
	}

	s := finance.SummarizeRegister(register, orders)

	assert.True(t, s.TotalSales.Equal(dec("100")))
	assert.True(t, s.CashSales.Equal(dec("55")), "cashSales = %s", s.CashSales)
	assert.True(t, s.SalesByMethod[enum.PaymentMethodPix].Equal(dec("45")))
	assert.True(t, s.ExpectedTotal.Equal(dec("105")))
	// Still open: counted amount defaults to zero.
	assert.True(t, s.Difference.Equal(dec("-105")))
}

func TestSummarizeRegisterNoOrders(t *testing.T) {
	final := dec("100")
	register := entity.CashRegister{InitialAmount: dec("100"), FinalAmount: &final}

	s := finance.SummarizeRegister(register, nil)

	assert.True(t, s.TotalSales.IsZero())
	assert.True(t, s.CashSales.IsZero())
	assert.True(t, s.ExpectedTotal.Equal(dec("100")))
	assert.True(t, s.Difference.IsZero())
	assert.Empty(t, s.SalesByMethod)
}

func TestMovementNet(t *testing.T) {
	txs := []entity.CashTransaction{
		{Type: enum.TransactionTypeIn, Amount: dec("20"), Category: enum.CategorySuprimento},
		{Type: enum.TransactionTypeOut, Amount: dec("50"), Category: enum.CategorySangria},
		{Type: enum.TransactionTypeIn, Amount: dec("5"), Category: enum.CategorySuprimento},
	}
	assert.True(t, finance.MovementNet(txs).Equal(dec("-25")))
	assert.True(t, finance.MovementNet(nil).IsZero())
}
