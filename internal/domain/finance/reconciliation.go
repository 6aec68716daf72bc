// Package finance holds the pure reconciliation arithmetic shared by the
// treasury reports, the register-closing flow and the dashboard. Functions
// here never touch the database: callers fetch the records, these functions
// only compute.
package finance

import (
	"github.com/colorikids/retail-api/internal/domain/entity"
	"github.com/colorikids/retail-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// RevenueSummary aggregates a set of treasury ledger entries.
type RevenueSummary struct {
	TotalIn  decimal.Decimal `json:"total_in"`
	TotalOut decimal.Decimal `json:"total_out"`
	Balance  decimal.Decimal `json:"balance"`
	// Revenue is income only: internal transfers are cash moved from a
	// drawer into the treasury, corrections reverse an earlier entry;
	// neither is new money earned.
	Revenue decimal.Decimal `json:"revenue"`
}

// Revenue totals the given treasury transactions. IN entries with the
// INTERNAL_TRANSFER or CORRECAO category count toward TotalIn and Balance
// but not toward Revenue.
func Revenue(transactions []entity.TreasuryTransaction) RevenueSummary {
	s := RevenueSummary{
		TotalIn:  decimal.Zero,
		TotalOut: decimal.Zero,
		Revenue:  decimal.Zero,
	}
	for _, t := range transactions {
		switch t.Type {
		case enum.TransactionTypeIn:
			s.TotalIn = s.TotalIn.Add(t.Amount)
			if t.Category != enum.CategoryInternalTransfer && t.Category != enum.CategoryCorrecao {
				s.Revenue = s.Revenue.Add(t.Amount)
			}
		case enum.TransactionTypeOut:
			s.TotalOut = s.TotalOut.Add(t.Amount)
		}
	}
	s.Balance = s.TotalIn.Sub(s.TotalOut)
	return s
}

// RegisterSummary is the reconciliation of one register session: what was
// sold, how it was paid, how much cash the drawer should hold and how far
// off the counted amount was.
type RegisterSummary struct {
	TotalSales    decimal.Decimal                        `json:"total_sales"`
	SalesByMethod map[enum.PaymentMethod]decimal.Decimal `json:"sales_by_method"`
	CashSales     decimal.Decimal                        `json:"cash_sales"`
	ExpectedTotal decimal.Decimal                        `json:"expected_total"`
	// Difference is counted minus expected: positive is a surplus found at
	// closing, negative a shortfall.
	Difference decimal.Decimal `json:"difference"`
}

// SummarizeRegister reconciles the register against the orders attached to
// it. Every order's total counts toward TotalSales. Payment attribution is
// per order: orders with Payment rows distribute by each row's method and
// amount, orders without any (legacy single-method records) attribute their
// full total to the legacy PaymentMethod field. Only cash adds to the
// drawer, so ExpectedTotal is the opening float plus cash sales, and
// Difference compares the counted FinalAmount (zero while still open)
// against it. The caller chooses the order population; cancelled orders are
// normally excluded upstream.
func SummarizeRegister(register entity.CashRegister, orders []entity.Order) RegisterSummary {
	s := RegisterSummary{
		TotalSales:    decimal.Zero,
		SalesByMethod: make(map[enum.PaymentMethod]decimal.Decimal),
	}

	for _, order := range orders {
		s.TotalSales = s.TotalSales.Add(order.Total)

		if len(order.Payments) == 0 {
			method := enum.NormalizeMethod(order.PaymentMethod)
			s.SalesByMethod[method] = s.SalesByMethod[method].Add(order.Total)
			continue
		}
		for _, p := range order.Payments {
			method := enum.NormalizeMethod(string(p.Method))
			s.SalesByMethod[method] = s.SalesByMethod[method].Add(p.Amount)
		}
	}

	s.CashSales = s.SalesByMethod[enum.PaymentMethodDinheiro]
	s.ExpectedTotal = register.InitialAmount.Add(s.CashSales)

	counted := decimal.Zero
	if register.FinalAmount != nil {
		counted = *register.FinalAmount
	}
	s.Difference = counted.Sub(s.ExpectedTotal)
	return s
}

// MovementNet returns the net effect of manual drawer movements: SUPRIMENTO
// and other IN entries add cash, SANGRIA and other OUT entries remove it.
// The closing flow folds this into the expected drawer total.
func MovementNet(transactions []entity.CashTransaction) decimal.Decimal {
	net := decimal.Zero
	for _, t := range transactions {
		switch t.Type {
		case enum.TransactionTypeIn:
			net = net.Add(t.Amount)
		case enum.TransactionTypeOut:
			net = net.Sub(t.Amount)
		}
	}
	return net
}
