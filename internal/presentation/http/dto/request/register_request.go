package request

import "github.com/shopspring/decimal"

// OpenRegisterRequest represents a register opening request
type OpenRegisterRequest struct {
	InitialAmount decimal.Decimal `json:"initial_amount"`
}

// CloseRegisterRequest represents a register closing request
type CloseRegisterRequest struct {
	FinalAmount decimal.Decimal `json:"final_amount"`
}

// CashTransactionRequest represents a manual drawer movement request
type CashTransactionRequest struct {
	Type        string          `json:"type"`
	Category    string          `json:"category" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"max=255"`
}
