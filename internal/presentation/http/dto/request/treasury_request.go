package request

import "github.com/shopspring/decimal"

// CreateTreasuryTransactionRequest represents a manual ledger entry request
type CreateTreasuryTransactionRequest struct {
	Description string          `json:"description" binding:"required,max=255"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Type        string          `json:"type" binding:"required,oneof=IN OUT"`
	Category    string          `json:"category" binding:"required"`
	Date        string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// CorrectTransactionRequest represents a ledger correction request
type CorrectTransactionRequest struct {
	Reason string `json:"reason" binding:"required,max=255"`
}

// TreasuryFilterRequest represents ledger filter parameters
type TreasuryFilterRequest struct {
	Type      string `form:"type"`
	Category  string `form:"category"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
