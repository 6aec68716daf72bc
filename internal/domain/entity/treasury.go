package entity

import (
	"time"

	"github.com/colorikids/retail-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TreasuryTransaction is an append-only ledger entry for money outside the
// POS drawer. Entries are never updated or deleted; corrections reference
// the original row and carry the CORRECAO category with a reason.
type TreasuryTransaction struct {
	ID             uuid.UUID                `gorm:"type:uuid;primary_key" json:"id"`
	Description    string                   `gorm:"size:255;not null" json:"description"`
	Amount         decimal.Decimal          `gorm:"type:numeric(12,2);not null" json:"amount"`
	Type           enum.TransactionType     `gorm:"size:10;not null" json:"type"`
	Category       enum.TransactionCategory `gorm:"size:50;not null;index" json:"category"`
	Date           time.Time                `gorm:"type:date;not null;index" json:"date"`
	CorrectionOfID *uuid.UUID               `gorm:"type:uuid;index" json:"correction_of_id,omitempty"`
	Reason         *string                  `gorm:"size:255" json:"reason,omitempty"`
	CreatedBy      uuid.UUID                `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt      time.Time                `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new treasury transaction
func (t *TreasuryTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the TreasuryTransaction model
func (TreasuryTransaction) TableName() string {
	return "treasury_transactions"
}

// IsCorrection reports whether this entry offsets an earlier one.
func (t *TreasuryTransaction) IsCorrection() bool {
	return t.CorrectionOfID != nil
}
