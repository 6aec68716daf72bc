package entity

import (
	"time"

	"github.com/colorikids/retail-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CashRegister represents one drawer session at the POS. It is opened with
// a counted float and closed exactly once, recording the counted final
// amount alongside the expected total and the discrepancy.
type CashRegister struct {
	ID            uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	Status        enum.RegisterStatus `gorm:"size:20;not null;default:'OPEN'" json:"status"`
	InitialAmount decimal.Decimal     `gorm:"type:numeric(12,2);not null" json:"initial_amount"`
	FinalAmount   *decimal.Decimal    `gorm:"type:numeric(12,2)" json:"final_amount,omitempty"`
	// ExpectedAmount and Difference are snapshots taken at closing time so
	// the closing report survives later data repairs.
	ExpectedAmount *decimal.Decimal `gorm:"type:numeric(12,2)" json:"expected_amount,omitempty"`
	Difference     *decimal.Decimal `gorm:"type:numeric(12,2)" json:"difference,omitempty"`
	OpenedBy       uuid.UUID        `gorm:"type:uuid;not null" json:"opened_by"`
	ClosedBy       *uuid.UUID       `gorm:"type:uuid" json:"closed_by,omitempty"`
	OpenedAt       time.Time        `gorm:"not null" json:"opened_at"`
	ClosedAt       *time.Time       `json:"closed_at,omitempty"`

	// Relationships
	Orders       []Order           `gorm:"foreignKey:CashRegisterID" json:"orders,omitempty"`
	Transactions []CashTransaction `gorm:"foreignKey:CashRegisterID" json:"transactions,omitempty"`
}

// BeforeCreate generates a UUID before creating a new register session
func (r *CashRegister) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CashRegister model
func (CashRegister) TableName() string {
	return "cash_registers"
}

// IsOpen reports whether the register still accepts sales and drawer moves.
func (r *CashRegister) IsOpen() bool {
	return r.Status == enum.RegisterStatusOpen
}

// CashTransaction is a manual drawer movement (sangria/suprimento) recorded
// against an open register. Rows are immutable; mistakes are corrected with
// offsetting entries.
type CashTransaction struct {
	ID             uuid.UUID                `gorm:"type:uuid;primary_key" json:"id"`
	CashRegisterID uuid.UUID                `gorm:"type:uuid;not null;index" json:"cash_register_id"`
	Type           enum.TransactionType     `gorm:"size:10;not null" json:"type"`
	Category       enum.TransactionCategory `gorm:"size:50;not null" json:"category"`
	Amount         decimal.Decimal          `gorm:"type:numeric(12,2);not null" json:"amount"`
	Description    string                   `gorm:"size:255" json:"description"`
	CreatedBy      uuid.UUID                `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt      time.Time                `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new cash transaction
func (t *CashTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CashTransaction model
func (CashTransaction) TableName() string {
	return "cash_transactions"
}
