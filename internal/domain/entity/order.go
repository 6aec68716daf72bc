package entity

import (
	"time"

	"github.com/colorikids/retail-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order represents a sale, either from the storefront or the POS register.
type Order struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	Number         string           `gorm:"size:100;unique;not null" json:"number"`
	UserID         uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID     *uuid.UUID       `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	CashRegisterID *uuid.UUID       `gorm:"type:uuid;index" json:"cash_register_id,omitempty"`
	Status         enum.OrderStatus `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	Total          decimal.Decimal  `gorm:"type:numeric(12,2);not null" json:"total"`
	Discount       decimal.Decimal  `gorm:"type:numeric(12,2);not null;default:0" json:"discount"`
	// PaymentMethod is the legacy single-method field kept for orders that
	// predate itemized Payment rows. New orders always carry Payments.
	PaymentMethod string         `gorm:"size:50" json:"payment_method,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"-"`
	Customer     *Customer     `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	CashRegister *CashRegister `gorm:"foreignKey:CashRegisterID" json:"-"`
	Items        []OrderItem   `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Payments     []Payment     `gorm:"foreignKey:OrderID" json:"payments,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// PaidAmount sums the order's settled payments. Crediário legs are a
// promise to pay, not money received, so they never count as paid.
func (o *Order) PaidAmount() decimal.Decimal {
	paid := decimal.Zero
	for _, p := range o.Payments {
		if p.Method == enum.PaymentMethodCrediario {
			continue
		}
		paid = paid.Add(p.Amount)
	}
	return paid
}

// OutstandingAmount returns the unpaid remainder, floored at zero.
func (o *Order) OutstandingAmount() decimal.Decimal {
	due := o.Total.Sub(o.PaidAmount())
	if due.IsNegative() {
		return decimal.Zero
	}
	return due
}

// OrderItem represents a line item in an order.
type OrderItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_price"`
	Total     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"`
	CreatedAt time.Time       `json:"created_at"`

	// Relationships
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order item
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// Payment represents one leg of a possibly split payment for an order.
// Payments are append-only; a cancelled order gets offsetting ledger
// entries, its payment rows are never edited.
type Payment struct {
	ID        uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID          `gorm:"type:uuid;not null;index" json:"order_id"`
	Method    enum.PaymentMethod `gorm:"size:50;not null" json:"method"`
	Amount    decimal.Decimal    `gorm:"type:numeric(12,2);not null" json:"amount"`
	CreatedAt time.Time          `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
