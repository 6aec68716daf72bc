package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItemRequest is one line of a sale
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// OrderPaymentRequest is one leg of a possibly split payment
type OrderPaymentRequest struct {
	Method string          `json:"method" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// CreateOrderRequest represents a POS sale creation request
type CreateOrderRequest struct {
	CustomerID *uuid.UUID            `json:"customer_id"`
	Items      []OrderItemRequest    `json:"items" binding:"required,min=1,dive"`
	Payments   []OrderPaymentRequest `json:"payments" binding:"required,min=1,dive"`
	Discount   decimal.Decimal       `json:"discount"`
}

// OrderFilterRequest represents order filter parameters
type OrderFilterRequest struct {
	Search     string `form:"search"`
	Status     string `form:"status"`
	CustomerID string `form:"customer_id"`
	RegisterID string `form:"register_id"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

// SettleReceivableRequest represents a crediário settlement request
type SettleReceivableRequest struct {
	Method string          `json:"method" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}
