package request

import "github.com/google/uuid"

// PrintReceiptRequest represents a receipt print request
type PrintReceiptRequest struct {
	OrderID uuid.UUID `json:"order_id" binding:"required"`
}
