package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name          string          `json:"name" binding:"required,min=2,max=255"`
	CategoryID    *uuid.UUID      `json:"category_id"`
	Description   *string         `json:"description"`
	Code          string          `json:"code" binding:"omitempty,max=100"`
	Price         decimal.Decimal `json:"price" binding:"required"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	Quantity      int             `json:"quantity" binding:"min=0"`
	QuantityAlert int             `json:"quantity_alert" binding:"min=0"`
	Active        *bool           `json:"active"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name          *string          `json:"name" binding:"omitempty,min=2,max=255"`
	CategoryID    *uuid.UUID       `json:"category_id"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	CostPrice     *decimal.Decimal `json:"cost_price"`
	Quantity      *int             `json:"quantity" binding:"omitempty,min=0"`
	QuantityAlert *int             `json:"quantity_alert" binding:"omitempty,min=0"`
	Active        *bool            `json:"active"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search     string `form:"search"`
	CategoryID string `form:"category_id"`
	LowStock   bool   `form:"low_stock"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

// CategoryRequest represents a category create/rename request
type CategoryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=255"`
}
