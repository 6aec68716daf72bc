package request

import "github.com/shopspring/decimal"

// CreateCustomerRequest represents a customer creation request
type CreateCustomerRequest struct {
	Name           string           `json:"name" binding:"required,min=2,max=255"`
	CPF            *string          `json:"cpf" binding:"omitempty,max=14"`
	Email          *string          `json:"email" binding:"omitempty,email"`
	Phone          *string          `json:"phone" binding:"omitempty,max=50"`
	Address        *string          `json:"address"`
	City           *string          `json:"city" binding:"omitempty,max=100"`
	CrediarioLimit *decimal.Decimal `json:"crediario_limit"`
}

// UpdateCustomerRequest represents a customer update request
type UpdateCustomerRequest struct {
	Name           *string          `json:"name" binding:"omitempty,min=2,max=255"`
	CPF            *string          `json:"cpf" binding:"omitempty,max=14"`
	Email          *string          `json:"email" binding:"omitempty,email"`
	Phone          *string          `json:"phone" binding:"omitempty,max=50"`
	Address        *string          `json:"address"`
	City           *string          `json:"city" binding:"omitempty,max=100"`
	CrediarioLimit *decimal.Decimal `json:"crediario_limit"`
}
