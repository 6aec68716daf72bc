package repository

import (
	"context"

	"github.com/colorikids/retail-api/internal/domain/entity"
	"github.com/colorikids/retail-api/pkg/pagination"
	"github.com/google/uuid"
)

// CashRegisterRepository defines the interface for register session data
// operations.
type CashRegisterRepository interface {
	Create(ctx context.Context, register *entity.CashRegister) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CashRegister, error)
	// GetOpen returns the currently open register session, or nil when the
	// store has none.
	GetOpen(ctx context.Context) (*entity.CashRegister, error)
	// Close transitions an OPEN register to CLOSED, persisting the counted
	// final amount and the reconciliation snapshot. Implementations must
	// guard the transition so a register closes at most once.
	Close(ctx context.Context, register *entity.CashRegister) error
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.CashRegister, int64, error)
}

// CashTransactionRepository defines the interface for drawer movement data
// operations. Rows are append-only.
type CashTransactionRepository interface {
	Create(ctx context.Context, transaction *entity.CashTransaction) error
	ListByRegister(ctx context.Context, registerID uuid.UUID) ([]entity.CashTransaction, error)
}
