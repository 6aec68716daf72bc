package repository

import (
	"context"
	"time"

	"github.com/colorikids/retail-api/internal/domain/entity"
	"github.com/colorikids/retail-api/internal/domain/enum"
	"github.com/colorikids/retail-api/pkg/pagination"
	"github.com/google/uuid"
)

// TreasuryRepository defines the interface for treasury ledger data
// operations. The ledger is append-only: there is deliberately no Update
// or Delete.
type TreasuryRepository interface {
	Create(ctx context.Context, transaction *entity.TreasuryTransaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.TreasuryTransaction, error)
	List(ctx context.Context, params *TreasuryFilterParams) ([]entity.TreasuryTransaction, int64, error)
	// ListInRange returns all entries whose date falls in [start, end],
	// unpaginated, for revenue computation.
	ListInRange(ctx context.Context, start, end time.Time) ([]entity.TreasuryTransaction, error)
}

// TreasuryFilterParams contains filtering parameters for ledger queries
type TreasuryFilterParams struct {
	Pagination *pagination.PaginationParams
	Type       *enum.TransactionType
	Category   *enum.TransactionCategory
	StartDate  *time.Time
	EndDate    *time.Time
}
