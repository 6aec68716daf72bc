package service

import (
	"context"
	"time"

	"github.com/colorikids/retail-api/internal/domain/entity"
	"github.com/colorikids/retail-api/internal/domain/enum"
	"github.com/colorikids/retail-api/internal/domain/finance"
	"github.com/colorikids/retail-api/internal/domain/repository"
	"github.com/colorikids/retail-api/pkg/apperror"
	"github.com/colorikids/retail-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TreasuryService manages the append-only treasury ledger: manual entries,
// offsetting corrections and the revenue summary.
type TreasuryService struct {
	treasuryRepo repository.TreasuryRepository
}

// NewTreasuryService creates a new treasury service
func NewTreasuryService(treasuryRepo repository.TreasuryRepository) *TreasuryService {
	return &TreasuryService{treasuryRepo: treasuryRepo}
}

// CreateTransactionInput represents a manual ledger entry
type CreateTransactionInput struct {
	UserID      uuid.UUID
	Description string
	Amount      decimal.Decimal
	Type        string
	Category    string
	Date        time.Time
}

// CreateTransaction appends a manual entry to the ledger
func (s *TreasuryService) CreateTransaction(ctx context.Context, input *CreateTransactionInput) (*entity.TreasuryTransaction, error) {
	txType := enum.TransactionType(input.Type)
	if !txType.Valid() {
		return nil, apperror.NewBadRequestError("Transaction type must be IN or OUT")
	}

	category := enum.TransactionCategory(input.Category)
	if !category.Valid() {
		return nil, apperror.NewBadRequestError("Unknown transaction category")
	}
	if category == enum.CategoryCorrecao {
		return nil, apperror.NewBadRequestError("Corrections must reference the entry being corrected")
	}

	if !input.Amount.IsPositive() {
		return nil, apperror.NewBadRequestError("Amount must be positive")
	}
	if input.Description == "" {
		return nil, apperror.NewBadRequestError("Description is required")
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	transaction := &entity.TreasuryTransaction{
		Description: input.Description,
		Amount:      input.Amount,
		Type:        txType,
		Category:    category,
		Date:        date,
		CreatedBy:   input.UserID,
	}
	if err := s.treasuryRepo.Create(ctx, transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}

// GetTransaction retrieves a ledger entry by ID
func (s *TreasuryService) GetTransaction(ctx context.Context, id uuid.UUID) (*entity.TreasuryTransaction, error) {
	transaction, err := s.treasuryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, apperror.NewNotFoundError("Treasury transaction")
	}
	return transaction, nil
}

// ListTransactions lists ledger entries with filtering and pagination
func (s *TreasuryService) ListTransactions(ctx context.Context, params *repository.TreasuryFilterParams) (*pagination.PaginatedResult[entity.TreasuryTransaction], error) {
	transactions, total, err := s.treasuryRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(transactions, pag), nil
}

// CorrectTransaction appends an offsetting entry against an earlier one.
// The original row is never touched: the correction carries the opposite
// direction, the same amount, and a mandatory reason.
func (s *TreasuryService) CorrectTransaction(ctx context.Context, id, userID uuid.UUID, reason string) (*entity.TreasuryTransaction, error) {
	if reason == "" {
		return nil, apperror.NewBadRequestError("A reason is required to correct an entry")
	}

	original, err := s.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}
	if original.IsCorrection() {
		return nil, apperror.NewConflictError("Correction entries cannot be corrected")
	}

	correction := &entity.TreasuryTransaction{
		Description:    "Correção: " + original.Description,
		Amount:         original.Amount,
		Type:           original.Type.Opposite(),
		Category:       enum.CategoryCorrecao,
		Date:           time.Now(),
		CorrectionOfID: &original.ID,
		Reason:         &reason,
		CreatedBy:      userID,
	}
	if err := s.treasuryRepo.Create(ctx, correction); err != nil {
		return nil, err
	}
	return correction, nil
}

// GetSummary computes the revenue summary over a date range
func (s *TreasuryService) GetSummary(ctx context.Context, start, end time.Time) (*finance.RevenueSummary, error) {
	if end.Before(start) {
		return nil, apperror.NewBadRequestError("End date must not precede start date")
	}

	transactions, err := s.treasuryRepo.ListInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	summary := finance.Revenue(transactions)
	return &summary, nil
}
