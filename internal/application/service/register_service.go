package service

import (
	"context"
	"fmt"
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

// RegisterService handles POS register sessions: opening with a float,
// drawer movements, reconciliation summaries and closing.
type RegisterService struct {
	registerRepo repository.CashRegisterRepository
	cashTxRepo   repository.CashTransactionRepository
	orderRepo    repository.OrderRepository
	treasuryRepo repository.TreasuryRepository
}

// NewRegisterService creates a new register service
func NewRegisterService(
	registerRepo repository.CashRegisterRepository,
	cashTxRepo repository.CashTransactionRepository,
	orderRepo repository.OrderRepository,
	treasuryRepo repository.TreasuryRepository,
) *RegisterService {
	return &RegisterService{
		registerRepo: registerRepo,
		cashTxRepo:   cashTxRepo,
		orderRepo:    orderRepo,
		treasuryRepo: treasuryRepo,
	}
}

// OpenRegister opens a new register session with the counted float. Only
// one register may be open at a time. The float leaves the treasury as an
// internal transfer; the counterpart IN is posted when the register closes.
func (s *RegisterService) OpenRegister(ctx context.Context, userID uuid.UUID, initialAmount decimal.Decimal) (*entity.CashRegister, error) {
	if initialAmount.IsNegative() {
		return nil, apperror.NewBadRequestError("Initial amount cannot be negative")
	}

	open, err := s.registerRepo.GetOpen(ctx)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, apperror.ErrRegisterAlreadyOpen
	}

	register := &entity.CashRegister{
		Status:        enum.RegisterStatusOpen,
		InitialAmount: initialAmount,
		OpenedBy:      userID,
		OpenedAt:      time.Now(),
	}
	if err := s.registerRepo.Create(ctx, register); err != nil {
		return nil, err
	}

	if initialAmount.IsPositive() {
		_ = s.treasuryRepo.Create(ctx, &entity.TreasuryTransaction{
			Description: fmt.Sprintf("Abertura de caixa %s", register.OpenedAt.Format("02/01/2006")),
			Amount:      initialAmount,
			Type:        enum.TransactionTypeOut,
			Category:    enum.CategoryInternalTransfer,
			Date:        register.OpenedAt,
			CreatedBy:   userID,
		})
	}
	return register, nil
}

// GetCurrentRegister returns the open register session
func (s *RegisterService) GetCurrentRegister(ctx context.Context) (*entity.CashRegister, error) {
	register, err := s.registerRepo.GetOpen(ctx)
	if err != nil {
		return nil, err
	}
	if register == nil {
		return nil, apperror.ErrNoOpenRegister
	}
	return register, nil
}

// GetRegister retrieves a register session by ID
func (s *RegisterService) GetRegister(ctx context.Context, id uuid.UUID) (*entity.CashRegister, error) {
	register, err := s.registerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if register == nil {
		return nil, apperror.NewNotFoundError("Cash register")
	}
	return register, nil
}

// ListRegisters lists register sessions, most recent first
func (s *RegisterService) ListRegisters(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.CashRegister], error) {
	registers, total, err := s.registerRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(registers, pag), nil
}

// Summarize reconciles a register session against its orders and manual
// drawer movements. Cancelled orders are excluded; sangria/suprimento
// entries shift the expected drawer total.
func (s *RegisterService) Summarize(ctx context.Context, register *entity.CashRegister) (*finance.RegisterSummary, error) {
	orders, err := s.orderRepo.ListByRegister(ctx, register.ID)
	if err != nil {
		return nil, err
	}
	movements, err := s.cashTxRepo.ListByRegister(ctx, register.ID)
	if err != nil {
		return nil, err
	}

	summary := finance.SummarizeRegister(*register, orders)
	net := finance.MovementNet(movements)
	if !net.IsZero() {
		summary.ExpectedTotal = summary.ExpectedTotal.Add(net)
		counted := decimal.Zero
		if register.FinalAmount != nil {
			counted = *register.FinalAmount
		}
		summary.Difference = counted.Sub(summary.ExpectedTotal)
	}
	return &summary, nil
}

// GetSummary reconciles a register session by ID
func (s *RegisterService) GetSummary(ctx context.Context, id uuid.UUID) (*finance.RegisterSummary, error) {
	register, err := s.GetRegister(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.Summarize(ctx, register)
}

// CloseRegister closes a register session exactly once: the reconciliation
// snapshot (expected total and difference against the counted amount) is
// persisted on the register row, and the counted drawer cash is moved to
// the treasury as an internal transfer so it never double-counts as
// revenue.
func (s *RegisterService) CloseRegister(ctx context.Context, id, userID uuid.UUID, finalAmount decimal.Decimal) (*entity.CashRegister, error) {
	if finalAmount.IsNegative() {
		return nil, apperror.NewBadRequestError("Final amount cannot be negative")
	}

	register, err := s.GetRegister(ctx, id)
	if err != nil {
		return nil, err
	}
	if !register.IsOpen() {
		return nil, apperror.ErrRegisterClosed
	}

	register.FinalAmount = &finalAmount
	summary, err := s.Summarize(ctx, register)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	register.Status = enum.RegisterStatusClosed
	register.ExpectedAmount = &summary.ExpectedTotal
	register.Difference = &summary.Difference
	register.ClosedBy = &userID
	register.ClosedAt = &now

	if err := s.registerRepo.Close(ctx, register); err != nil {
		return nil, err
	}

	if finalAmount.IsPositive() {
		_ = s.treasuryRepo.Create(ctx, &entity.TreasuryTransaction{
			Description: fmt.Sprintf("Fechamento de caixa %s", register.OpenedAt.Format("02/01/2006")),
			Amount:      finalAmount,
			Type:        enum.TransactionTypeIn,
			Category:    enum.CategoryInternalTransfer,
			Date:        now,
			CreatedBy:   userID,
		})
	}
	return register, nil
}

// AddTransactionInput represents a manual drawer movement
type AddTransactionInput struct {
	RegisterID  uuid.UUID
	UserID      uuid.UUID
	Type        string
	Category    string
	Amount      decimal.Decimal
	Description string
}

// AddTransaction records a sangria or suprimento against an open register
func (s *RegisterService) AddTransaction(ctx context.Context, input *AddTransactionInput) (*entity.CashTransaction, error) {
	register, err := s.GetRegister(ctx, input.RegisterID)
	if err != nil {
		return nil, err
	}
	if !register.IsOpen() {
		return nil, apperror.ErrRegisterClosed
	}

	if !input.Amount.IsPositive() {
		return nil, apperror.NewBadRequestError("Amount must be positive")
	}

	txType := enum.TransactionType(input.Type)
	category := enum.TransactionCategory(input.Category)
	switch category {
	case enum.CategorySangria:
		txType = enum.TransactionTypeOut
	case enum.CategorySuprimento:
		txType = enum.TransactionTypeIn
	case enum.CategoryOutro:
		if !txType.Valid() {
			return nil, apperror.NewBadRequestError("Transaction type must be IN or OUT")
		}
	default:
		return nil, apperror.NewBadRequestError("Category must be SANGRIA, SUPRIMENTO or OUTRO")
	}

	transaction := &entity.CashTransaction{
		CashRegisterID: register.ID,
		Type:           txType,
		Category:       category,
		Amount:         input.Amount,
		Description:    input.Description,
		CreatedBy:      input.UserID,
	}
	if err := s.cashTxRepo.Create(ctx, transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}
