package repository

import (
	"context"
	"errors"

	"github.com/colorikids/retail-api/internal/domain/entity"
	"github.com/colorikids/retail-api/internal/domain/enum"
	domainRepo "github.com/colorikids/retail-api/internal/domain/repository"
	"github.com/colorikids/retail-api/pkg/apperror"
	"github.com/colorikids/retail-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type cashRegisterRepository struct {
	db *gorm.DB
}

// NewCashRegisterRepository creates a new cash register repository
func NewCashRegisterRepository(db *gorm.DB) domainRepo.CashRegisterRepository {
	return &cashRegisterRepository{db: db}
}

func (r *cashRegisterRepository) Create(ctx context.Context, register *entity.CashRegister) error {
	return r.db.WithContext(ctx).Create(register).Error
}

func (r *cashRegisterRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CashRegister, error) {
	var register entity.CashRegister
	err := r.db.WithContext(ctx).First(&register, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &register, err
}

func (r *cashRegisterRepository) GetOpen(ctx context.Context) (*entity.CashRegister, error) {
	var register entity.CashRegister
	err := r.db.WithContext(ctx).
		First(&register, "status = ?", enum.RegisterStatusOpen).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &register, err
}

// Close persists the closing snapshot. The WHERE clause includes the OPEN
// status so the transition happens at most once even under concurrent
// closing requests; a second attempt affects zero rows.
func (r *cashRegisterRepository) Close(ctx context.Context, register *entity.CashRegister) error {
	result := r.db.WithContext(ctx).Model(&entity.CashRegister{}).
		Where("id = ? AND status = ?", register.ID, enum.RegisterStatusOpen).
		Updates(map[string]interface{}{
			"status":          enum.RegisterStatusClosed,
			"final_amount":    register.FinalAmount,
			"expected_amount": register.ExpectedAmount,
			"difference":      register.Difference,
			"closed_by":       register.ClosedBy,
			"closed_at":       register.ClosedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperror.ErrRegisterClosed
	}
	return nil
}

func (r *cashRegisterRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.CashRegister, int64, error) {
	var registers []entity.CashRegister
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.CashRegister{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("opened_at DESC").
		Find(&registers).Error

	return registers, total, err
}

type cashTransactionRepository struct {
	db *gorm.DB
}

// NewCashTransactionRepository creates a new cash transaction repository
func NewCashTransactionRepository(db *gorm.DB) domainRepo.CashTransactionRepository {
	return &cashTransactionRepository{db: db}
}

func (r *cashTransactionRepository) Create(ctx context.Context, transaction *entity.CashTransaction) error {
	return r.db.WithContext(ctx).Create(transaction).Error
}

func (r *cashTransactionRepository) ListByRegister(ctx context.Context, registerID uuid.UUID) ([]entity.CashTransaction, error) {
	var transactions []entity.CashTransaction
	err := r.db.WithContext(ctx).
		Where("cash_register_id = ?", registerID).
		Order("created_at ASC").
		Find(&transactions).Error
	return transactions, err
}
