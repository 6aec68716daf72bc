package repository

import (
	"context"
	"errors"
	"time"

	"github.com/colorikids/retail-api/internal/domain/entity"
	domainRepo "github.com/colorikids/retail-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type treasuryRepository struct {
	db *gorm.DB
}

// NewTreasuryRepository creates a new treasury ledger repository
func NewTreasuryRepository(db *gorm.DB) domainRepo.TreasuryRepository {
	return &treasuryRepository{db: db}
}

func (r *treasuryRepository) Create(ctx context.Context, transaction *entity.TreasuryTransaction) error {
	return r.db.WithContext(ctx).Create(transaction).Error
}

func (r *treasuryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.TreasuryTransaction, error) {
	var transaction entity.TreasuryTransaction
	err := r.db.WithContext(ctx).First(&transaction, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &transaction, err
}

func (r *treasuryRepository) List(ctx context.Context, params *domainRepo.TreasuryFilterParams) ([]entity.TreasuryTransaction, int64, error) {
	var transactions []entity.TreasuryTransaction
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.TreasuryTransaction{})

	if params.Type != nil {
		query = query.Where("type = ?", *params.Type)
	}

	if params.Category != nil {
		query = query.Where("category = ?", *params.Category)
	}

	if params.StartDate != nil {
		query = query.Where("date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("date DESC, created_at DESC").
		Find(&transactions).Error

	return transactions, total, err
}

func (r *treasuryRepository) ListInRange(ctx context.Context, start, end time.Time) ([]entity.TreasuryTransaction, error) {
	var transactions []entity.TreasuryTransaction
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC, created_at ASC").
		Find(&transactions).Error
	return transactions, err
}
