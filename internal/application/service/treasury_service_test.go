package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/colorikids/retail-api/internal/application/service"
	"github.com/colorikids/retail-api/internal/domain/entity"
	"github.com/colorikids/retail-api/internal/domain/enum"
	"github.com/colorikids/retail-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TreasuryServiceTestSuite struct {
	suite.Suite
	treasuryRepo *MockTreasuryRepository
	service      *service.TreasuryService
}

func (s *TreasuryServiceTestSuite) SetupTest() {
	s.treasuryRepo = new(MockTreasuryRepository)
	s.service = service.NewTreasuryService(s.treasuryRepo)
}

func (s *TreasuryServiceTestSuite) TestCreateTransaction() {
	ctx := context.Background()
	s.treasuryRepo.On("Create", ctx, mock.AnythingOfType("*entity.TreasuryTransaction")).Return(nil).Once()

	transaction, err := s.service.CreateTransaction(ctx, &service.CreateTransactionInput{
		UserID:      uuid.New(),
		Description: "Compra de estoque",
		Amount:      decimal.NewFromInt(300),
		Type:        "OUT",
		Category:    "COMPRA_PRODUTO",
	})

	s.Require().NoError(err)
	s.Equal(enum.TransactionTypeOut, transaction.Type)
	s.Equal(enum.CategoryCompraProduto, transaction.Category)
	s.False(transaction.Date.IsZero())
}

func (s *TreasuryServiceTestSuite) TestCreateTransaction_RejectsDirectCorrection() {
	ctx := context.Background()

	_, err := s.service.CreateTransaction(ctx, &service.CreateTransactionInput{
		UserID:      uuid.New(),
		Description: "Ajuste",
		Amount:      decimal.NewFromInt(10),
		Type:        "IN",
		Category:    "CORRECAO",
	})

	s.Require().Error(err)
	s.Equal(400, apperror.GetAppError(err).Code)
	s.treasuryRepo.AssertNotCalled(s.T(), "Create")
}

func (s *TreasuryServiceTestSuite) TestCorrectTransaction_OffsettingEntry() {
	ctx := context.Background()
	userID := uuid.New()
	original := &entity.TreasuryTransaction{
		ID:          uuid.New(),
		Description: "Venda PED-000001",
		Amount:      decimal.NewFromInt(150),
		Type:        enum.TransactionTypeIn,
		Category:    enum.CategoryVenda,
	}

	s.treasuryRepo.On("GetByID", ctx, original.ID).Return(original, nil).Once()
	s.treasuryRepo.On("Create", ctx, mock.MatchedBy(func(t *entity.TreasuryTransaction) bool {
		return t.Type == enum.TransactionTypeOut &&
			t.Category == enum.CategoryCorrecao &&
			t.Amount.Equal(original.Amount) &&
			t.CorrectionOfID != nil && *t.CorrectionOfID == original.ID &&
			t.Reason != nil && *t.Reason == "Lançamento duplicado"
	})).Return(nil).Once()

	correction, err := s.service.CorrectTransaction(ctx, original.ID, userID, "Lançamento duplicado")

	s.Require().NoError(err)
	s.True(correction.IsCorrection())
	s.treasuryRepo.AssertExpectations(s.T())
}

func (s *TreasuryServiceTestSuite) TestCorrectTransaction_RequiresReason() {
	ctx := context.Background()

	_, err := s.service.CorrectTransaction(ctx, uuid.New(), uuid.New(), "")

	s.Require().Error(err)
	s.Equal(400, apperror.GetAppError(err).Code)
	s.treasuryRepo.AssertNotCalled(s.T(), "GetByID")
}

func (s *TreasuryServiceTestSuite) TestCorrectTransaction_CannotCorrectCorrection() {
	ctx := context.Background()
	originalID := uuid.New()
	correction := &entity.TreasuryTransaction{
		ID:             uuid.New(),
		Type:           enum.TransactionTypeOut,
		Category:       enum.CategoryCorrecao,
		CorrectionOfID: &originalID,
	}

	s.treasuryRepo.On("GetByID", ctx, correction.ID).Return(correction, nil).Once()

	_, err := s.service.CorrectTransaction(ctx, correction.ID, uuid.New(), "motivo")

	s.Require().Error(err)
	s.Equal(409, apperror.GetAppError(err).Code)
	s.treasuryRepo.AssertNotCalled(s.T(), "Create")
}

func (s *TreasuryServiceTestSuite) TestGetSummary_ExcludesInternalTransfers() {
	ctx := context.Background()
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	entries := []entity.TreasuryTransaction{
		{Type: enum.TransactionTypeIn, Category: enum.CategoryVenda, Amount: decimal.NewFromInt(150)},
		{Type: enum.TransactionTypeIn, Category: enum.CategoryInternalTransfer, Amount: decimal.NewFromInt(100)},
		{Type: enum.TransactionTypeOut, Category: enum.CategoryCompraProduto, Amount: decimal.NewFromInt(40)},
	}

	s.treasuryRepo.On("ListInRange", ctx, start, end).Return(entries, nil).Once()

	summary, err := s.service.GetSummary(ctx, start, end)

	s.Require().NoError(err)
	s.True(summary.TotalIn.Equal(decimal.NewFromInt(250)))
	s.True(summary.TotalOut.Equal(decimal.NewFromInt(40)))
	s.True(summary.Balance.Equal(decimal.NewFromInt(210)))
	s.True(summary.Revenue.Equal(decimal.NewFromInt(150)))
}

func (s *TreasuryServiceTestSuite) TestGetSummary_InvalidRange() {
	ctx := context.Background()
	start := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := s.service.GetSummary(ctx, start, end)

	s.Require().Error(err)
	s.Equal(400, apperror.GetAppError(err).Code)
}

func TestTreasuryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TreasuryServiceTestSuite))
}
