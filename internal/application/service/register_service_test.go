package service_test

import (
	"context"
	"testing"

	"github.com/colorikids/retail-api/internal/application/service"
	"github.com/colorikids/retail-api/internal/domain/entity"
	"github.com/colorikids/retail-api/internal/domain/enum"
	"github.com/colorikids/retail-api/internal/domain/finance"
	"github.com/colorikids/retail-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RegisterServiceTestSuite struct {
	suite.Suite
	registerRepo *MockCashRegisterRepository
	cashTxRepo   *MockCashTransactionRepository
	orderRepo    *MockOrderRepository
	treasuryRepo *MockTreasuryRepository
	service      *service.RegisterService
}

func (s *RegisterServiceTestSuite) SetupTest() {
	s.registerRepo = new(MockCashRegisterRepository)
	s.cashTxRepo = new(MockCashTransactionRepository)
	s.orderRepo = new(MockOrderRepository)
	s.treasuryRepo = new(MockTreasuryRepository)
	s.service = service.NewRegisterService(s.registerRepo, s.cashTxRepo, s.orderRepo, s.treasuryRepo)
}

func (s *RegisterServiceTestSuite) TestOpenRegister() {
	ctx := context.Background()
	s.registerRepo.On("GetOpen", ctx).Return(nil, nil).Once()
	s.registerRepo.On("Create", ctx, mock.AnythingOfType("*entity.CashRegister")).Return(nil).Once()
	// The float leaves the treasury when it goes into the drawer.
	s.treasuryRepo.On("Create", ctx, mock.MatchedBy(func(t *entity.TreasuryTransaction) bool {
		return t.Type == enum.TransactionTypeOut &&
			t.Category == enum.CategoryInternalTransfer &&
			t.Amount.Equal(decimal.NewFromInt(100))
	})).Return(nil).Once()

	register, err := s.service.OpenRegister(ctx, uuid.New(), decimal.NewFromInt(100))

	s.Require().NoError(err)
	s.Equal(enum.RegisterStatusOpen, register.Status)
	s.True(register.InitialAmount.Equal(decimal.NewFromInt(100)))
	s.registerRepo.AssertExpectations(s.T())
	s.treasuryRepo.AssertExpectations(s.T())
}

func (s *RegisterServiceTestSuite) TestOpenRegister_ZeroFloatSkipsTreasury() {
	ctx := context.Background()
	s.registerRepo.On("GetOpen", ctx).Return(nil, nil).Once()
	s.registerRepo.On("Create", ctx, mock.AnythingOfType("*entity.CashRegister")).Return(nil).Once()

	_, err := s.service.OpenRegister(ctx, uuid.New(), decimal.Zero)

	s.Require().NoError(err)
	s.treasuryRepo.AssertNotCalled(s.T(), "Create")
}

// A register cycle with no sales must leave the treasury where it started:
// the float goes out at open and comes back at close, netting to zero
// balance and zero revenue.
func (s *RegisterServiceTestSuite) TestRegisterCycle_FloatIsNotRevenue() {
	ctx := context.Background()
	userID := uuid.New()
	float := decimal.NewFromInt(100)
	var ledger []entity.TreasuryTransaction

	s.registerRepo.On("GetOpen", ctx).Return(nil, nil).Once()
	s.registerRepo.On("Create", ctx, mock.AnythingOfType("*entity.CashRegister")).Return(nil).Once()
	s.treasuryRepo.On("Create", ctx, mock.AnythingOfType("*entity.TreasuryTransaction")).
		Run(func(args mock.Arguments) {
			ledger = append(ledger, *args.Get(1).(*entity.TreasuryTransaction))
		}).Return(nil)

	register, err := s.service.OpenRegister(ctx, userID, float)
	s.Require().NoError(err)

	s.registerRepo.On("GetByID", ctx, register.ID).Return(register, nil).Once()
	s.orderRepo.On("ListByRegister", ctx, register.ID).Return([]entity.Order{}, nil).Once()
	s.cashTxRepo.On("ListByRegister", ctx, register.ID).Return([]entity.CashTransaction{}, nil).Once()
	s.registerRepo.On("Close", ctx, mock.AnythingOfType("*entity.CashRegister")).Return(nil).Once()

	closed, err := s.service.CloseRegister(ctx, register.ID, userID, float)
	s.Require().NoError(err)
	s.Require().NotNil(closed.Difference)
	s.True(closed.Difference.IsZero())

	summary := finance.Revenue(ledger)
	s.True(summary.Balance.IsZero(), "balance = %s", summary.Balance)
	s.True(summary.Revenue.IsZero(), "revenue = %s", summary.Revenue)
}

func (s *RegisterServiceTestSuite) TestOpenRegister_AlreadyOpen() {
	ctx := context.Background()
	s.registerRepo.On("GetOpen", ctx).Return(&entity.CashRegister{ID: uuid.New(), Status: enum.RegisterStatusOpen}, nil).Once()

	_, err := s.service.OpenRegister(ctx, uuid.New(), decimal.Zero)

	s.Require().Error(err)
	s.ErrorIs(err, apperror.ErrRegisterAlreadyOpen)
	s.registerRepo.AssertNotCalled(s.T(), "Create")
}

func (s *RegisterServiceTestSuite) TestCloseRegister_ShortfallSnapshot() {
	ctx := context.Background()
	userID := uuid.New()
	register := &entity.CashRegister{
		ID:            uuid.New(),
		Status:        enum.RegisterStatusOpen,
		InitialAmount: decimal.NewFromInt(100),
	}
	orders := []entity.Order{
		{
			Total:    decimal.NewFromInt(50),
			Payments: []entity.Payment{{Method: enum.PaymentMethodDinheiro, Amount: decimal.NewFromInt(50)}},
		},
		{
			Total: decimal.NewFromInt(50),
			Payments: []entity.Payment{
				{Method: enum.PaymentMethodDinheiro, Amount: decimal.NewFromInt(30)},
				{Method: enum.PaymentMethodCredito, Amount: decimal.NewFromInt(20)},
			},
		},
	}

	s.registerRepo.On("GetByID", ctx, register.ID).Return(register, nil).Once()
	s.orderRepo.On("ListByRegister", ctx, register.ID).Return(orders, nil).Once()
	s.cashTxRepo.On("ListByRegister", ctx, register.ID).Return([]entity.CashTransaction{}, nil).Once()
	s.registerRepo.On("Close", ctx, mock.MatchedBy(func(r *entity.CashRegister) bool {
		return r.ExpectedAmount != nil && r.ExpectedAmount.Equal(decimal.NewFromInt(180)) &&
			r.Difference != nil && r.Difference.Equal(decimal.NewFromInt(-5)) &&
			r.ClosedBy != nil && *r.ClosedBy == userID
	})).Return(nil).Once()
	// Counted drawer cash moves to the treasury as an internal transfer.
	s.treasuryRepo.On("Create", ctx, mock.MatchedBy(func(t *entity.TreasuryTransaction) bool {
		return t.Category == enum.CategoryInternalTransfer &&
			t.Type == enum.TransactionTypeIn &&
			t.Amount.Equal(decimal.NewFromInt(175))
	})).Return(nil).Once()

	closed, err := s.service.CloseRegister(ctx, register.ID, userID, decimal.NewFromInt(175))

	s.Require().NoError(err)
	s.Equal(enum.RegisterStatusClosed, closed.Status)
	s.Require().NotNil(closed.FinalAmount)
	s.True(closed.FinalAmount.Equal(decimal.NewFromInt(175)))
	s.registerRepo.AssertExpectations(s.T())
	s.treasuryRepo.AssertExpectations(s.T())
}

func (s *RegisterServiceTestSuite) TestCloseRegister_AlreadyClosed() {
	ctx := context.Background()
	register := &entity.CashRegister{ID: uuid.New(), Status: enum.RegisterStatusClosed}

	s.registerRepo.On("GetByID", ctx, register.ID).Return(register, nil).Once()

	_, err := s.service.CloseRegister(ctx, register.ID, uuid.New(), decimal.NewFromInt(10))

	s.Require().Error(err)
	s.ErrorIs(err, apperror.ErrRegisterClosed)
	s.registerRepo.AssertNotCalled(s.T(), "Close")
	s.treasuryRepo.AssertNotCalled(s.T(), "Create")
}

func (s *RegisterServiceTestSuite) TestSummary_FoldsDrawerMovements() {
	ctx := context.Background()
	register := &entity.CashRegister{
		ID:            uuid.New(),
		Status:        enum.RegisterStatusOpen,
		InitialAmount: decimal.NewFromInt(100),
	}
	orders := []entity.Order{
		{
			Total:    decimal.NewFromInt(60),
			Payments: []entity.Payment{{Method: enum.PaymentMethodDinheiro, Amount: decimal.NewFromInt(60)}},
		},
	}
	movements := []entity.CashTransaction{
		{Type: enum.TransactionTypeOut, Category: enum.CategorySangria, Amount: decimal.NewFromInt(50)},
		{Type: enum.TransactionTypeIn, Category: enum.CategorySuprimento, Amount: decimal.NewFromInt(20)},
	}

	s.registerRepo.On("GetByID", ctx, register.ID).Return(register, nil).Once()
	s.orderRepo.On("ListByRegister", ctx, register.ID).Return(orders, nil).Once()
	s.cashTxRepo.On("ListByRegister", ctx, register.ID).Return(movements, nil).Once()

	summary, err := s.service.GetSummary(ctx, register.ID)

	s.Require().NoError(err)
	// 100 float + 60 cash - 50 sangria + 20 suprimento
	s.True(summary.ExpectedTotal.Equal(decimal.NewFromInt(130)))
	s.True(summary.CashSales.Equal(decimal.NewFromInt(60)))
}

func (s *RegisterServiceTestSuite) TestAddTransaction_SangriaForcesOut() {
	ctx := context.Background()
	register := &entity.CashRegister{ID: uuid.New(), Status: enum.RegisterStatusOpen}

	s.registerRepo.On("GetByID", ctx, register.ID).Return(register, nil).Once()
	s.cashTxRepo.On("Create", ctx, mock.MatchedBy(func(t *entity.CashTransaction) bool {
		return t.Type == enum.TransactionTypeOut && t.Category == enum.CategorySangria
	})).Return(nil).Once()

	transaction, err := s.service.AddTransaction(ctx, &service.AddTransactionInput{
		RegisterID:  register.ID,
		UserID:      uuid.New(),
		Type:        "IN", // ignored: sangria always removes cash
		Category:    "SANGRIA",
		Amount:      decimal.NewFromInt(50),
		Description: "Depósito bancário",
	})

	s.Require().NoError(err)
	s.Equal(enum.TransactionTypeOut, transaction.Type)
	s.cashTxRepo.AssertExpectations(s.T())
}

func (s *RegisterServiceTestSuite) TestAddTransaction_ClosedRegister() {
	ctx := context.Background()
	register := &entity.CashRegister{ID: uuid.New(), Status: enum.RegisterStatusClosed}

	s.registerRepo.On("GetByID", ctx, register.ID).Return(register, nil).Once()

	_, err := s.service.AddTransaction(ctx, &service.AddTransactionInput{
		RegisterID: register.ID,
		UserID:     uuid.New(),
		Category:   "SUPRIMENTO",
		Amount:     decimal.NewFromInt(10),
	})

	s.Require().Error(err)
	s.ErrorIs(err, apperror.ErrRegisterClosed)
	s.cashTxRepo.AssertNotCalled(s.T(), "Create")
}

func TestRegisterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RegisterServiceTestSuite))
}
