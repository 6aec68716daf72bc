package service_test

import (
	"context"
	"testing"

	"github.com/colorikids/retail-api/internal/application/service"
	"github.com/colorikids/retail-api/internal/domain/entity"
	"github.com/colorikids/retail-api/internal/domain/enum"
	"github.com/colorikids/retail-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type OrderServiceTestSuite struct {
	suite.Suite
	orderRepo    *MockOrderRepository
	paymentRepo  *MockPaymentRepository
	productRepo  *MockProductRepository
	customerRepo *MockCustomerRepository
	registerRepo *MockCashRegisterRepository
	cashTxRepo   *MockCashTransactionRepository
	treasuryRepo *MockTreasuryRepository
	service      *service.OrderService
}

func (s *OrderServiceTestSuite) SetupTest() {
	s.orderRepo = new(MockOrderRepository)
	s.paymentRepo = new(MockPaymentRepository)
	s.productRepo = new(MockProductRepository)
	s.customerRepo = new(MockCustomerRepository)
	s.registerRepo = new(MockCashRegisterRepository)
	s.cashTxRepo = new(MockCashTransactionRepository)
	s.treasuryRepo = new(MockTreasuryRepository)
	s.service = service.NewOrderService(
		s.orderRepo, s.paymentRepo, s.productRepo, s.customerRepo,
		s.registerRepo, s.cashTxRepo, s.treasuryRepo,
	)
}

func openRegister() *entity.CashRegister {
	return &entity.CashRegister{
		ID:            uuid.New(),
		Status:        enum.RegisterStatusOpen,
		InitialAmount: decimal.NewFromInt(100),
	}
}

func (s *OrderServiceTestSuite) TestCreateOrder_SplitPayment() {
	ctx := context.Background()
	register := openRegister()
	product := entity.Product{ID: uuid.New(), Name: "Camiseta", Price: decimal.NewFromInt(50), Quantity: 10}

	s.registerRepo.On("GetOpen", ctx).Return(register, nil).Once()
	s.productRepo.On("GetByIDs", ctx, mock.Anything).Return([]entity.Product{product}, nil).Once()
	s.productRepo.On("AtomicDecrementBatch", ctx, map[uuid.UUID]int{product.ID: 2}).Return([]uuid.UUID{}, nil).Once()
	s.orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order")).Return(nil).Once()
	// Only the PIX leg reaches the treasury; cash stays in the drawer.
	s.treasuryRepo.On("Create", ctx, mock.MatchedBy(func(t *entity.TreasuryTransaction) bool {
		return t.Type == enum.TransactionTypeIn &&
			t.Category == enum.CategoryVenda &&
			t.Amount.Equal(decimal.NewFromInt(60))
	})).Return(nil).Once()

	order, err := s.service.CreateOrder(ctx, &service.CreateOrderInput{
		UserID: uuid.New(),
		Items:  []service.OrderItemInput{{ProductID: product.ID, Quantity: 2}},
		Payments: []service.PaymentInput{
			{Method: "DINHEIRO", Amount: decimal.NewFromInt(40)},
			{Method: "PIX", Amount: decimal.NewFromInt(60)},
		},
		Discount: decimal.Zero,
	})

	s.Require().NoError(err)
	s.Require().NotNil(order)
	s.Equal(enum.OrderStatusCompleted, order.Status)
	s.Require().NotNil(order.CashRegisterID)
	s.Equal(register.ID, *order.CashRegisterID)
	s.True(order.Total.Equal(decimal.NewFromInt(100)))
	s.Len(order.Payments, 2)
	s.treasuryRepo.AssertExpectations(s.T())
	s.productRepo.AssertExpectations(s.T())
}

func (s *OrderServiceTestSuite) TestCreateOrder_NoOpenRegister() {
	ctx := context.Background()
	s.registerRepo.On("GetOpen", ctx).Return(nil, nil).Once()

	_, err := s.service.CreateOrder(ctx, &service.CreateOrderInput{
		UserID:   uuid.New(),
		Items:    []service.OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
		Payments: []service.PaymentInput{{Method: "PIX", Amount: decimal.NewFromInt(10)}},
	})

	s.Require().Error(err)
	s.ErrorIs(err, apperror.ErrNoOpenRegister)
	s.orderRepo.AssertNotCalled(s.T(), "Create")
}

func (s *OrderServiceTestSuite) TestCreateOrder_PaymentsMustSumToTotal() {
	ctx := context.Background()
	product := entity.Product{ID: uuid.New(), Name: "Bermuda", Price: decimal.NewFromInt(30)}

	s.registerRepo.On("GetOpen", ctx).Return(openRegister(), nil).Once()
	s.productRepo.On("GetByIDs", ctx, mock.Anything).Return([]entity.Product{product}, nil).Once()

	_, err := s.service.CreateOrder(ctx, &service.CreateOrderInput{
		UserID:   uuid.New(),
		Items:    []service.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		Payments: []service.PaymentInput{{Method: "DINHEIRO", Amount: decimal.NewFromInt(20)}},
	})

	s.Require().Error(err)
	appErr := apperror.GetAppError(err)
	s.Equal(400, appErr.Code)
	s.productRepo.AssertNotCalled(s.T(), "AtomicDecrementBatch")
}

func (s *OrderServiceTestSuite) TestCreateOrder_InsufficientStock() {
	ctx := context.Background()
	product := entity.Product{ID: uuid.New(), Name: "Vestido", Price: decimal.NewFromInt(80), Quantity: 1}

	s.registerRepo.On("GetOpen", ctx).Return(openRegister(), nil).Once()
	s.productRepo.On("GetByIDs", ctx, mock.Anything).Return([]entity.Product{product}, nil).Once()
	s.productRepo.On("AtomicDecrementBatch", ctx, mock.Anything).Return([]uuid.UUID{product.ID}, nil).Once()

	_, err := s.service.CreateOrder(ctx, &service.CreateOrderInput{
		UserID:   uuid.New(),
		Items:    []service.OrderItemInput{{ProductID: product.ID, Quantity: 5}},
		Payments: []service.PaymentInput{{Method: "PIX", Amount: decimal.NewFromInt(400)}},
	})

	s.Require().Error(err)
	s.Equal(409, apperror.GetAppError(err).Code)
	s.orderRepo.AssertNotCalled(s.T(), "Create")
}

func (s *OrderServiceTestSuite) TestCreateOrder_CrediarioRequiresCustomer() {
	ctx := context.Background()
	product := entity.Product{ID: uuid.New(), Name: "Tênis", Price: decimal.NewFromInt(120)}

	s.registerRepo.On("GetOpen", ctx).Return(openRegister(), nil).Once()
	s.productRepo.On("GetByIDs", ctx, mock.Anything).Return([]entity.Product{product}, nil).Once()

	_, err := s.service.CreateOrder(ctx, &service.CreateOrderInput{
		UserID:   uuid.New(),
		Items:    []service.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		Payments: []service.PaymentInput{{Method: "CREDIARIO", Amount: decimal.NewFromInt(120)}},
	})

	s.Require().Error(err)
	s.Equal(400, apperror.GetAppError(err).Code)
}

func (s *OrderServiceTestSuite) TestCreateOrder_LegacyMethodAliasNormalized() {
	ctx := context.Background()
	product := entity.Product{ID: uuid.New(), Name: "Meia", Price: decimal.NewFromInt(10)}

	s.registerRepo.On("GetOpen", ctx).Return(openRegister(), nil).Once()
	s.productRepo.On("GetByIDs", ctx, mock.Anything).Return([]entity.Product{product}, nil).Once()
	s.productRepo.On("AtomicDecrementBatch", ctx, mock.Anything).Return([]uuid.UUID{}, nil).Once()
	s.orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order")).Return(nil).Once()

	order, err := s.service.CreateOrder(ctx, &service.CreateOrderInput{
		UserID:   uuid.New(),
		Items:    []service.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		Payments: []service.PaymentInput{{Method: "cash", Amount: decimal.NewFromInt(10)}},
	})

	s.Require().NoError(err)
	s.Require().Len(order.Payments, 1)
	s.Equal(enum.PaymentMethodDinheiro, order.Payments[0].Method)
}

func (s *OrderServiceTestSuite) TestCreateOrder_CrediarioCarriesOutstanding() {
	ctx := context.Background()
	product := entity.Product{ID: uuid.New(), Name: "Jaqueta", Price: decimal.NewFromInt(200), Quantity: 3}
	customer := &entity.Customer{ID: uuid.New(), Name: "Maria", CrediarioLimit: decimal.NewFromInt(500)}

	s.registerRepo.On("GetOpen", ctx).Return(openRegister(), nil).Once()
	s.customerRepo.On("GetByID", ctx, customer.ID).Return(customer, nil).Once()
	s.productRepo.On("GetByIDs", ctx, mock.Anything).Return([]entity.Product{product}, nil).Once()
	s.productRepo.On("AtomicDecrementBatch", ctx, mock.Anything).Return([]uuid.UUID{}, nil).Once()
	s.orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order")).Return(nil).Once()

	order, err := s.service.CreateOrder(ctx, &service.CreateOrderInput{
		UserID:     uuid.New(),
		CustomerID: &customer.ID,
		Items:      []service.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		Payments:   []service.PaymentInput{{Method: "CREDIARIO", Amount: decimal.NewFromInt(200)}},
	})

	s.Require().NoError(err)
	// The crediário leg is a receivable, not money received.
	s.True(order.PaidAmount().IsZero())
	s.True(order.OutstandingAmount().Equal(decimal.NewFromInt(200)))
	// Nothing reaches the treasury until the balance is settled.
	s.treasuryRepo.AssertNotCalled(s.T(), "Create")

	// Settling the same order works end to end.
	s.orderRepo.On("GetWithDetails", ctx, order.ID).Return(order, nil).Once()
	s.paymentRepo.On("Create", ctx, mock.MatchedBy(func(p *entity.Payment) bool {
		return p.Method == enum.PaymentMethodPix && p.Amount.Equal(decimal.NewFromInt(200))
	})).Return(nil).Once()
	s.treasuryRepo.On("Create", ctx, mock.MatchedBy(func(t *entity.TreasuryTransaction) bool {
		return t.Type == enum.TransactionTypeIn && t.Category == enum.CategoryVenda &&
			t.Amount.Equal(decimal.NewFromInt(200))
	})).Return(nil).Once()

	settled, err := s.service.SettleReceivable(ctx, &service.SettleReceivableInput{
		OrderID: order.ID,
		UserID:  uuid.New(),
		Method:  "PIX",
		Amount:  decimal.NewFromInt(200),
	})

	s.Require().NoError(err)
	s.True(settled.OutstandingAmount().IsZero())
	s.paymentRepo.AssertExpectations(s.T())
	s.treasuryRepo.AssertExpectations(s.T())
}

func (s *OrderServiceTestSuite) TestCancelOrder_RestocksAndOffsets() {
	ctx := context.Background()
	register := openRegister()
	productID := uuid.New()
	order := &entity.Order{
		ID:             uuid.New(),
		Number:         "PED-AB12CD34",
		CashRegisterID: &register.ID,
		Status:         enum.OrderStatusCompleted,
		Total:          decimal.NewFromInt(100),
		Items:          []entity.OrderItem{{ProductID: productID, Quantity: 2}},
		Payments: []entity.Payment{
			{Method: enum.PaymentMethodDinheiro, Amount: decimal.NewFromInt(40)},
			{Method: enum.PaymentMethodPix, Amount: decimal.NewFromInt(60)},
		},
	}

	s.orderRepo.On("GetWithDetails", ctx, order.ID).Return(order, nil).Once()
	s.productRepo.On("AtomicIncrementBatch", ctx, map[uuid.UUID]int{productID: 2}).Return(nil).Once()
	s.orderRepo.On("UpdateStatus", ctx, order.ID, enum.OrderStatusCancelled).Return(nil).Once()
	s.registerRepo.On("GetByID", ctx, register.ID).Return(register, nil).Once()
	// Cash leg refunds from the open drawer.
	s.cashTxRepo.On("Create", ctx, mock.MatchedBy(func(t *entity.CashTransaction) bool {
		return t.Type == enum.TransactionTypeOut &&
			t.Category == enum.CategoryReembolso &&
			t.Amount.Equal(decimal.NewFromInt(40))
	})).Return(nil).Once()
	// PIX leg refunds from the treasury.
	s.treasuryRepo.On("Create", ctx, mock.MatchedBy(func(t *entity.TreasuryTransaction) bool {
		return t.Type == enum.TransactionTypeOut &&
			t.Category == enum.CategoryReembolso &&
			t.Amount.Equal(decimal.NewFromInt(60))
	})).Return(nil).Once()

	cancelled, err := s.service.CancelOrder(ctx, order.ID, uuid.New())

	s.Require().NoError(err)
	s.Equal(enum.OrderStatusCancelled, cancelled.Status)
	s.cashTxRepo.AssertExpectations(s.T())
	s.treasuryRepo.AssertExpectations(s.T())
	s.productRepo.AssertExpectations(s.T())
}

func (s *OrderServiceTestSuite) TestCancelOrder_AlreadyCancelled() {
	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), Status: enum.OrderStatusCancelled}

	s.orderRepo.On("GetWithDetails", ctx, order.ID).Return(order, nil).Once()

	_, err := s.service.CancelOrder(ctx, order.ID, uuid.New())

	s.Require().Error(err)
	s.Equal(409, apperror.GetAppError(err).Code)
	s.productRepo.AssertNotCalled(s.T(), "AtomicIncrementBatch")
}

func (s *OrderServiceTestSuite) TestSettleReceivable() {
	ctx := context.Background()
	order := &entity.Order{
		ID:     uuid.New(),
		Number: "PED-11223344",
		Status: enum.OrderStatusCompleted,
		Total:  decimal.NewFromInt(200),
		Payments: []entity.Payment{
			{Method: enum.PaymentMethodDinheiro, Amount: decimal.NewFromInt(50)},
		},
	}

	s.orderRepo.On("GetWithDetails", ctx, order.ID).Return(order, nil).Once()
	s.paymentRepo.On("Create", ctx, mock.MatchedBy(func(p *entity.Payment) bool {
		return p.Method == enum.PaymentMethodPix && p.Amount.Equal(decimal.NewFromInt(150))
	})).Return(nil).Once()
	s.treasuryRepo.On("Create", ctx, mock.MatchedBy(func(t *entity.TreasuryTransaction) bool {
		return t.Type == enum.TransactionTypeIn && t.Category == enum.CategoryVenda
	})).Return(nil).Once()

	settled, err := s.service.SettleReceivable(ctx, &service.SettleReceivableInput{
		OrderID: order.ID,
		UserID:  uuid.New(),
		Method:  "PIX",
		Amount:  decimal.NewFromInt(150),
	})

	s.Require().NoError(err)
	s.True(settled.OutstandingAmount().IsZero())
	s.paymentRepo.AssertExpectations(s.T())
}

func (s *OrderServiceTestSuite) TestSettleReceivable_ExceedsOutstanding() {
	ctx := context.Background()
	order := &entity.Order{
		ID:     uuid.New(),
		Status: enum.OrderStatusCompleted,
		Total:  decimal.NewFromInt(100),
		Payments: []entity.Payment{
			{Method: enum.PaymentMethodDinheiro, Amount: decimal.NewFromInt(80)},
		},
	}

	s.orderRepo.On("GetWithDetails", ctx, order.ID).Return(order, nil).Once()

	_, err := s.service.SettleReceivable(ctx, &service.SettleReceivableInput{
		OrderID: order.ID,
		UserID:  uuid.New(),
		Method:  "DINHEIRO",
		Amount:  decimal.NewFromInt(50),
	})

	s.Require().Error(err)
	s.Equal(400, apperror.GetAppError(err).Code)
	s.paymentRepo.AssertNotCalled(s.T(), "Create")
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
