package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/colorikids/retail-api/internal/application/service"
	"github.com/colorikids/retail-api/internal/config"
	"github.com/colorikids/retail-api/internal/domain/entity"
	"github.com/colorikids/retail-api/internal/domain/enum"
	"github.com/colorikids/retail-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PixServiceTestSuite struct {
	suite.Suite
	orderRepo    *MockOrderRepository
	settingsRepo *MockSettingsRepository
	service      *service.PixService
}

func (s *PixServiceTestSuite) SetupTest() {
	s.orderRepo = new(MockOrderRepository)
	s.settingsRepo = new(MockSettingsRepository)
	s.service = service.NewPixService(s.orderRepo, s.settingsRepo, config.PixConfig{
		Key:          "11999998888",
		MerchantName: "Loja Colorikids",
		MerchantCity: "Sao Paulo",
	})
}

func (s *PixServiceTestSuite) TestChargeForOrder_OutstandingAmount() {
	ctx := context.Background()
	order := &entity.Order{
		ID:     uuid.New(),
		Number: "PED-AB12CD34",
		Status: enum.OrderStatusCompleted,
		Total:  decimal.NewFromInt(100),
		Payments: []entity.Payment{
			{Method: enum.PaymentMethodDinheiro, Amount: decimal.NewFromInt(40)},
		},
	}

	s.orderRepo.On("GetWithDetails", ctx, order.ID).Return(order, nil).Once()
	s.settingsRepo.On("Get", ctx).Return(nil, nil).Once()

	charge, err := s.service.ChargeForOrder(ctx, order.ID)

	s.Require().NoError(err)
	s.Equal("60.00", charge.Amount)
	s.Contains(charge.Payload, "540560.00")
	s.Contains(charge.Payload, "5915Loja Colorikids")
	// Hyphen stripped from the order number for the txid field.
	s.Contains(charge.Payload, "PEDAB12CD34")
	s.NotContains(charge.Payload, "PED-AB12CD34")
	s.True(strings.HasPrefix(charge.Payload, "000201"))
}

func (s *PixServiceTestSuite) TestChargeForOrder_SettingsOverrideConfig() {
	ctx := context.Background()
	order := &entity.Order{
		ID:     uuid.New(),
		Number: "PED-00000001",
		Status: enum.OrderStatusPending,
		Total:  decimal.NewFromInt(25),
	}
	settings := &entity.StoreSettings{
		StoreName:       "Colorikids",
		PixKey:          "loja@colorikids.com.br",
		PixMerchantName: "Colorikids Moda",
		PixMerchantCity: "Campinas",
	}

	s.orderRepo.On("GetWithDetails", ctx, order.ID).Return(order, nil).Once()
	s.settingsRepo.On("Get", ctx).Return(settings, nil).Once()

	charge, err := s.service.ChargeForOrder(ctx, order.ID)

	s.Require().NoError(err)
	s.Contains(charge.Payload, "loja@colorikids.com.br")
	s.Contains(charge.Payload, "Colorikids Moda")
	s.Contains(charge.Payload, "Campinas")
}

func (s *PixServiceTestSuite) TestChargeForOrder_FullyPaid() {
	ctx := context.Background()
	order := &entity.Order{
		ID:     uuid.New(),
		Number: "PED-00000002",
		Status: enum.OrderStatusCompleted,
		Total:  decimal.NewFromInt(50),
		Payments: []entity.Payment{
			{Method: enum.PaymentMethodPix, Amount: decimal.NewFromInt(50)},
		},
	}

	s.orderRepo.On("GetWithDetails", ctx, order.ID).Return(order, nil).Once()

	_, err := s.service.ChargeForOrder(ctx, order.ID)

	s.Require().Error(err)
	s.Equal(409, apperror.GetAppError(err).Code)
}

func (s *PixServiceTestSuite) TestChargeForOrder_Cancelled() {
	ctx := context.Background()
	order := &entity.Order{
		ID:     uuid.New(),
		Status: enum.OrderStatusCancelled,
		Total:  decimal.NewFromInt(50),
	}

	s.orderRepo.On("GetWithDetails", ctx, order.ID).Return(order, nil).Once()

	_, err := s.service.ChargeForOrder(ctx, order.ID)

	s.Require().Error(err)
	s.Equal(409, apperror.GetAppError(err).Code)
}

func TestPixServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PixServiceTestSuite))
}
