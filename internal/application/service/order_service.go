package service

import (
	"context"
	"fmt"
	"time"

	"github.com/colorikids/retail-api/internal/domain/entity"
	"github.com/colorikids/retail-api/internal/domain/enum"
	"github.com/colorikids/retail-api/internal/domain/repository"
	"github.com/colorikids/retail-api/pkg/apperror"
	"github.com/colorikids/retail-api/pkg/pagination"
	"github.com/colorikids/retail-api/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderService handles the POS sale workflow: creating orders with split
// payments, cancelling with restock, and crediário receivables.
type OrderService struct {
	orderRepo    repository.OrderRepository
	paymentRepo  repository.PaymentRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	registerRepo repository.CashRegisterRepository
	cashTxRepo   repository.CashTransactionRepository
	treasuryRepo repository.TreasuryRepository
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	registerRepo repository.CashRegisterRepository,
	cashTxRepo repository.CashTransactionRepository,
	treasuryRepo repository.TreasuryRepository,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		paymentRepo:  paymentRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		registerRepo: registerRepo,
		cashTxRepo:   cashTxRepo,
		treasuryRepo: treasuryRepo,
	}
}

// OrderItemInput is one line of a sale
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// PaymentInput is one leg of a possibly split payment
type PaymentInput struct {
	Method string
	Amount decimal.Decimal
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	UserID     uuid.UUID
	CustomerID *uuid.UUID
	Items      []OrderItemInput
	Payments   []PaymentInput
	Discount   decimal.Decimal
}

// CreateOrder records a POS sale: validates the open register, prices the
// items from the catalog, checks the payment split against the total,
// atomically decrements stock and persists the order with its items and
// payment legs. Non-cash legs are posted to the treasury immediately; cash
// stays attributed to the drawer until the register closes.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Order must contain at least one item")
	}
	if input.Discount.IsNegative() {
		return nil, apperror.NewBadRequestError("Discount cannot be negative")
	}

	register, err := s.registerRepo.GetOpen(ctx)
	if err != nil {
		return nil, err
	}
	if register == nil {
		return nil, apperror.ErrNoOpenRegister
	}

	var customer *entity.Customer
	if input.CustomerID != nil {
		customer, err = s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	items, total, err := s.buildItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}
	total = total.Sub(input.Discount)
	if total.IsNegative() {
		return nil, apperror.NewBadRequestError("Discount exceeds order total")
	}

	payments, err := buildPayments(input.Payments, total, customer)
	if err != nil {
		return nil, err
	}

	decrements := make(map[uuid.UUID]int, len(input.Items))
	for _, item := range input.Items {
		decrements[item.ProductID] += item.Quantity
	}
	failedIDs, err := s.productRepo.AtomicDecrementBatch(ctx, decrements)
	if err != nil {
		return nil, err
	}
	if len(failedIDs) > 0 {
		return nil, apperror.NewConflictError(fmt.Sprintf("Insufficient stock for %d product(s)", len(failedIDs)))
	}

	order := &entity.Order{
		Number:         utils.GenerateOrderNumber(),
		UserID:         input.UserID,
		CustomerID:     input.CustomerID,
		CashRegisterID: &register.ID,
		Status:         enum.OrderStatusCompleted,
		Total:          total,
		Discount:       input.Discount,
		Items:          items,
		Payments:       payments,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		// Put the stock back; the sale never happened.
		_ = s.productRepo.AtomicIncrementBatch(ctx, decrements)
		return nil, err
	}

	s.postSaleToTreasury(ctx, order)
	return order, nil
}

// buildItems prices the requested lines from the catalog.
func (s *OrderService) buildItems(ctx context.Context, inputs []OrderItemInput) ([]entity.OrderItem, decimal.Decimal, error) {
	ids := make([]uuid.UUID, 0, len(inputs))
	for _, item := range inputs {
		if item.Quantity <= 0 {
			return nil, decimal.Zero, apperror.NewBadRequestError("Item quantity must be positive")
		}
		ids = append(ids, item.ProductID)
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, decimal.Zero, err
	}
	byID := make(map[uuid.UUID]entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]entity.OrderItem, 0, len(inputs))
	total := decimal.Zero
	for _, item := range inputs {
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, decimal.Zero, apperror.NewNotFoundError("Product")
		}
		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		items = append(items, entity.OrderItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
			Total:     lineTotal,
		})
		total = total.Add(lineTotal)
	}
	return items, total, nil
}

// buildPayments normalizes and validates the payment split. The legs must
// sum exactly to the order total; crediário legs require a customer.
func buildPayments(inputs []PaymentInput, total decimal.Decimal, customer *entity.Customer) ([]entity.Payment, error) {
	if len(inputs) == 0 {
		return nil, apperror.NewBadRequestError("Order must include at least one payment")
	}

	payments := make([]entity.Payment, 0, len(inputs))
	paid := decimal.Zero
	crediario := decimal.Zero
	for _, p := range inputs {
		method := enum.NormalizeMethod(p.Method)
		if !method.Valid() {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Unknown payment method %q", p.Method))
		}
		if !p.Amount.IsPositive() {
			return nil, apperror.NewBadRequestError("Payment amount must be positive")
		}
		if method == enum.PaymentMethodCrediario {
			crediario = crediario.Add(p.Amount)
		}
		payments = append(payments, entity.Payment{Method: method, Amount: p.Amount})
		paid = paid.Add(p.Amount)
	}

	if !paid.Equal(total) {
		return nil, apperror.NewBadRequestError("Payments must sum to the order total")
	}

	if crediario.IsPositive() {
		if customer == nil {
			return nil, apperror.NewBadRequestError("Crediário sales require a customer")
		}
		if crediario.GreaterThan(customer.CrediarioLimit) {
			return nil, apperror.NewConflictError("Crediário limit exceeded")
		}
	}
	return payments, nil
}

// postSaleToTreasury records IN entries for the legs that settle outside
// the drawer. DINHEIRO stays in the drawer (moved at register close as an
// internal transfer) and CREDIARIO is money not yet received; both are
// skipped. Posting failures do not fail the sale.
func (s *OrderService) postSaleToTreasury(ctx context.Context, order *entity.Order) {
	for _, p := range order.Payments {
		if p.Method.IsCash() || p.Method == enum.PaymentMethodCrediario {
			continue
		}
		entry := &entity.TreasuryTransaction{
			Description: fmt.Sprintf("Venda %s (%s)", order.Number, p.Method),
			Amount:      p.Amount,
			Type:        enum.TransactionTypeIn,
			Category:    enum.CategoryVenda,
			Date:        time.Now(),
			CreatedBy:   order.UserID,
		}
		_ = s.treasuryRepo.Create(ctx, entry)
	}
}

// GetOrder retrieves an order with its items, payments and customer
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists orders with filtering and pagination
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// CancelOrder cancels a sale: stock is restored and every money movement
// the sale produced is offset with a new entry. Payment rows are never
// deleted; refunds are represented by OUT entries referencing the order.
func (s *OrderService) CancelOrder(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if order.Status == enum.OrderStatusCancelled {
		return nil, apperror.NewConflictError("Order is already cancelled")
	}

	increments := make(map[uuid.UUID]int, len(order.Items))
	for _, item := range order.Items {
		increments[item.ProductID] += item.Quantity
	}
	if err := s.productRepo.AtomicIncrementBatch(ctx, increments); err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, enum.OrderStatusCancelled); err != nil {
		return nil, err
	}
	order.Status = enum.OrderStatusCancelled

	s.offsetCancelledSale(ctx, order, userID)
	return order, nil
}

// offsetCancelledSale writes the refund entries for a cancelled sale. Cash
// legs come out of the drawer while the order's register is still open;
// everything else (and cash for closed registers) is refunded from the
// treasury. Crediário legs moved no money, so nothing offsets them.
func (s *OrderService) offsetCancelledSale(ctx context.Context, order *entity.Order, userID uuid.UUID) {
	legs := order.Payments
	if len(legs) == 0 && order.PaymentMethod != "" {
		// Legacy single-method order: refund the full total.
		legs = []entity.Payment{{
			Method: enum.NormalizeMethod(order.PaymentMethod),
			Amount: order.Total,
		}}
	}

	var register *entity.CashRegister
	if order.CashRegisterID != nil {
		register, _ = s.registerRepo.GetByID(ctx, *order.CashRegisterID)
	}

	for _, p := range legs {
		if p.Method == enum.PaymentMethodCrediario {
			continue
		}
		if p.Method.IsCash() && register != nil && register.IsOpen() {
			_ = s.cashTxRepo.Create(ctx, &entity.CashTransaction{
				CashRegisterID: register.ID,
				Type:           enum.TransactionTypeOut,
				Category:       enum.CategoryReembolso,
				Amount:         p.Amount,
				Description:    fmt.Sprintf("Estorno venda %s", order.Number),
				CreatedBy:      userID,
			})
			continue
		}
		_ = s.treasuryRepo.Create(ctx, &entity.TreasuryTransaction{
			Description: fmt.Sprintf("Estorno venda %s (%s)", order.Number, p.Method),
			Amount:      p.Amount,
			Type:        enum.TransactionTypeOut,
			Category:    enum.CategoryReembolso,
			Date:        time.Now(),
			CreatedBy:   userID,
		})
	}
}

// ListReceivables lists completed orders with an outstanding crediário
// balance.
func (s *OrderService) ListReceivables(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.ListReceivables(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// SettleReceivableInput represents a crediário settlement
type SettleReceivableInput struct {
	OrderID uuid.UUID
	UserID  uuid.UUID
	Method  string
	Amount  decimal.Decimal
}

// SettleReceivable records a payment against an order's outstanding
// crediário balance and posts the income to the treasury.
func (s *OrderService) SettleReceivable(ctx context.Context, input *SettleReceivableInput) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithDetails(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if order.Status != enum.OrderStatusCompleted {
		return nil, apperror.NewConflictError("Only completed orders carry receivables")
	}

	outstanding := order.OutstandingAmount()
	if outstanding.IsZero() {
		return nil, apperror.NewConflictError("Order has no outstanding balance")
	}
	if !input.Amount.IsPositive() {
		return nil, apperror.NewBadRequestError("Settlement amount must be positive")
	}
	if input.Amount.GreaterThan(outstanding) {
		return nil, apperror.NewBadRequestError("Settlement exceeds the outstanding balance")
	}

	method := enum.NormalizeMethod(input.Method)
	if !method.Valid() || method == enum.PaymentMethodCrediario {
		return nil, apperror.NewBadRequestError(fmt.Sprintf("Invalid settlement method %q", input.Method))
	}

	payment := &entity.Payment{
		OrderID: order.ID,
		Method:  method,
		Amount:  input.Amount,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}
	order.Payments = append(order.Payments, *payment)

	_ = s.treasuryRepo.Create(ctx, &entity.TreasuryTransaction{
		Description: fmt.Sprintf("Recebimento crediário %s (%s)", order.Number, method),
		Amount:      input.Amount,
		Type:        enum.TransactionTypeIn,
		Category:    enum.CategoryVenda,
		Date:        time.Now(),
		CreatedBy:   input.UserID,
	})

	return order, nil
}
