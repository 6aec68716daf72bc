package handler

import (
	"time"

	"github.com/colorikids/retail-api/internal/application/service"
	"github.com/colorikids/retail-api/internal/domain/enum"
	"github.com/colorikids/retail-api/internal/domain/repository"
	"github.com/colorikids/retail-api/internal/presentation/http/dto/request"
	"github.com/colorikids/retail-api/internal/presentation/http/dto/response"
	"github.com/colorikids/retail-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	pixService   *service.PixService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, pixService *service.PixService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		pixService:   pixService,
	}
}

// Create handles POS sale creation
func (h *OrderHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	items := make([]service.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	payments := make([]service.PaymentInput, 0, len(req.Payments))
	for _, payment := range req.Payments {
		payments = append(payments, service.PaymentInput{
			Method: payment.Method,
			Amount: payment.Amount,
		})
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), &service.CreateOrderInput{
		UserID:     *userID,
		CustomerID: req.CustomerID,
		Items:      items,
		Payments:   payments,
		Discount:   req.Discount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Order created successfully", order)
}

// List handles listing orders
func (h *OrderHandler) List(c *gin.Context) {
	var req request.OrderFilterRequest
	_ = c.ShouldBindQuery(&req)

	params := &repository.OrderFilterParams{
		Pagination: &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
		Search:     req.Search,
		SortBy:     req.SortBy,
		SortOrder:  req.SortOrder,
	}
	if req.Status != "" {
		status := enum.OrderStatus(req.Status)
		if !status.Valid() {
			response.BadRequest(c, "Invalid order status")
			return
		}
		params.Status = &status
	}
	if req.CustomerID != "" {
		if customerID, err := uuid.Parse(req.CustomerID); err == nil {
			params.CustomerID = &customerID
		}
	}
	if req.RegisterID != "" {
		if registerID, err := uuid.Parse(req.RegisterID); err == nil {
			params.RegisterID = &registerID
		}
	}
	if req.StartDate != "" {
		start, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			response.BadRequest(c, "Invalid start_date, expected YYYY-MM-DD")
			return
		}
		params.StartDate = &start
	}
	if req.EndDate != "" {
		end, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			response.BadRequest(c, "Invalid end_date, expected YYYY-MM-DD")
			return
		}
		end = end.Add(24*time.Hour - time.Nanosecond)
		params.EndDate = &end
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Get handles retrieving an order by ID
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order retrieved successfully", order)
}

// Cancel handles order cancellation
func (h *OrderHandler) Cancel(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.CancelOrder(c.Request.Context(), id, *userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order cancelled successfully", order)
}

// PixCharge handles generating a PIX copy-and-paste payload for an order
func (h *OrderHandler) PixCharge(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	charge, err := h.pixService.ChargeForOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "PIX charge generated successfully", charge)
}

// ListReceivables handles listing orders with an outstanding crediário balance
func (h *OrderHandler) ListReceivables(c *gin.Context) {
	result, err := h.orderService.ListReceivables(c.Request.Context(), GetPaginationParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Receivables retrieved successfully", result)
}

// SettleReceivable handles recording a payment against an outstanding order
func (h *OrderHandler) SettleReceivable(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	orderID, err := uuid.Parse(c.Param("orderID"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.SettleReceivableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.SettleReceivable(c.Request.Context(), &service.SettleReceivableInput{
		OrderID: orderID,
		UserID:  *userID,
		Method:  req.Method,
		Amount:  req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receivable settled successfully", order)
}
