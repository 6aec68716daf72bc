package handler

import (
	"github.com/colorikids/retail-api/internal/application/service"
	"github.com/colorikids/retail-api/internal/presentation/http/dto/request"
	"github.com/colorikids/retail-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterHandler handles cash register HTTP requests
type RegisterHandler struct {
	registerService *service.RegisterService
}

// NewRegisterHandler creates a new register handler
func NewRegisterHandler(registerService *service.RegisterService) *RegisterHandler {
	return &RegisterHandler{registerService: registerService}
}

// Open handles opening a register session
func (h *RegisterHandler) Open(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req request.OpenRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	register, err := h.registerService.OpenRegister(c.Request.Context(), *userID, req.InitialAmount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Register opened successfully", register)
}

// Close handles closing a register session with the counted drawer amount
func (h *RegisterHandler) Close(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid register ID")
		return
	}

	var req request.CloseRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	register, err := h.registerService.CloseRegister(c.Request.Context(), id, *userID, req.FinalAmount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Register closed successfully", register)
}

// Current handles retrieving the currently open register
func (h *RegisterHandler) Current(c *gin.Context) {
	register, err := h.registerService.GetCurrentRegister(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Current register retrieved successfully", register)
}

// Get handles retrieving a register by ID
func (h *RegisterHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid register ID")
		return
	}

	register, err := h.registerService.GetRegister(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Register retrieved successfully", register)
}

// List handles listing register sessions
func (h *RegisterHandler) List(c *gin.Context) {
	result, err := h.registerService.ListRegisters(c.Request.Context(), GetPaginationParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Registers retrieved successfully", result)
}

// Summary handles the register reconciliation summary
func (h *RegisterHandler) Summary(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid register ID")
		return
	}

	summary, err := h.registerService.GetSummary(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Register summary retrieved successfully", summary)
}

// AddTransaction handles recording a manual drawer movement
func (h *RegisterHandler) AddTransaction(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid register ID")
		return
	}

	var req request.CashTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	transaction, err := h.registerService.AddTransaction(c.Request.Context(), &service.AddTransactionInput{
		RegisterID:  id,
		UserID:      *userID,
		Type:        req.Type,
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Transaction recorded successfully", transaction)
}
