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

// TreasuryHandler handles treasury ledger HTTP requests
type TreasuryHandler struct {
	treasuryService *service.TreasuryService
}

// NewTreasuryHandler creates a new treasury handler
func NewTreasuryHandler(treasuryService *service.TreasuryService) *TreasuryHandler {
	return &TreasuryHandler{treasuryService: treasuryService}
}

// Create handles recording a manual ledger entry
func (h *TreasuryHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req request.CreateTreasuryTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var date time.Time
	if req.Date != "" {
		date, _ = time.Parse("2006-01-02", req.Date)
	}

	transaction, err := h.treasuryService.CreateTransaction(c.Request.Context(), &service.CreateTransactionInput{
		UserID:      *userID,
		Description: req.Description,
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		Date:        date,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Transaction created successfully", transaction)
}

// List handles listing ledger entries
func (h *TreasuryHandler) List(c *gin.Context) {
	var req request.TreasuryFilterRequest
	_ = c.ShouldBindQuery(&req)

	params := &repository.TreasuryFilterParams{
		Pagination: &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
	}
	if req.Type != "" {
		txType := enum.TransactionType(req.Type)
		if !txType.Valid() {
			response.BadRequest(c, "Invalid transaction type")
			return
		}
		params.Type = &txType
	}
	if req.Category != "" {
		category := enum.TransactionCategory(req.Category)
		if !category.Valid() {
			response.BadRequest(c, "Invalid transaction category")
			return
		}
		params.Category = &category
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

	result, err := h.treasuryService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Transactions retrieved successfully", result)
}

// Get handles retrieving a ledger entry by ID
func (h *TreasuryHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	transaction, err := h.treasuryService.GetTransaction(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Transaction retrieved successfully", transaction)
}

// Correct handles posting an offsetting correction for a ledger entry
func (h *TreasuryHandler) Correct(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	var req request.CorrectTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	correction, err := h.treasuryService.CorrectTransaction(c.Request.Context(), id, *userID, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Correction posted successfully", correction)
}

// Summary handles the revenue summary for a date range
func (h *TreasuryHandler) Summary(c *gin.Context) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := now

	if raw := c.Query("start_date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(c, "Invalid start_date, expected YYYY-MM-DD")
			return
		}
		start = parsed
	}
	if raw := c.Query("end_date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(c, "Invalid end_date, expected YYYY-MM-DD")
			return
		}
		end = parsed.Add(24*time.Hour - time.Nanosecond)
	}

	summary, err := h.treasuryService.GetSummary(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Treasury summary retrieved successfully", summary)
}
