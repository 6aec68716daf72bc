package handler

import (
	"github.com/colorikids/retail-api/internal/application/service"
	"github.com/colorikids/retail-api/internal/presentation/http/dto/request"
	"github.com/colorikids/retail-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// PrinterHandler handles receipt printer HTTP requests
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// Status handles the printer status check
func (h *PrinterHandler) Status(c *gin.Context) {
	response.OK(c, "Printer status retrieved successfully", h.printerService.GetStatus())
}

// Test handles printing a test receipt
func (h *PrinterHandler) Test(c *gin.Context) {
	receipt, err := h.printerService.TestPrint()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Test receipt printed successfully", receipt)
}

// PrintReceipt handles printing an order receipt
func (h *PrinterHandler) PrintReceipt(c *gin.Context) {
	var req request.PrintReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	receipt, err := h.printerService.PrintOrderReceipt(c.Request.Context(), req.OrderID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt printed successfully", receipt)
}
