package service

import (
	"context"
	"fmt"
	"log"

	"github.com/colorikids/retail-api/internal/domain/entity"
	"github.com/colorikids/retail-api/internal/domain/repository"
	"github.com/colorikids/retail-api/pkg/apperror"
	"github.com/colorikids/retail-api/pkg/printer"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PrinterService handles receipt formatting and thermal printing.
type PrinterService struct {
	printer      printer.Printer
	orderRepo    repository.OrderRepository
	settingsRepo repository.SettingsRepository
	userRepo     repository.UserRepository
	pixService   *PixService
	printerType  string
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	orderRepo repository.OrderRepository,
	settingsRepo repository.SettingsRepository,
	userRepo repository.UserRepository,
	pixService *PixService,
	printerType string,
) *PrinterService {
	return &PrinterService{
		printer:      p,
		orderRepo:    orderRepo,
		settingsRepo: settingsRepo,
		userRepo:     userRepo,
		pixService:   pixService,
		printerType:  printerType,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a test page to the printer. Returns the receipt data so
// the handler can return it as JSON when no printer is configured.
func (s *PrinterService) TestPrint() (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: "TESTE DE IMPRESSORA",
			Address:   "Rua de Teste, 1",
		},
		Number:  "TEST-001",
		Date:    "01/01/2006 00:00",
		Cashier: "Sistema",
		Items: []entity.ReceiptItem{
			{Name: "Item de teste 1", Quantity: 1, UnitPrice: decimal.NewFromInt(10), Total: decimal.NewFromInt(10)},
			{Name: "Item de teste 2", Quantity: 2, UnitPrice: decimal.NewFromInt(5), Total: decimal.NewFromInt(10)},
		},
		Discount: decimal.Zero,
		Total:    decimal.NewFromInt(20),
		Payments: []entity.ReceiptPayment{
			{Method: "DINHEIRO", Amount: decimal.NewFromInt(20)},
		},
	}

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}
	return receipt, nil
}

// PrintOrderReceipt fetches an order with details and prints its receipt.
// When the order still has an outstanding balance, the PIX payload for the
// remainder is rendered as a QR code at the bottom.
func (s *PrinterService) PrintOrderReceipt(ctx context.Context, orderID uuid.UUID) (*entity.Receipt, error) {
	order, err := s.orderRepo.GetWithDetails(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	receipt := &entity.Receipt{
		Number:   order.Number,
		Date:     order.CreatedAt.Format("02/01/2006 15:04"),
		Discount: order.Discount,
		Total:    order.Total,
	}

	settings, _ := s.settingsRepo.Get(ctx)
	if settings != nil {
		receipt.Header.StoreName = settings.StoreName
		if settings.Address != nil {
			receipt.Header.Address = *settings.Address
		}
		if settings.Phone != nil {
			receipt.Header.Phone = *settings.Phone
		}
		if settings.CNPJ != nil {
			receipt.Header.CNPJ = *settings.CNPJ
		}
	}

	if cashier, _ := s.userRepo.GetByID(ctx, order.UserID); cashier != nil {
		receipt.Cashier = cashier.Name
	}
	if order.Customer != nil {
		receipt.Customer = order.Customer.Name
	}

	for _, item := range order.Items {
		name := item.Product.Name
		if name == "" {
			name = "Produto"
		}
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:      name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.Total,
		})
	}
	for _, p := range order.Payments {
		receipt.Payments = append(receipt.Payments, entity.ReceiptPayment{
			Method: string(p.Method),
			Amount: p.Amount,
		})
	}

	if order.OutstandingAmount().IsPositive() {
		if charge, err := s.pixService.ChargeForOrder(ctx, order.ID); err == nil {
			receipt.PixPayload = charge.Payload
		}
	}

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (order %s): %v", orderID, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}
	return receipt, nil
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(32) // 58mm paper = 32 chars

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}
	if r.Header.CNPJ != "" {
		doc.TextF("CNPJ: %s", r.Header.CNPJ)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	doc.KeyValue("Pedido:", r.Number).
		KeyValue("Data:", r.Date)

	if r.Cashier != "" {
		doc.KeyValue("Operador:", r.Cashier)
	}
	if r.Customer != "" {
		doc.KeyValue("Cliente:", r.Customer)
	}

	doc.Separator('-')

	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, printer.Money(item.Total.StringFixed(2)))
		if item.Quantity > 1 {
			doc.TextF("  @ %s cada", printer.Money(item.UnitPrice.StringFixed(2)))
		}
	}

	doc.Separator('-')

	if r.Discount.IsPositive() {
		doc.KeyValue("Desconto:", printer.Money(r.Discount.StringFixed(2)))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", printer.Money(r.Total.StringFixed(2))).
		SetBold(false)

	for _, p := range r.Payments {
		doc.KeyValue(p.Method+":", printer.Money(p.Amount.StringFixed(2)))
	}

	doc.Separator('-')

	if r.PixPayload != "" {
		doc.SetAlign(printer.AlignCenter).
			Text("Pague com PIX:").
			QRCode(r.PixPayload, 4).
			SetAlign(printer.AlignLeft)
	}

	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Obrigado pela preferencia!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
