package entity

import "github.com/shopspring/decimal"

// ReceiptHeader holds the store header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	CNPJ      string `json:"cnpj,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

// ReceiptPayment is one payment leg as printed on the receipt.
type ReceiptPayment struct {
	Method string          `json:"method"`
	Amount decimal.Decimal `json:"amount"`
}

// Receipt is a value object representing a printable sale receipt. It is
// composed from order data at print time, never persisted.
type Receipt struct {
	Header   ReceiptHeader    `json:"header"`
	Number   string           `json:"number"`
	Date     string           `json:"date"`
	Cashier  string           `json:"cashier,omitempty"`
	Customer string           `json:"customer,omitempty"`
	Items    []ReceiptItem    `json:"items"`
	Discount decimal.Decimal  `json:"discount"`
	Total    decimal.Decimal  `json:"total"`
	Payments []ReceiptPayment `json:"payments"`
	// PixPayload, when set, is rendered as a QR code at the bottom.
	PixPayload string `json:"pix_payload,omitempty"`
}
