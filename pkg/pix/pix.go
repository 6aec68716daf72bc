// Package pix builds EMV-QR payloads for static PIX charges (the "copia e
// cola" string that clients render as a QR code).
package pix

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// EMV field IDs used in a static PIX payload.
const (
	idPayloadFormat    = "00"
	idMerchantAccount  = "26"
	idMerchantCategory = "52"
	idCurrency         = "53"
	idAmount           = "54"
	idCountryCode      = "58"
	idMerchantName     = "59"
	idMerchantCity     = "60"
	idAdditionalData   = "62"
	idCRC              = "63"

	// Sub-fields of the merchant account information template (26).
	idGUI         = "00"
	idKey         = "01"
	idDescription = "02"

	// Sub-field of the additional data template (62).
	idTxID = "05"
)

const (
	payloadFormatIndicator = "01"
	bcbGUI                 = "BR.GOV.BCB.PIX"
	merchantCategoryNone   = "0000"
	currencyBRL            = "986"
	countryBrazil          = "BR"
	defaultTxID            = "***"
)

// Maximum field lengths mandated by the BCB payload manual.
const (
	maxNameLen        = 25
	maxCityLen        = 15
	maxDescriptionLen = 40
	maxTxIDLen        = 25
)

// Charge describes a static PIX charge to be encoded.
type Charge struct {
	// Key is the merchant PIX key (phone, e-mail, CPF/CNPJ or random key).
	Key string
	// MerchantName is the receiver display name, truncated to 25 chars.
	MerchantName string
	// MerchantCity is the receiver city, truncated to 15 chars.
	MerchantCity string
	// TransactionID labels the charge: up to 25 alphanumeric characters;
	// "***" is used when empty.
	TransactionID string
	// Amount is optional; when nil the payer types the value.
	Amount *decimal.Decimal
	// Description is optional free text embedded in the merchant account
	// template, truncated to 40 chars.
	Description string
}

// Encode builds the EMV-QR payload string for the charge, terminated by a
// CRC-16/CCITT-FALSE checksum. The function is pure: identical charges
// always produce identical payloads.
func Encode(c Charge) (string, error) {
	key := strings.TrimSpace(c.Key)
	if key == "" {
		return "", fmt.Errorf("pix: merchant key is required")
	}
	name := sanitize(c.MerchantName, maxNameLen)
	if name == "" {
		return "", fmt.Errorf("pix: merchant name is required")
	}
	city := sanitize(c.MerchantCity, maxCityLen)
	if city == "" {
		return "", fmt.Errorf("pix: merchant city is required")
	}
	if c.Amount != nil && c.Amount.IsNegative() {
		return "", fmt.Errorf("pix: amount must not be negative")
	}

	account := field(idGUI, bcbGUI) + field(idKey, key)
	if desc := sanitize(c.Description, maxDescriptionLen); desc != "" {
		account += field(idDescription, desc)
	}

	txid := c.TransactionID
	if txid == "" {
		txid = defaultTxID
	} else if err := validateTxID(txid); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(field(idPayloadFormat, payloadFormatIndicator))
	b.WriteString(field(idMerchantAccount, account))
	b.WriteString(field(idMerchantCategory, merchantCategoryNone))
	b.WriteString(field(idCurrency, currencyBRL))
	if c.Amount != nil {
		b.WriteString(field(idAmount, c.Amount.StringFixed(2)))
	}
	b.WriteString(field(idCountryCode, countryBrazil))
	b.WriteString(field(idMerchantName, name))
	b.WriteString(field(idMerchantCity, city))
	b.WriteString(field(idAdditionalData, field(idTxID, txid)))

	// The CRC field tag and length ("6304") are part of the checksummed data.
	payload := b.String() + idCRC + "04"
	return fmt.Sprintf("%s%04X", payload, crc16CCITT(payload)), nil
}

// field encodes a single TLV field: 2-char ID, 2-digit zero-padded length
// of the value in characters, then the value itself.
func field(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, utf8.RuneCountInString(value), value)
}

// validateTxID enforces the BCB constraint on field 62-05: 1 to 25
// characters from [A-Za-z0-9].
func validateTxID(txid string) error {
	if len(txid) > maxTxIDLen {
		return fmt.Errorf("pix: transaction id exceeds %d characters", maxTxIDLen)
	}
	for _, r := range txid {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		default:
			return fmt.Errorf("pix: transaction id must be alphanumeric, got %q", r)
		}
	}
	return nil
}

var markStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// sanitize strips combining diacritical marks and truncates the result to
// max characters, so field lengths stay within the payload manual's limits.
func sanitize(s string, max int) string {
	stripped, _, err := transform.String(markStripper, s)
	if err != nil {
		stripped = s
	}
	stripped = strings.TrimSpace(stripped)
	if utf8.RuneCountInString(stripped) <= max {
		return stripped
	}
	return string([]rune(stripped)[:max])
}
