package pix

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseTLV re-parses a TLV sequence into an ordered list of (id, value)
// pairs, failing the test on any length mismatch.
func parseTLV(t *testing.T, payload string) [][2]string {
	t.Helper()
	var fields [][2]string
	rest := []rune(payload)
	for len(rest) > 0 {
		require.GreaterOrEqual(t, len(rest), 4, "dangling TLV header in %q", string(rest))
		id := string(rest[:2])
		length := int(rest[2]-'0')*10 + int(rest[3]-'0')
		require.GreaterOrEqual(t, len(rest), 4+length, "field %s overruns payload", id)
		fields = append(fields, [2]string{id, string(rest[4 : 4+length])})
		rest = rest[4+length:]
	}
	return fields
}

func fieldValue(fields [][2]string, id string) (string, bool) {
	for _, f := range fields {
		if f[0] == id {
			return f[1], true
		}
	}
	return "", false
}

func TestCRC16CCITTCheckValue(t *testing.T) {
	// Standard check value for CRC-16/CCITT-FALSE.
	assert.Equal(t, uint16(0x29B1), crc16CCITT("123456789"))
}

func TestEncodeWorkedExample(t *testing.T) {
	amount := decimal.NewFromFloat(10.5)
	out, err := Encode(Charge{
		Key:          "11999999999",
		MerchantName: "Loja Colorikids",
		MerchantCity: "Sao Paulo",
		Amount:       &amount,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "000201"), "payload format indicator")
	assert.Contains(t, out, "52040000", "merchant category code")
	assert.Contains(t, out, "5303986", "BRL currency")
	assert.Contains(t, out, "540510.50", "amount with two fraction digits")
	assert.Contains(t, out, "5802BR")
	assert.Contains(t, out, "5915Loja Colorikids")
	assert.Contains(t, out, "6009Sao Paulo")
	assert.Contains(t, out, "62070503***", "default transaction id")

	fields := parseTLV(t, out)
	account, ok := fieldValue(fields, "26")
	require.True(t, ok, "merchant account information present")
	sub := parseTLV(t, account)
	gui, _ := fieldValue(sub, "00")
	assert.Equal(t, "BR.GOV.BCB.PIX", gui)
	key, _ := fieldValue(sub, "01")
	assert.Equal(t, "11999999999", key)
}

func TestEncodeCRCTrailerRecomputes(t *testing.T) {
	amount := decimal.RequireFromString("123.45")
	cases := []Charge{
		{Key: "11999999999", MerchantName: "Loja Colorikids", MerchantCity: "Sao Paulo"},
		{Key: "loja@colorikids.com.br", MerchantName: "Colorikids", MerchantCity: "Osasco", Amount: &amount},
		{Key: "123e4567-e89b-12d3-a456-426614174000", MerchantName: "Açaí do Zé", MerchantCity: "São Paulo", TransactionID: "PED123", Description: "Pedido 123"},
	}
	for _, c := range cases {
		out, err := Encode(c)
		require.NoError(t, err)
		require.Greater(t, len(out), 4)

		body, trailer := out[:len(out)-4], out[len(out)-4:]
		assert.True(t, strings.HasSuffix(body, "6304"), "CRC tag precedes checksum")
		recomputed := crc16CCITT(body)
		assert.Equalf(t, trailer, strings.ToUpper(trailer), "CRC rendered uppercase")
		assert.Equalf(t, trailer, upperHex16(recomputed), "CRC mismatch for %+v", c)
	}
}

func upperHex16(v uint16) string {
	const hexdigits = "0123456789ABCDEF"
	return string([]byte{
		hexdigits[v>>12&0xF],
		hexdigits[v>>8&0xF],
		hexdigits[v>>4&0xF],
		hexdigits[v&0xF],
	})
}

func TestEncodeIsDeterministic(t *testing.T) {
	amount := decimal.NewFromInt(99)
	c := Charge{
		Key:           "11999999999",
		MerchantName:  "Loja Colorikids",
		MerchantCity:  "Sao Paulo",
		TransactionID: "VENDA42",
		Amount:        &amount,
		Description:   "Compra balcao",
	}
	first, err := Encode(c)
	require.NoError(t, err)
	second, err := Encode(c)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEncodeStripsDiacriticsAndTruncates(t *testing.T) {
	out, err := Encode(Charge{
		Key:          "11999999999",
		MerchantName: "Padaria São João e Confeitaria Ltda",
		MerchantCity: "São José dos Campos",
		Description:  "Observação muito longa sobre o pedido que excede o limite",
	})
	require.NoError(t, err)

	fields := parseTLV(t, out)
	name, _ := fieldValue(fields, "59")
	assert.Equal(t, 25, utf8.RuneCountInString(name))
	assert.Equal(t, "Padaria Sao Joao e Confei", name)

	city, _ := fieldValue(fields, "60")
	assert.Equal(t, 15, utf8.RuneCountInString(city))
	assert.Equal(t, "Sao Jose dos Ca", city)

	account, _ := fieldValue(fields, "26")
	desc, ok := fieldValue(parseTLV(t, account), "02")
	require.True(t, ok)
	assert.Equal(t, 40, utf8.RuneCountInString(desc))
	assert.NotContains(t, desc, "ç")
}

func TestEncodeOmitsAmountWhenAbsent(t *testing.T) {
	out, err := Encode(Charge{
		Key:          "11999999999",
		MerchantName: "Loja Colorikids",
		MerchantCity: "Sao Paulo",
	})
	require.NoError(t, err)

	fields := parseTLV(t, out)
	_, hasAmount := fieldValue(fields, "54")
	assert.False(t, hasAmount)
}

func TestEncodeAcceptsMaxLengthTxID(t *testing.T) {
	txid := strings.Repeat("Z", 25)
	out, err := Encode(Charge{
		Key:           "11999999999",
		MerchantName:  "Loja",
		MerchantCity:  "Sao Paulo",
		TransactionID: txid,
	})
	require.NoError(t, err)

	additional, ok := fieldValue(parseTLV(t, out), idAdditionalData)
	require.True(t, ok)
	got, ok := fieldValue(parseTLV(t, additional), idTxID)
	require.True(t, ok)
	assert.Equal(t, txid, got)
}

func TestEncodeValidation(t *testing.T) {
	negative := decimal.NewFromInt(-1)
	cases := []struct {
		name   string
		charge Charge
	}{
		{"missing key", Charge{MerchantName: "Loja", MerchantCity: "Sao Paulo"}},
		{"missing name", Charge{Key: "11999999999", MerchantCity: "Sao Paulo"}},
		{"missing city", Charge{Key: "11999999999", MerchantName: "Loja"}},
		{"negative amount", Charge{Key: "11999999999", MerchantName: "Loja", MerchantCity: "Sao Paulo", Amount: &negative}},
		{"txid with separator", Charge{Key: "11999999999", MerchantName: "Loja", MerchantCity: "Sao Paulo", TransactionID: "PED-123"}},
		{"txid too long", Charge{Key: "11999999999", MerchantName: "Loja", MerchantCity: "Sao Paulo", TransactionID: strings.Repeat("A", 26)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Encode(tc.charge)
			assert.Error(t, err)
		})
	}
}
