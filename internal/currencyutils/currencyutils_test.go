package currencyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"plain amount", "1234.56", "1234.56", false},
		{"comma grouped", "12,345.67", "12345.67", false},
		{"rupee prefix", "Rs. 12,345.67", "12345.67", false},
		{"rupee symbol", "₹450.00", "450", false},
		{"dollar with spaces", "$ 1,000.50", "1000.5", false},
		{"currency code", "INR 500", "500", false},
		{"integer amount", "999", "999", false},
		{"empty", "", "", true},
		{"symbols only", "Rs. ", "", true},
		{"not a number", "12.34.56", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			amount, err := CleanAmount(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, amount.String())
		})
	}
}

func TestFormatWithSymbol(t *testing.T) {
	amount := decimal.RequireFromString("12345.67")

	assert.Equal(t, "₹12345.67", FormatWithSymbol(amount, "INR"))
	assert.Equal(t, "$12345.67", FormatWithSymbol(amount, "USD"))
	assert.Equal(t, "€12345.67", FormatWithSymbol(amount, "EUR"))
	assert.Equal(t, "£12345.67", FormatWithSymbol(amount, "GBP"))
	assert.Equal(t, "₹12345.67", FormatWithSymbol(amount, "CHF"))
}

func TestFormatWithSymbolRounding(t *testing.T) {
	amount := decimal.RequireFromString("450")
	assert.Equal(t, "₹450.00", FormatWithSymbol(amount, "INR"))
}
