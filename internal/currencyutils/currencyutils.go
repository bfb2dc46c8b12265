// Package currencyutils provides amount cleaning and display formatting for
// values captured from statements.
package currencyutils

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

// Symbols maps ISO currency codes to their display symbols.
var Symbols = map[string]string{
	"INR": "₹",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

var amountNoise = regexp.MustCompile(`[₹$€£,\s]|Rs\.?|INR|USD|EUR|GBP`)

// CleanAmount strips currency symbols, codes, thousands separators and
// whitespace from a captured amount and parses the remainder as a decimal.
func CleanAmount(amountStr string) (decimal.Decimal, error) {
	if amountStr == "" {
		return decimal.Zero, fmt.Errorf("empty amount string")
	}

	cleaned := amountNoise.ReplaceAllString(amountStr, "")
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("no numeric content in amount '%s'", amountStr)
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// FormatWithSymbol renders an amount with the symbol for the given currency
// code, two decimal places. Unknown codes fall back to the rupee symbol,
// matching the tool's primary issuer set.
func FormatWithSymbol(amount decimal.Decimal, currency string) string {
	symbol, ok := Symbols[currency]
	if !ok {
		symbol = Symbols["INR"]
	}
	return symbol + amount.StringFixed(2)
}
