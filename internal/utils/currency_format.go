package utils

import (
	"github.com/shopspring/decimal"
)

// CurrencyPrecision is the number of decimal places used when rendering amounts.
const CurrencyPrecision = 2

// FormatWithPrecision formats an amount with the given precision, padding with zeros.
// Example: amount 12.3456 with precision 2 returns "12.35"
// Example: amount 100 with precision 2 returns "100.00"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatAmount formats an amount with the standard currency precision.
func FormatAmount(amount decimal.Decimal) string {
	return FormatWithPrecision(amount, CurrencyPrecision)
}

// FormatWithSymbol prefixes the formatted amount with a currency symbol, e.g. "R$ 70.00".
// An empty symbol returns the bare amount.
func FormatWithSymbol(symbol string, amount decimal.Decimal) string {
	if symbol == "" {
		return FormatAmount(amount)
	}
	return symbol + " " + FormatAmount(amount)
}
