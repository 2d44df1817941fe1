package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a string amount into decimal.Decimal, tolerating the
// formatting noise seen in extracted statements: currency symbols, thousand
// separators, surrounding whitespace.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	amount := strings.TrimSpace(amountStr)
	amount = strings.ReplaceAll(amount, " ", "")
	amount = strings.ReplaceAll(amount, "$", "")
	amount = strings.ReplaceAll(amount, "USD", "")
	amount = strings.ReplaceAll(amount, ",", "")

	return decimal.NewFromString(amount)
}
