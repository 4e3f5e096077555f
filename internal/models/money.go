package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a string amount into a decimal, tolerating currency
// symbols and thousands separators. Invalid input yields zero rather than an
// error: amounts arrive from CLI flags and config files where a soft default
// beats aborting the whole command.
func ParseAmount(s string) decimal.Decimal {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FormatUSD renders an amount as a dollar string with two decimal places.
func FormatUSD(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// FormatPercent renders a ratio (0.284) as a percentage with one decimal
// place (28.4). The one-decimal precision is used everywhere utilization is
// shown, so card summaries stay byte-stable.
func FormatPercent(ratio decimal.Decimal) string {
	return ratio.Mul(decimal.NewFromInt(100)).StringFixed(1)
}
