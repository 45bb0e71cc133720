package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders an amount as a US dollar display string with comma
// thousands grouping and two decimal places, e.g. "$1,234.50". Negative
// amounts render with a leading minus: "-$500.00". Used for tabular cells
// where zero must render as "$0.00" rather than blank.
func FormatCurrency(amount decimal.Decimal) string {
	neg := amount.IsNegative()
	fixed := amount.Abs().StringFixed(2)

	whole, frac, _ := strings.Cut(fixed, ".")
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// FormatCurrencyOrBlank renders like FormatCurrency but returns an empty
// string for zero, for entry-field contexts where "no entry yet" must look
// identical to unset.
func FormatCurrencyOrBlank(amount decimal.Decimal) string {
	if amount.IsZero() {
		return ""
	}
	return FormatCurrency(amount)
}

// ParseAmount extracts a monetary amount from free-form display text by
// stripping every character except digits, the decimal point and the minus
// sign. Anything that still fails to parse coerces to zero; malformed input
// is never surfaced as an error.
func ParseAmount(s string) decimal.Decimal {
	cleaned := stripNonNumeric(s)
	if cleaned == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseOptionalAmount is ParseAmount for fields where absence is meaningful:
// blank or malformed input yields nil instead of zero (optional liability
// numeric fields).
func ParseOptionalAmount(s string) *decimal.Decimal {
	cleaned := stripNonNumeric(s)
	if cleaned == "" {
		return nil
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil
	}
	return &d
}

func stripNonNumeric(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
