// Package money parses free-form price strings and computes document totals.
//
// Prices in the catalog are display text ("$2,999/year", "contact us"), not
// ledger entries. Parsing is therefore forgiving: anything without a numeric
// portion contributes zero. Arithmetic is carried to cent precision to keep
// formatted output free of binary floating-point drift.
package money

import (
	"math"
	"strconv"
	"strings"
)

// DefaultTaxRate is the flat tax rate applied to document totals.
const DefaultTaxRate = 0.10

// ParseAmount extracts the numeric value from a price string. Currency
// symbols and thousands separators are stripped, then the leading numeric
// substring is parsed. Returns 0 when no number is found.
func ParseAmount(price string) float64 {
	s := strings.TrimSpace(price)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")

	// Scan the leading numeric run: digits, at most one decimal point,
	// optional leading sign.
	end := 0
	seenDigit := false
	seenDot := false
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			seenDigit = true
		case r == '.' && !seenDot:
			seenDot = true
		case r == '-' && i == 0:
		default:
			goto done
		}
		end = i + 1
	}
done:
	if !seenDigit {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		return 0
	}
	return v
}

// Subtotal sums the parsed amounts of the given price strings. Unparsable
// entries contribute zero.
func Subtotal(prices []string) float64 {
	var total float64
	for _, p := range prices {
		total += ParseAmount(p)
	}
	return total
}

// WithTax returns amount increased by the given tax rate.
func WithTax(amount, rate float64) float64 {
	return amount * (1 + rate)
}

// Format renders an amount as display currency: dollar sign, comma thousands
// separators, cent precision. Whole amounts print without decimals ("$330"),
// fractional ones with two ("$1,234.50"). ParseAmount recovers the value to
// the cent.
func Format(amount float64) string {
	cents := int64(math.Round(amount * 100))
	neg := cents < 0
	if neg {
		cents = -cents
	}

	whole := cents / 100
	frac := cents % 100

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3 + 5)
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')

	rem := len(digits) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(digits[:rem])
	for i := rem; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}

	if frac != 0 {
		b.WriteByte('.')
		if frac < 10 {
			b.WriteByte('0')
		}
		b.WriteString(strconv.FormatInt(frac, 10))
	}
	return b.String()
}
