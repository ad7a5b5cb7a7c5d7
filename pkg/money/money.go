// Package money formats integer minor-unit amounts for display.
package money

import (
	"strconv"
	"strings"
)

// FormatSYP formats an integer amount of Syrian pounds like "12,500 ل.س".
// Uses comma as thousands separator.
func FormatSYP(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.FormatInt(amount, 10)

	var b strings.Builder
	// Pre-allocate: sign + digits + separators + currency suffix
	b.Grow(len(s) + len(s)/3 + 8)
	if neg {
		b.WriteByte('-')
	}

	// Insert separators from the left.
	rem := len(s) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(s[:rem])
	for i := rem; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}

	b.WriteString(" ل.س")
	return b.String()
}

// FormatUSD formats an amount of US cents like "$12.50".
func FormatUSD(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}

	dollars := cents / 100
	rest := cents % 100

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	b.WriteString(strconv.FormatInt(dollars, 10))
	b.WriteByte('.')
	if rest < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(rest, 10))
	return b.String()
}
