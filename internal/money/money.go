// Package money formats rupee amounts in the Indian numbering system, where
// digits after the rightmost three are grouped in pairs (₹12,34,567).
package money

import (
	"strconv"
	"strings"
)

// FormatINR renders amount with two decimal places, e.g. ₹1,23,456.78.
func FormatINR(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	raw := strconv.FormatFloat(amount, 'f', 2, 64)
	whole, frac, _ := strings.Cut(raw, ".")
	return sign + "₹" + group(whole) + "." + frac
}

// Rupees renders a whole-rupee amount without decimals, e.g. ₹11,80,000.
func Rupees(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + "₹" + group(strconv.FormatInt(amount, 10))
}

func group(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	head, tail := digits[:n-3], digits[n-3:]
	var parts []string
	if len(head)%2 == 1 {
		parts = append(parts, head[:1])
		head = head[1:]
	}
	for i := 0; i < len(head); i += 2 {
		parts = append(parts, head[i:i+2])
	}
	return strings.Join(append(parts, tail), ",")
}
