package services

import (
	"fmt"
	"strings"
	"time"
)

// FormatINR formats an amount in Indian Rupee notation with two decimals,
// grouping digits the Indian way (₹1,23,45,678.90).
func FormatINR(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	intPart, decPart, _ := strings.Cut(fmt.Sprintf("%.2f", amount), ".")
	return sign + "₹" + applyIndianGrouping(intPart) + "." + decPart
}

// FormatRupees rounds an amount to whole rupees and formats it without
// decimals (₹7,190). Each amount is rounded on its own, so a printed total
// may differ by a rupee from the sum of printed rows.
func FormatRupees(amount float64) string {
	rounded := RoundRupees(amount)
	sign := ""
	if rounded < 0 {
		sign = "-"
		rounded = -rounded
	}
	return sign + "₹" + applyIndianGrouping(fmt.Sprintf("%.0f", rounded))
}

// applyIndianGrouping inserts commas into a run of digits: the last three
// digits form one group, every two digits before that form another.
func applyIndianGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	rest := s[:n-3]
	for len(rest) > 2 {
		result = rest[len(rest)-2:] + "," + result
		rest = rest[:len(rest)-2]
	}
	if rest != "" {
		result = rest + "," + result
	}
	return result
}

// FormatQuotationNo renders the number the way operators refer to it.
func FormatQuotationNo(no int) string {
	return fmt.Sprintf("#%d", no)
}

// FormatDate renders a date as dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}
