package services

import (
	"math"
	"strings"
)

// AmountToWords spells a rupee amount in Indian English, rounded to whole
// rupees. 913183 → "Nine Lakhs Thirteen Thousand One Hundred and Eighty
// Three Rupees Only/-".
func AmountToWords(amount float64) string {
	if amount < 0 {
		return "Negative " + AmountToWords(-amount)
	}

	rupees := int64(math.Round(amount))
	if rupees == 0 {
		return "Zero Rupees Only/-"
	}
	return indianWords(rupees) + " Rupees Only/-"
}

var indianScales = []struct {
	size int64
	name string
}{
	{10000000, "Crores"},
	{100000, "Lakhs"},
	{1000, "Thousand"},
}

func indianWords(n int64) string {
	var parts []string

	for _, scale := range indianScales {
		if n >= scale.size {
			parts = append(parts, under100Words(n/scale.size)+" "+scale.name)
			n %= scale.size
		}
	}

	if n >= 100 {
		parts = append(parts, ones[n/100]+" Hundred")
		n %= 100
	}

	if n > 0 {
		if len(parts) > 0 {
			parts = append(parts, "and "+under100Words(n))
		} else {
			parts = append(parts, under100Words(n))
		}
	}

	return strings.Join(parts, " ")
}

// under100Words also handles the crore count, which can exceed 99.
func under100Words(n int64) string {
	if n >= 100 {
		return indianWords(n)
	}
	if n < 20 {
		return ones[n]
	}
	word := tens[n/10]
	if n%10 != 0 {
		word += " " + ones[n%10]
	}
	return word
}

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}
