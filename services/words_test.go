package services

import "testing"

func TestAmountToWords_IndianFormat(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		expect string
	}{
		{"zero", 0, "Zero Rupees Only/-"},
		{"single_digit", 5, "Five Rupees Only/-"},
		{"teens", 15, "Fifteen Rupees Only/-"},
		{"hundreds", 500, "Five Hundred Rupees Only/-"},
		{"thousands", 5000, "Five Thousand Rupees Only/-"},
		{"grand_total_example", 7190, "Seven Thousand One Hundred and Ninety Rupees Only/-"},
		{"lakhs", 913183, "Nine Lakhs Thirteen Thousand One Hundred and Eighty Three Rupees Only/-"},
		{"crores", 12345678, "One Crores Twenty Three Lakhs Forty Five Thousand Six Hundred and Seventy Eight Rupees Only/-"},
		{"hundred_crores", 1500000000, "One Hundred and Fifty Crores Rupees Only/-"},
		{"exact_lakh", 100000, "One Lakhs Rupees Only/-"},
		{"hundred_and", 150, "One Hundred and Fifty Rupees Only/-"},
		{"rounds_fraction", 99.6, "One Hundred Rupees Only/-"},
		{"negative", -20, "Negative Twenty Rupees Only/-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AmountToWords(tt.amount)
			if got != tt.expect {
				t.Errorf("AmountToWords(%v) = %q, want %q", tt.amount, got, tt.expect)
			}
		})
	}
}
