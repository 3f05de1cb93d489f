package services

import (
	"testing"
)

func TestGenerateQuotationPDF(t *testing.T) {
	data := BuildQuotationExport(sampleQuotation(t), testTable(), testLetterhead, "91")

	result, err := GenerateQuotationPDF(data)
	if err != nil {
		t.Fatalf("GenerateQuotationPDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateQuotationPDF() returned empty bytes")
	}
	// PDF files start with %PDF
	if len(result) > 4 && string(result[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header, got %q", string(result[:5]))
	}
}

func TestGenerateQuotationPDF_ManyBrands(t *testing.T) {
	q := sampleQuotation(t)
	table := DefaultRateTable()
	q.SelectedBrands = table.Brands()
	q.SelectedBrands = append(q.SelectedBrands, "Custom Brand")

	result, err := GenerateQuotationPDF(BuildQuotationExport(q, table, testLetterhead, "91"))
	if err != nil {
		t.Fatalf("GenerateQuotationPDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateQuotationPDF() returned empty bytes")
	}
}

func TestGenerateQuotationPDF_EmptyQuotation(t *testing.T) {
	data := BuildQuotationExport(&Quotation{QuotationNo: 1001}, testTable(), testLetterhead, "91")

	result, err := GenerateQuotationPDF(data)
	if err != nil {
		t.Fatalf("GenerateQuotationPDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateQuotationPDF() returned empty bytes")
	}
}

func TestFormatQty(t *testing.T) {
	tests := []struct {
		in     float64
		expect string
	}{
		{64, "64"},
		{0, "0"},
		{37.5, "37.50"},
		{12.345, "12.35"},
	}
	for _, tt := range tests {
		if got := FormatQty(tt.in); got != tt.expect {
			t.Errorf("FormatQty(%v) = %q, want %q", tt.in, got, tt.expect)
		}
	}
}
