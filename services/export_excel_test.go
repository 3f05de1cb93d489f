package services

import (
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func TestGenerateQuotationExcel(t *testing.T) {
	data := BuildQuotationExport(sampleQuotation(t), testTable(), testLetterhead, "91")

	result, err := GenerateQuotationExcel(data)
	if err != nil {
		t.Fatalf("GenerateQuotationExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Quotation #1001" {
		t.Fatalf("expected sheet 'Quotation #1001', got %v", sheets)
	}

	title, _ := f.GetCellValue(sheets[0], "A1")
	if title != "BHAKTI SALES" {
		t.Errorf("expected company title, got %q", title)
	}
	no, _ := f.GetCellValue(sheets[0], "B2")
	if no != "#1001" {
		t.Errorf("expected quotation number in B2, got %q", no)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		t.Fatalf("GetRows() error: %v", err)
	}
	found := false
	for _, r := range rows {
		if len(r) > 0 && r[0] == "Brand Name" {
			found = true
		}
	}
	if !found {
		t.Error("expected a totals breakdown header row")
	}
}

func TestGenerateQuotationExcel_SanitizesCustomerInput(t *testing.T) {
	q := sampleQuotation(t)
	q.Customer.Name = "=HYPERLINK(\"http://evil\")"
	data := BuildQuotationExport(q, testTable(), testLetterhead, "91")

	result, err := GenerateQuotationExcel(data)
	if err != nil {
		t.Fatalf("GenerateQuotationExcel() error = %v", err)
	}
	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	name, _ := f.GetCellValue(f.GetSheetList()[0], "B4")
	if name[0] != '\'' {
		t.Errorf("expected sanitized customer name, got %q", name)
	}
}

func TestGenerateQuotationRegister(t *testing.T) {
	a := sampleQuotation(t)
	b := sampleQuotation(t)
	b.QuotationNo = 1002
	b.RevisionOf = 1001
	b.CreatedAt = a.CreatedAt.Add(24 * time.Hour)

	result, err := GenerateQuotationRegister([]*Quotation{b, a}, []string{"BrandA", "BrandB"})
	if err != nil {
		t.Fatalf("GenerateQuotationRegister() error = %v", err)
	}
	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Quotations")
	if err != nil {
		t.Fatalf("GetRows() error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header and 2 rows, got %d", len(rows))
	}
	if rows[0][6] != "BrandA" || rows[0][7] != "BrandB" {
		t.Errorf("unexpected brand headers %v", rows[0])
	}
	if rows[1][0] != "#1002" || rows[1][4] != "#1001" {
		t.Errorf("unexpected first row %v", rows[1])
	}
	if len(rows[1]) > 7 && rows[1][7] != "" {
		t.Errorf("unselected brand should be empty, got %q", rows[1][7])
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		in     string
		expect string
	}{
		{"", ""},
		{"plain", "plain"},
		{"=SUM(A1)", "'=SUM(A1)"},
		{"+91 98765", "'+91 98765"},
		{"@cmd", "'@cmd"},
	}
	for _, tt := range tests {
		if got := sanitizeExcelCell(tt.in); got != tt.expect {
			t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.in, got, tt.expect)
		}
	}
}
