package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"plyquote/services"
)

var previewLetterhead = services.Letterhead{
	Name:    "BHAKTI SALES",
	Tagline: "PLYWOOD | DECORATIVE DOORS",
	Address: "Vadodara",
	Phone:   "+91 90000 00000",
	Website: "www.example.com",
}

func previewTable() services.RateTable {
	return services.RateTable{
		"BrandA": {services.Thickness19MM: 100, services.Thickness12MM: 80, services.Thickness9MM: 60, services.Thickness6MM: 40},
	}
}

func previewQuotation(t *testing.T, name, mobile string) *services.Quotation {
	t.Helper()
	in := services.DraftInput{
		Customer:       services.Customer{Name: name, Mobile: mobile, Address: "Pune"},
		SelectedBrands: []string{"BrandA"},
		Products: []services.ProductRow{
			{ID: "row-1", Thickness: "19MM / 18MM", Size: "8 x 4", Quantity: 2},
			{ID: "row-2", Thickness: "9MM", Size: "6 x 2.5", Quantity: 3},
		},
		AdditionalItems: []services.AdditionalItem{
			{ID: "item-1", ProductName: "FEVICOL", Quantity: 3, Rate: 50},
			{ID: "item-2", ProductName: "HINGES", Quantity: 3, Rate: 12.35},
		},
	}
	in.SetIncrease(10)
	draft, err := services.BuildQuotation(previewTable(), in)
	if err != nil {
		t.Fatalf("BuildQuotation() error: %v", err)
	}
	return &services.Quotation{
		QuotationNo:      1001,
		Customer:         draft.Customer,
		SelectedBrands:   draft.SelectedBrands,
		BrandAdjustments: draft.BrandAdjustments,
		Products:         draft.Products,
		AdditionalItems:  draft.AdditionalItems,
		CreatedAt:        time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC),
	}
}

func renderPreview(t *testing.T, data services.QuotationExport) string {
	t.Helper()
	var buf bytes.Buffer
	if err := QuotationPreview(data).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render QuotationPreview: %v", err)
	}
	return buf.String()
}

func TestQuotationPreviewRendersSections(t *testing.T) {
	q := previewQuotation(t, "Ramesh Patil", "98765 43210")
	got := renderPreview(t, services.BuildQuotationExport(q, previewTable(), previewLetterhead, "91"))

	for _, frag := range []string{
		"<!doctype html>",
		"<title>Quotation #1001</title>",
		"<h1>BHAKTI SALES</h1>",
		"<b>Quotation No:</b> #1001",
		"<b>Date:</b> 05/03/2024",
		"Product Details",
		"Additional Items",
		"Totals Breakdown",
		"₹10,197",
		"Ten Thousand One Hundred and Ninety Seven Rupees Only/-",
		"Plywood Rates",
	} {
		if !strings.Contains(got, frag) {
			t.Errorf("QuotationPreview output missing %q", frag)
		}
	}
	if strings.Contains(got, "Revision of:") {
		t.Error("QuotationPreview should not print a revision line for an original quotation")
	}
}

func TestQuotationPreviewEscapesCustomer(t *testing.T) {
	q := previewQuotation(t, "Patil <script>", "98765 43210")
	got := renderPreview(t, services.BuildQuotationExport(q, previewTable(), previewLetterhead, "91"))

	if !strings.Contains(got, "Patil &lt;script&gt;") {
		t.Errorf("customer name not escaped: %q", got)
	}
	if strings.Contains(got, "<script>") {
		t.Error("QuotationPreview output contains a raw script tag")
	}
}

func TestQuotationPreviewMobileUsesCountryCode(t *testing.T) {
	tests := []struct {
		name        string
		mobile      string
		countryCode string
		want        string
	}{
		{"local number", "98765 43210", "91", "<b>Mobile:</b> +91 9876543210"},
		{"already prefixed", "+91 98765 43210", "91", "<b>Mobile:</b> +91 9876543210"},
		{"other country", "7911 123456", "44", "<b>Mobile:</b> +44 7911123456"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := previewQuotation(t, "Ramesh Patil", tt.mobile)
			got := renderPreview(t, services.BuildQuotationExport(q, previewTable(), previewLetterhead, tt.countryCode))
			if !strings.Contains(got, tt.want) {
				t.Errorf("QuotationPreview output missing %q", tt.want)
			}
			if strings.Contains(got, "+91 +91") || strings.Contains(got, "+"+tt.countryCode+" "+tt.countryCode) {
				t.Error("country code printed twice")
			}
		})
	}
}

func TestQuotationPreviewRevisionLine(t *testing.T) {
	q := previewQuotation(t, "Ramesh Patil", "98765 43210")
	q.QuotationNo = 1002
	q.RevisionOf = 1001
	got := renderPreview(t, services.BuildQuotationExport(q, previewTable(), previewLetterhead, "91"))

	if !strings.Contains(got, "<b>Revision of:</b> #1001") {
		t.Error("QuotationPreview output missing revision line")
	}
}
