package services

import (
	"net/url"
	"testing"
)

func TestWhatsAppLink(t *testing.T) {
	q := &Quotation{
		QuotationNo: 1001,
		Customer:    Customer{Name: "Ramesh", Mobile: "98765-43210"},
	}

	link := WhatsAppLink(q, "BHAKTI SALES", "91")

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("invalid link %q: %v", link, err)
	}
	if u.Host != "wa.me" || u.Path != "/919876543210" {
		t.Errorf("unexpected host/path %q %q", u.Host, u.Path)
	}
	want := "Dear Ramesh, here is your quotation from BHAKTI SALES. Quotation No: #1001"
	if got := u.Query().Get("text"); got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func TestNationalNumber(t *testing.T) {
	tests := []struct {
		name   string
		mobile string
		want   string
	}{
		{"plain", "9876543210", "9876543210"},
		{"separators", "98765-43210", "9876543210"},
		{"plus country code", "+91 98765 43210", "9876543210"},
		{"bare country code", "919876543210", "9876543210"},
		{"double zero prefix", "0091 9876543210", "9876543210"},
		{"trunk zero", "09876543210", "9876543210"},
		{"national number starting with 91", "9198765432", "9198765432"},
		{"non-ascii digits dropped", "98765४३२१०43210", "9876543210"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NationalNumber(tt.mobile, "91"); got != tt.want {
				t.Errorf("NationalNumber(%q) = %q, want %q", tt.mobile, got, tt.want)
			}
		})
	}
}

func TestWhatsAppLink_CountryCodeNotDoubled(t *testing.T) {
	for _, mobile := range []string{"+91 98765 43210", "919876543210", "९८७६५ 9876543210"} {
		q := &Quotation{QuotationNo: 1001, Customer: Customer{Name: "R", Mobile: mobile}}
		u, err := url.Parse(WhatsAppLink(q, "BHAKTI SALES", "91"))
		if err != nil {
			t.Fatalf("invalid link for %q: %v", mobile, err)
		}
		if u.Path != "/919876543210" {
			t.Errorf("mobile %q: path = %q, want /919876543210", mobile, u.Path)
		}
	}
}

func TestFormatMobile(t *testing.T) {
	tests := []struct {
		mobile, code, want string
	}{
		{"98765 43210", "91", "+91 9876543210"},
		{"+91 98765 43210", "91", "+91 9876543210"},
		{"5551234567", "1", "+1 5551234567"},
		{"", "91", ""},
		{"9876543210", "", "9876543210"},
	}
	for _, tt := range tests {
		if got := FormatMobile(tt.mobile, tt.code); got != tt.want {
			t.Errorf("FormatMobile(%q, %q) = %q, want %q", tt.mobile, tt.code, got, tt.want)
		}
	}
}
