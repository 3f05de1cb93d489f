package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"plyquote/testhelpers"
)

func TestHandleQuotationExportPDF(t *testing.T) {
	app, env := newTestEnv(t)
	testhelpers.CreateTestQuotation(t, app, 1001, "Ramesh Patil")

	rec := serve(t, app, HandleQuotationExportPDF(env), http.MethodGet, "/api/quotations/1001/export/pdf", "1001", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "quotation-RameshPatil-1001.pdf") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF-") {
		t.Error("response is not a PDF")
	}
}

func TestHandleQuotationExportPDF_NotFound(t *testing.T) {
	app, env := newTestEnv(t)

	rec := serve(t, app, HandleQuotationExportPDF(env), http.MethodGet, "/api/quotations/1001/export/pdf", "1001", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandleQuotationExportExcel(t *testing.T) {
	app, env := newTestEnv(t)
	testhelpers.CreateTestQuotation(t, app, 1001, "Ramesh Patil")

	rec := serve(t, app, HandleQuotationExportExcel(env), http.MethodGet, "/api/quotations/1001/export/excel", "1001", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, ".xlsx") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	f, err := excelize.OpenReader(rec.Body)
	if err != nil {
		t.Fatalf("response is not valid Excel: %v", err)
	}
	f.Close()
}

func TestHandleQuotationRegisterExcel(t *testing.T) {
	app, env := newTestEnv(t)
	testhelpers.CreateTestQuotation(t, app, 1001, "First")
	testhelpers.CreateTestQuotation(t, app, 1002, "Second")

	rec := serve(t, app, HandleQuotationRegisterExcel(env), http.MethodGet, "/api/quotations/export/excel", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	f, err := excelize.OpenReader(rec.Body)
	if err != nil {
		t.Fatalf("response is not valid Excel: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Quotations")
	if err != nil {
		t.Fatalf("GetRows() error: %v", err)
	}
	if len(rows) != 3 {
		t.Errorf("expected header and 2 rows, got %d", len(rows))
	}
}

func TestHandleQuotationPreviewPage(t *testing.T) {
	app, env := newTestEnv(t)
	testhelpers.CreateTestQuotation(t, app, 1001, "Ramesh Patil")

	rec := serve(t, app, HandleQuotationPreviewPage(env), http.MethodGet, "/api/quotations/1001/preview", "1001", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	testhelpers.AssertBodyContains(t, rec.Body.String(),
		"BHAKTI SALES",
		"Ramesh Patil",
		"#1001",
		"₹5,120",
		"<b>Mobile:</b> +91 9876543210",
	)
}
