package handlers

import (
	"net/http"
	"testing"

	"plyquote/services"
)

func TestHandleQuotationCreate_Success(t *testing.T) {
	app, env := newTestEnv(t)

	rec := serve(t, app, HandleQuotationCreate(env), http.MethodPost, "/api/quotations", "", validQuotationBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var q services.Quotation
	decodeBody(t, rec, &q)
	if q.QuotationNo != 1001 {
		t.Errorf("quotationNo = %d, want 1001", q.QuotationNo)
	}
	if q.Totals.GrandTotals["Alpha"] != 7190 {
		t.Errorf("grand total = %v, want 7190", q.Totals.GrandTotals["Alpha"])
	}
	if q.BrandAdjustments["Alpha"] != 10 {
		t.Errorf("adjustment = %v, want 10", q.BrandAdjustments["Alpha"])
	}

	rec = serve(t, app, HandleQuotationCreate(env), http.MethodPost, "/api/quotations", "", validQuotationBody)
	decodeBody(t, rec, &q)
	if q.QuotationNo != 1002 {
		t.Errorf("second quotationNo = %d, want 1002", q.QuotationNo)
	}
}

func TestHandleQuotationCreate_MissingFields(t *testing.T) {
	app, env := newTestEnv(t)

	body := `{"customer": {"name": "", "mobile": ""}, "selectedBrands": []}`
	rec := serve(t, app, HandleQuotationCreate(env), http.MethodPost, "/api/quotations", "", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp struct {
		Message string   `json:"message"`
		Fields  []string `json:"fields"`
	}
	decodeBody(t, rec, &resp)
	if len(resp.Fields) != 3 {
		t.Errorf("expected 3 missing fields, got %v", resp.Fields)
	}
	if resp.Message == "" {
		t.Error("expected a message")
	}

	list, _ := env.Quotations.List()
	if len(list) != 0 {
		t.Errorf("expected nothing stored, got %d", len(list))
	}
}

func TestHandleQuotationCreate_InvalidJSON(t *testing.T) {
	app, env := newTestEnv(t)

	rec := serve(t, app, HandleQuotationCreate(env), http.MethodPost, "/api/quotations", "", `{"customer":`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleQuotationPreview_DoesNotStore(t *testing.T) {
	app, env := newTestEnv(t)

	rec := serve(t, app, HandleQuotationPreview(env), http.MethodPost, "/api/quotations/preview", "", validQuotationBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var draft services.QuotationDraft
	decodeBody(t, rec, &draft)
	if draft.Totals.GrandTotals["Alpha"] != 7190 {
		t.Errorf("grand total = %v, want 7190", draft.Totals.GrandTotals["Alpha"])
	}

	list, _ := env.Quotations.List()
	if len(list) != 0 {
		t.Errorf("preview stored %d quotations", len(list))
	}
}
