package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"

	"plyquote/services"
	"plyquote/testhelpers"
)

func TestHandleRatesGet(t *testing.T) {
	app, env := newTestEnv(t)

	rec := serve(t, app, HandleRatesGet(env), http.MethodGet, "/api/rates", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var table services.RateTable
	decodeBody(t, rec, &table)
	if table["Alpha"]["19MM"] != 100 || table["Beta"]["6MM"] != 50 {
		t.Errorf("unexpected table %v", table)
	}
}

func TestHandleRatesGet_DefaultWhenStoreEmpty(t *testing.T) {
	app, env := newTestEnv(t)
	if err := app.TruncateCollection(mustCollection(t, app, "rates")); err != nil {
		t.Fatalf("truncate rates: %v", err)
	}
	env.Rates.Refresh()

	rec := serve(t, app, HandleRatesGet(env), http.MethodGet, "/api/rates", "", "")
	var table services.RateTable
	decodeBody(t, rec, &table)
	if len(table) != 4 {
		t.Errorf("expected the 4-brand default table, got %v", table.Brands())
	}
}

func TestHandleRatesUpdate(t *testing.T) {
	app, env := newTestEnv(t)

	body := `{"Gamma": {"19MM": 90, "12MM": "70", "9MM": 55.5}}`
	rec := serve(t, app, HandleRatesUpdate(env), http.MethodPut, "/api/rates", "", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	current := env.Rates.Book().Current()
	if len(current) != 1 || current["Gamma"]["12MM"] != 70 || current["Gamma"]["6MM"] != 0 {
		t.Errorf("unexpected book after update: %v", current)
	}

	// New quotations price against the new table.
	quote := `{"customer": {"name": "A", "mobile": "1"}, "selectedBrands": ["Gamma"],
		"products": [{"thickness": "12MM", "size": "8 x 4", "quantity": 1}]}`
	rec = serve(t, app, HandleQuotationPreview(env), http.MethodPost, "/api/quotations/preview", "", quote)
	var draft services.QuotationDraft
	decodeBody(t, rec, &draft)
	if draft.Totals.GrandTotals["Gamma"] != 2240 {
		t.Errorf("grand total = %v, want 2240", draft.Totals.GrandTotals["Gamma"])
	}
}

func TestHandleRatesUpdate_Invalid(t *testing.T) {
	app, env := newTestEnv(t)

	tests := []struct {
		name string
		body string
	}{
		{"negative rate", `{"Alpha": {"19MM": -1}}`},
		{"unknown thickness", `{"Alpha": {"25MM": 10}}`},
		{"empty table", `{}`},
		{"not json", `rates`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, app, HandleRatesUpdate(env), http.MethodPut, "/api/rates", "", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
		})
	}

	if _, ok := env.Rates.Book().Current()["Alpha"]; !ok {
		t.Error("rate book changed after rejected updates")
	}
}

func TestHandleRatesExportExcel_ImportRoundTrip(t *testing.T) {
	app, env := newTestEnv(t)

	rec := serve(t, app, HandleRatesExportExcel(env), http.MethodGet, "/api/rates/export/excel", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "rates.xlsx") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	sheet := rec.Body.Bytes()

	// Change the book, then import the exported sheet back.
	if err := env.Rates.Replace(services.RateTable{"Other": {"19MM": 1}}); err != nil {
		t.Fatalf("Replace() error: %v", err)
	}

	rec = uploadRateSheet(t, app, env, "rates.xlsx", sheet)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	current := env.Rates.Book().Current()
	if current["Alpha"]["19MM"] != 100 || current["Beta"]["6MM"] != 50 {
		t.Errorf("unexpected book after import: %v", current)
	}
	if _, ok := current["Other"]; ok {
		t.Error("import should replace the whole table")
	}
}

func TestHandleRatesImport_Invalid(t *testing.T) {
	app, env := newTestEnv(t)

	rec := uploadRateSheet(t, app, env, "rates.csv", []byte("Name,19MM\nA,1\n"))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	testhelpers.AssertBodyContains(t, rec.Body.String(), `"file"`)
}

func uploadRateSheet(t *testing.T, app *pocketbase.PocketBase, env *Env, fileName string, data []byte) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	part.Write(data)
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/rates/import", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	if err := HandleRatesImport(env)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}
