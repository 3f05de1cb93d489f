package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"plyquote/config"
	"plyquote/testhelpers"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// newTestEnv returns an app with the test rates stored and loaded into the
// rate book.
func newTestEnv(t *testing.T) (*pocketbase.PocketBase, *Env) {
	t.Helper()

	app := testhelpers.NewTestApp(t)
	testhelpers.SeedTestRates(t, app)

	cfg, err := config.Parse()
	if err != nil {
		t.Fatalf("config.Parse() error: %v", err)
	}
	env := NewEnv(app, cfg)
	env.Rates.Refresh()
	return app, env
}

// serve runs handler against a request with an optional JSON body and
// {quotationNo} path value.
func serve(t *testing.T, app *pocketbase.PocketBase, handler func(*core.RequestEvent) error, method, target, quotationNo, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if quotationNo != "" {
		req.SetPathValue("quotationNo", quotationNo)
	}
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("invalid JSON response %q: %v", rec.Body.String(), err)
	}
}

const validQuotationBody = `{
	"customer": {"name": "Ramesh Patil", "mobile": "9876543210", "address": "Pune"},
	"selectedBrands": ["Alpha"],
	"increasePercentage": 10,
	"products": [{"id": "r1", "thickness": "19MM / 18MM", "size": "8 x 4", "quantity": 2}],
	"additionalItems": [{"id": "i1", "productName": "FEVICOL", "quantity": 3, "rate": 50}]
}`

func mustCollection(t *testing.T, app *pocketbase.PocketBase, name string) *core.Collection {
	t.Helper()
	col, err := app.FindCollectionByNameOrId(name)
	if err != nil {
		t.Fatalf("find collection %q: %v", name, err)
	}
	return col
}
