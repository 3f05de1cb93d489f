// Package testhelpers provides utilities for testing the PocketBase-backed
// quotation store and handlers.
package testhelpers

import (
	"strings"
	"testing"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"plyquote/collections"
)

// TestRates is a small two-brand rate table used across tests.
var TestRates = map[string]map[string]float64{
	"Alpha": {"19MM": 100, "12MM": 80, "9MM": 60, "6MM": 40},
	"Beta":  {"19MM": 120, "12MM": 90, "9MM": 70, "6MM": 50},
}

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	if err := collections.Setup(app); err != nil {
		t.Fatalf("failed to set up collections: %v", err)
	}

	return app
}

// SeedTestRates stores TestRates in the rates collection.
func SeedTestRates(t *testing.T, app *pocketbase.PocketBase) {
	t.Helper()

	if err := collections.SeedRates(app, TestRates); err != nil {
		t.Fatalf("failed to seed test rates: %v", err)
	}
}

// CreateTestQuotation stores a minimal quotation record under the given
// number for a single brand and returns it.
func CreateTestQuotation(t *testing.T, app *pocketbase.PocketBase, quotationNo int, customerName string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId(collections.Quotations)
	if err != nil {
		t.Fatalf("failed to find quotations collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quotation_no", quotationNo)
	record.Set("customer", map[string]string{
		"name":    customerName,
		"mobile":  "9876543210",
		"address": "Pune",
	})
	record.Set("selected_brands", []string{"Alpha"})
	record.Set("brand_adjustments", map[string]float64{"Alpha": 0})
	record.Set("products", []map[string]any{{
		"id":          "row-1",
		"thickness":   "12MM",
		"size":        "8 x 4",
		"quantity":    2,
		"totalSqFt":   64,
		"brandTotals": map[string]float64{"Alpha": 5120},
	}})
	record.Set("additional_items", []map[string]any{})
	record.Set("created_at", time.Now().UTC())

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quotation: %v", err)
	}

	return record
}

// AssertBodyContains checks that body contains all specified fragments.
func AssertBodyContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected body to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
