package collections_test

import (
	"testing"

	"plyquote/collections"
	"plyquote/testhelpers"
)

var seedRates = map[string]map[string]float64{
	"Alpha": {"19MM": 100, "12MM": 80, "9MM": 60, "6MM": 40},
	"Beta":  {"19MM": 120, "12MM": 90, "9MM": 70.5},
}

func TestSeedRates_CreatesData(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.SeedRates(app, seedRates); err != nil {
		t.Fatalf("SeedRates() error: %v", err)
	}

	records, err := app.FindAllRecords(collections.Rates)
	if err != nil {
		t.Fatalf("query rates error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 brands, got %d", len(records))
	}

	byBrand := make(map[string]float64)
	for _, rec := range records {
		byBrand[rec.GetString("brand")+"/9MM"] = rec.GetFloat("rate_9mm")
		byBrand[rec.GetString("brand")+"/6MM"] = rec.GetFloat("rate_6mm")
	}
	if byBrand["Beta/9MM"] != 70.5 {
		t.Errorf("Beta 9MM = %v, want 70.5", byBrand["Beta/9MM"])
	}
	if byBrand["Beta/6MM"] != 0 {
		t.Errorf("Beta 6MM = %v, want 0 for a missing rate", byBrand["Beta/6MM"])
	}
}

func TestSeedRates_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.SeedRates(app, seedRates); err != nil {
		t.Fatalf("first SeedRates() error: %v", err)
	}
	if err := collections.SeedRates(app, map[string]map[string]float64{"Other": {"19MM": 1}}); err != nil {
		t.Fatalf("second SeedRates() error: %v", err)
	}

	records, _ := app.FindAllRecords(collections.Rates)
	if len(records) != 2 {
		t.Errorf("expected seed to be skipped on a non-empty collection, got %d records", len(records))
	}
}
