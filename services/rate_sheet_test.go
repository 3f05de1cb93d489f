package services

import (
	"errors"
	"strings"
	"testing"
)

func TestRateSheet_RoundTrip(t *testing.T) {
	table := testTable()

	data, err := GenerateRateSheet(table)
	if err != nil {
		t.Fatalf("GenerateRateSheet() error: %v", err)
	}

	parsed, err := ParseRateSheet(bytesReader(data), "rates.xlsx")
	if err != nil {
		t.Fatalf("ParseRateSheet() error: %v", err)
	}
	for _, brand := range table.Brands() {
		for _, key := range ThicknessKeys {
			if parsed[brand][key] != table[brand][key] {
				t.Errorf("%s %s = %v, want %v", brand, key, parsed[brand][key], table[brand][key])
			}
		}
	}
}

func TestParseRateSheet_CSV(t *testing.T) {
	csvData := "Brand,19MM / 18MM,12mm,9MM,Notes\n" +
		"Gamma,90,70,55.5,fresh stock\n" +
		",1,1,1,\n" +
		"Delta,100,,60\n"

	table, err := ParseRateSheet(strings.NewReader(csvData), "Rates.CSV")
	if err != nil {
		t.Fatalf("ParseRateSheet() error: %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("expected 2 brands, got %v", table.Brands())
	}
	if table["Gamma"]["19MM"] != 90 || table["Gamma"]["12MM"] != 70 || table["Gamma"]["9MM"] != 55.5 {
		t.Errorf("unexpected Gamma rates %v", table["Gamma"])
	}
	if table["Delta"]["12MM"] != 0 || table["Delta"]["6MM"] != 0 {
		t.Errorf("missing cells should be 0, got %v", table["Delta"])
	}
}

func TestParseRateSheet_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		data     string
		field    string
	}{
		{"unsupported extension", "rates.txt", "Brand,19MM\nA,1\n", "file"},
		{"header only", "rates.csv", "Brand,19MM\n", "file"},
		{"missing brand column", "rates.csv", "Name,19MM\nA,1\n", "file"},
		{"not a number", "rates.csv", "Brand,19MM\nA,cheap\n", "A.19MM"},
		{"negative rate", "rates.csv", "Brand,19MM\nA,-5\n", "A.19MM"},
		{"not an xlsx", "rates.xlsx", "Brand,19MM\nA,1\n", "file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRateSheet(strings.NewReader(tt.data), tt.fileName)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			found := false
			for _, f := range verr.Fields {
				if f == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("fields = %v, want %q", verr.Fields, tt.field)
			}
		})
	}
}
