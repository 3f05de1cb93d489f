package main

import (
	"bytes"
	"testing"

	"plyquote/services"
	"plyquote/testhelpers"
)

func TestRatesCommand_Show(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.SeedTestRates(t, app)

	var out bytes.Buffer
	cmd := newRatesCommand(app)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"show"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("rates show: %v", err)
	}

	testhelpers.AssertBodyContains(t, out.String(), "Brand", "19MM", "Alpha", "Beta")
}

func TestRatesCommand_Reset(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.SeedTestRates(t, app)

	cmd := newRatesCommand(app)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"reset"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("rates reset: %v", err)
	}

	table, err := services.NewRateStore(app, services.NewRateBook(nil)).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if _, ok := table["Alpha"]; ok {
		t.Error("test brand survived reset")
	}
	if len(table) != len(services.DefaultRateTable()) {
		t.Errorf("expected %d brands after reset, got %d", len(services.DefaultRateTable()), len(table))
	}
}
