package services

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase/core"

	"plyquote/collections"
)

// RateStore persists the rate table and keeps a RateBook in step with it.
type RateStore struct {
	app  core.App
	book *RateBook
}

func NewRateStore(app core.App, book *RateBook) *RateStore {
	return &RateStore{app: app, book: book}
}

func (s *RateStore) Book() *RateBook { return s.book }

// Load reads the stored table. An empty collection yields an empty table.
func (s *RateStore) Load() (RateTable, error) {
	records, err := s.app.FindAllRecords(collections.Rates)
	if err != nil {
		return nil, &UnavailableError{Op: "load rates", Err: err}
	}

	table := make(RateTable, len(records))
	for _, rec := range records {
		rates := make(ThicknessRates, len(ThicknessKeys))
		for key, column := range collections.RateColumns {
			rates[key] = rec.GetFloat(column)
		}
		table[rec.GetString("brand")] = rates
	}
	return table, nil
}

// Refresh reloads the book from the store. When the store is unreachable
// or empty the default table is installed instead.
func (s *RateStore) Refresh() RateTable {
	table, err := s.Load()
	switch {
	case err != nil:
		log.Printf("rate_store: falling back to default rates: %v", err)
		table = nil
	case len(table) == 0:
		log.Printf("rate_store: no stored rates, using default rates")
	}
	s.book.Replace(table)
	return s.book.Current()
}

// Replace validates table, swaps it into the store in one transaction,
// then installs it in the book.
func (s *RateStore) Replace(table RateTable) error {
	if err := ValidateRateTable(table); err != nil {
		return err
	}

	col, err := s.app.FindCollectionByNameOrId(collections.Rates)
	if err != nil {
		return &UnavailableError{Op: "replace rates", Err: err}
	}

	err = s.app.RunInTransaction(func(txApp core.App) error {
		existing, err := txApp.FindAllRecords(col)
		if err != nil {
			return fmt.Errorf("query rates: %w", err)
		}
		for _, rec := range existing {
			if err := txApp.Delete(rec); err != nil {
				return fmt.Errorf("delete rates for %q: %w", rec.GetString("brand"), err)
			}
		}
		for _, brand := range table.Brands() {
			record := core.NewRecord(col)
			record.Set("brand", brand)
			for key, column := range collections.RateColumns {
				record.Set(column, table[brand][key])
			}
			if err := txApp.Save(record); err != nil {
				return fmt.Errorf("save rates for %q: %w", brand, err)
			}
		}
		return nil
	})
	if err != nil {
		return &UnavailableError{Op: "replace rates", Err: err}
	}

	s.book.Replace(table)
	log.Printf("rate_store: replaced rate table (%d brands)", len(table))
	return nil
}
