package collections

import (
	"fmt"
	"log"
	"sort"

	"github.com/pocketbase/pocketbase/core"
)

// SeedRates inserts the given brand rates when the rates collection is
// empty. It is safe to call on every startup.
func SeedRates(app core.App, rates map[string]map[string]float64) error {
	col, err := app.FindCollectionByNameOrId(Rates)
	if err != nil {
		return fmt.Errorf("seed: could not find rates collection: %w", err)
	}
	count, err := app.CountRecords(col)
	if err != nil {
		return fmt.Errorf("seed: could not count rates: %w", err)
	}
	if count > 0 {
		return nil
	}

	log.Printf("seed: rates collection is empty, inserting %d brands", len(rates))

	brands := make([]string, 0, len(rates))
	for brand := range rates {
		brands = append(brands, brand)
	}
	sort.Strings(brands)

	return app.RunInTransaction(func(txApp core.App) error {
		for _, brand := range brands {
			record := core.NewRecord(col)
			record.Set("brand", brand)
			for key, column := range RateColumns {
				record.Set(column, rates[brand][key])
			}
			if err := txApp.Save(record); err != nil {
				return fmt.Errorf("seed: could not save rates for %q: %w", brand, err)
			}
		}
		return nil
	})
}
