package services

import (
	"fmt"
	"strings"
	"sync/atomic"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/cast"
)

// RateBook holds the current rate table. Readers get a consistent snapshot;
// updates replace the whole table at once.
type RateBook struct {
	table atomic.Pointer[RateTable]
}

// NewRateBook returns a book holding a copy of table, or the default table
// when table is empty.
func NewRateBook(table RateTable) *RateBook {
	b := &RateBook{}
	b.Replace(table)
	return b
}

// Current returns the table in effect. The returned table must not be
// modified.
func (b *RateBook) Current() RateTable {
	if t := b.table.Load(); t != nil {
		return *t
	}
	return DefaultRateTable()
}

// Replace swaps in a copy of table. An empty table installs the default.
func (b *RateBook) Replace(table RateTable) {
	var next RateTable
	if len(table) == 0 {
		next = DefaultRateTable()
	} else {
		next = table.Clone()
	}
	b.table.Store(&next)
}

// ParseRateTable converts a decoded JSON object of
// brand → {thickness → number} into a RateTable. Numbers sent as strings
// are accepted, as are display labels ("19MM / 18MM") in place of their
// storage key; when both are given the storage key wins. Every brand ends
// up with all four thickness keys; missing keys are filled with 0.
func ParseRateTable(raw map[string]map[string]any) (RateTable, error) {
	table := make(RateTable, len(raw))
	errs := validation.Errors{}
	for brand, rates := range raw {
		name := strings.TrimSpace(brand)
		if name == "" {
			errs["brand"] = validation.NewError("validation_required", "brand name cannot be blank")
			continue
		}
		parsed := make(ThicknessRates, len(ThicknessKeys))
		for _, key := range ThicknessKeys {
			parsed[key] = 0
		}
		for key, value := range rates {
			norm := NormalizeThickness(key)
			if !isThicknessKey(norm) {
				errs[name+"."+key] = validation.NewError("validation_unknown_thickness", "unknown thickness")
				continue
			}
			if _, exact := rates[norm]; exact && key != norm {
				// "19MM" given alongside "19MM / 18MM": the storage key wins.
				continue
			}
			rate, err := cast.ToFloat64E(value)
			if err != nil {
				errs[name+"."+key] = validation.NewError("validation_not_a_number", "must be a number")
				continue
			}
			parsed[norm] = rate
		}
		table[name] = parsed
	}
	if len(errs) > 0 {
		return nil, newValidationError(errs)
	}
	if err := ValidateRateTable(table); err != nil {
		return nil, err
	}
	return table, nil
}

// ValidateRateTable checks that the table names at least one brand and
// that no rate is negative.
func ValidateRateTable(table RateTable) error {
	if len(table) == 0 {
		return newValidationError(validation.Errors{
			"rates": validation.NewError("validation_required", "at least one brand is required"),
		})
	}
	errs := validation.Errors{}
	for brand, rates := range table {
		for key, rate := range rates {
			if err := validation.Validate(rate, validation.Min(0.0)); err != nil {
				errs[brand+"."+key] = err
			}
		}
	}
	if len(errs) > 0 {
		return newValidationError(errs)
	}
	return nil
}

func isThicknessKey(key string) bool {
	for _, k := range ThicknessKeys {
		if k == key {
			return true
		}
	}
	return false
}

// FormatRateTable renders the table as aligned text, one brand per line.
func FormatRateTable(table RateTable) string {
	var sb strings.Builder
	width := len("Brand")
	for _, brand := range table.Brands() {
		if len(brand) > width {
			width = len(brand)
		}
	}
	fmt.Fprintf(&sb, "%-*s", width, "Brand")
	for _, key := range ThicknessKeys {
		fmt.Fprintf(&sb, " %8s", key)
	}
	sb.WriteString("\n")
	for _, brand := range table.Brands() {
		fmt.Fprintf(&sb, "%-*s", width, brand)
		for _, key := range ThicknessKeys {
			fmt.Fprintf(&sb, " %8s", FormatQty(table[brand][key]))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
