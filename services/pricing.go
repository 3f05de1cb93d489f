// Package services implements quotation pricing, numbering, storage and
// export for plywood quotations.
package services

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// ThicknessRates maps a thickness key to a rate per square foot.
type ThicknessRates = map[string]float64

// RateTable maps a brand name to its thickness rates.
type RateTable map[string]ThicknessRates

// DefaultRateTable is used whenever the rate store is empty or unreachable.
func DefaultRateTable() RateTable {
	return RateTable{
		"Duraflame Semiwaterproof 303": {Thickness19MM: 67, Thickness12MM: 50, Thickness9MM: 42, Thickness6MM: 32},
		"Durbi Semiwaterproof 303":     {Thickness19MM: 77, Thickness12MM: 56, Thickness9MM: 46.5, Thickness6MM: 35},
		"Nocte Semiwaterproof 303":     {Thickness19MM: 80, Thickness12MM: 59, Thickness9MM: 49.5, Thickness6MM: 38.5},
		"Nocte Waterproof 710":         {Thickness19MM: 95, Thickness12MM: 66, Thickness9MM: 56, Thickness6MM: 46},
	}
}

// Brands returns the brand names in sorted order.
func (t RateTable) Brands() []string {
	brands := make([]string, 0, len(t))
	for brand := range t {
		brands = append(brands, brand)
	}
	sort.Strings(brands)
	return brands
}

// Clone returns a deep copy of the table.
func (t RateTable) Clone() RateTable {
	out := make(RateTable, len(t))
	for brand, rates := range t {
		cp := make(ThicknessRates, len(rates))
		for k, v := range rates {
			cp[k] = v
		}
		out[brand] = cp
	}
	return out
}

// ResolveRate returns the base rate for a brand and thickness label.
// The label is normalized first. A missing brand or thickness yields
// ErrRateUnavailable.
func (t RateTable) ResolveRate(brand, thicknessLabel string) (decimal.Decimal, error) {
	rates, ok := t[brand]
	if !ok {
		return decimal.Zero, fmt.Errorf("brand %q: %w", brand, ErrRateUnavailable)
	}
	key := NormalizeThickness(thicknessLabel)
	rate, ok := rates[key]
	if !ok {
		return decimal.Zero, fmt.Errorf("brand %q thickness %q: %w", brand, key, ErrRateUnavailable)
	}
	return decimal.NewFromFloat(rate), nil
}

// BaseRate is ResolveRate with missing entries read as a zero rate.
func (t RateTable) BaseRate(brand, thicknessLabel string) decimal.Decimal {
	rate, err := t.ResolveRate(brand, thicknessLabel)
	if err != nil {
		return decimal.Zero
	}
	return rate
}

// Adjustment holds the two percentage inputs of the quotation form.
// At most one of them is positive.
type Adjustment struct {
	Increase float64 `json:"increasePercentage"`
	Decrease float64 `json:"decreasePercentage"`
}

// SetIncrease sets the increase percentage; a positive value clears the
// decrease.
func (a *Adjustment) SetIncrease(pct float64) {
	a.Increase = pct
	if pct > 0 {
		a.Decrease = 0
	}
}

// SetDecrease sets the decrease percentage; a positive value clears the
// increase.
func (a *Adjustment) SetDecrease(pct float64) {
	a.Decrease = pct
	if pct > 0 {
		a.Increase = 0
	}
}

// Percentage collapses the form inputs into one signed percentage.
func (a Adjustment) Percentage() float64 {
	return CollapseAdjustment(a.Increase, a.Decrease)
}

// CollapseAdjustment returns +increase when increase is positive, else
// -decrease when decrease is positive, else 0.
func CollapseAdjustment(increase, decrease float64) float64 {
	switch {
	case increase > 0:
		return increase
	case decrease > 0:
		return -decrease
	default:
		return 0
	}
}

// AdjustmentFromPercentage splits a frozen signed percentage back into the
// form inputs, as when a stored quotation is reopened for editing.
func AdjustmentFromPercentage(pct float64) Adjustment {
	switch {
	case pct > 0:
		return Adjustment{Increase: pct}
	case pct < 0:
		return Adjustment{Decrease: -pct}
	default:
		return Adjustment{}
	}
}

var hundred = decimal.NewFromInt(100)

// ApplyAdjustment returns base × (1 + pct/100), unrounded.
func ApplyAdjustment(base decimal.Decimal, pct float64) decimal.Decimal {
	if pct == 0 {
		return base
	}
	factor := decimal.NewFromInt(1).Add(decimal.NewFromFloat(pct).Div(hundred))
	return base.Mul(factor)
}

// EffectiveRate is the adjusted unit rate for a brand and thickness label.
// Missing rates price at zero.
func EffectiveRate(table RateTable, brand, thicknessLabel string, pct float64) decimal.Decimal {
	return ApplyAdjustment(table.BaseRate(brand, thicknessLabel), pct)
}
