package services

import (
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Customer struct {
	Name    string `json:"name"`
	Mobile  string `json:"mobile"`
	Address string `json:"address"`
}

// ProductRow is a quantity of sheets of one thickness and size.
// TotalSqFt and BrandTotals are derived by BuildQuotation.
type ProductRow struct {
	ID          string             `json:"id"`
	Thickness   string             `json:"thickness"`
	Size        string             `json:"size"`
	Quantity    int                `json:"quantity"`
	TotalSqFt   float64            `json:"totalSqFt"`
	BrandTotals map[string]float64 `json:"brandTotals"`
}

// NewProductRow returns an empty row for a thickness section.
func NewProductRow(thickness string) ProductRow {
	return ProductRow{
		ID:          uuid.NewString(),
		Thickness:   thickness,
		Size:        DefaultSize,
		BrandTotals: map[string]float64{},
	}
}

// AdditionalItem is a line item priced directly by quantity × rate.
type AdditionalItem struct {
	ID          string  `json:"id"`
	ProductName string  `json:"productName"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Rate        float64 `json:"rate"`
	Total       float64 `json:"total"`
}

// NewAdditionalItem returns an item preset to the first catalog name.
func NewAdditionalItem() AdditionalItem {
	return AdditionalItem{
		ID:          uuid.NewString(),
		ProductName: AdditionalItemNames[0],
		Quantity:    1,
	}
}

// QuotationTotals are the sums derived from a quotation's rows.
type QuotationTotals struct {
	BrandTotals          map[string]float64 `json:"brandTotals"`
	AdditionalItemsTotal float64            `json:"additionalItemsTotal"`
	GrandTotals          map[string]float64 `json:"grandTotals"`
}

// DraftInput is what the quotation form submits.
type DraftInput struct {
	Customer       Customer `json:"customer"`
	SelectedBrands []string `json:"selectedBrands"`
	Adjustment
	Products        []ProductRow     `json:"products"`
	AdditionalItems []AdditionalItem `json:"additionalItems"`
}

// QuotationDraft is a priced quotation that has not been numbered yet.
type QuotationDraft struct {
	Customer         Customer           `json:"customer"`
	SelectedBrands   []string           `json:"selectedBrands"`
	BrandAdjustments map[string]float64 `json:"brandAdjustments"`
	Products         []ProductRow       `json:"products"`
	AdditionalItems  []AdditionalItem   `json:"additionalItems"`
	Totals           QuotationTotals    `json:"totals"`
	Warnings         []string           `json:"warnings,omitempty"`
}

// Quotation is a stored, numbered quotation.
type Quotation struct {
	QuotationNo      int                `json:"quotationNo"`
	Customer         Customer           `json:"customer"`
	SelectedBrands   []string           `json:"selectedBrands"`
	BrandAdjustments map[string]float64 `json:"brandAdjustments"`
	Products         []ProductRow       `json:"products"`
	AdditionalItems  []AdditionalItem   `json:"additionalItems"`
	RevisionOf       int                `json:"revisionOf,omitempty"`
	CreatedAt        time.Time          `json:"createdAt"`
	Totals           QuotationTotals    `json:"totals"`
}

type requiredFields struct {
	Name   string   `json:"customer.name"`
	Mobile string   `json:"customer.mobile"`
	Brands []string `json:"selectedBrands"`
}

func validateRequired(c Customer, brands []string) validation.Errors {
	in := requiredFields{Name: c.Name, Mobile: c.Mobile, Brands: brands}
	err := validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required),
		validation.Field(&in.Mobile, validation.Required),
		validation.Field(&in.Brands, validation.Required),
	)
	if errs, ok := err.(validation.Errors); ok {
		return errs
	}
	return validation.Errors{}
}

// Validate reports the required fields a draft is missing.
func (d QuotationDraft) Validate() error {
	errs := validateRequired(d.Customer, d.SelectedBrands)
	if len(errs) > 0 {
		return newValidationError(errs)
	}
	return nil
}

// BuildQuotation validates the form input and prices it against table.
// Every derived value is recomputed; totals carried in the input are
// ignored. Missing rates and unknown sizes price at zero and are reported
// in the draft's Warnings.
func BuildQuotation(table RateTable, in DraftInput) (QuotationDraft, error) {
	customer := Customer{
		Name:    strings.TrimSpace(in.Customer.Name),
		Mobile:  strings.TrimSpace(in.Customer.Mobile),
		Address: strings.TrimSpace(in.Customer.Address),
	}
	brands := uniqueBrands(in.SelectedBrands)

	errs := validateRequired(customer, brands)
	for i, row := range in.Products {
		if err := validation.Validate(row.Quantity, validation.Min(0)); err != nil {
			errs[fmt.Sprintf("products[%d].quantity", i)] = err
		}
	}
	for i, item := range in.AdditionalItems {
		if err := validation.Validate(item.Quantity, validation.Min(0)); err != nil {
			errs[fmt.Sprintf("additionalItems[%d].quantity", i)] = err
		}
		if err := validation.Validate(item.Rate, validation.Min(0.0)); err != nil {
			errs[fmt.Sprintf("additionalItems[%d].rate", i)] = err
		}
	}
	if err := validation.Validate(in.Increase, validation.Min(0.0)); err != nil {
		errs["increasePercentage"] = err
	}
	if err := validation.Validate(in.Decrease, validation.Min(0.0)); err != nil {
		errs["decreasePercentage"] = err
	}
	if len(errs) > 0 {
		return QuotationDraft{}, newValidationError(errs)
	}

	pct := in.Adjustment.Percentage()
	var warnings warningSet

	products := make([]ProductRow, 0, len(in.Products))
	for _, row := range in.Products {
		products = append(products, priceRow(table, row, brands, pct, &warnings))
	}

	items := make([]AdditionalItem, 0, len(in.AdditionalItems))
	for _, item := range in.AdditionalItems {
		items = append(items, priceItem(item))
	}

	adjustments := make(map[string]float64, len(brands))
	for _, brand := range brands {
		adjustments[brand] = pct
	}

	draft := QuotationDraft{
		Customer:         customer,
		SelectedBrands:   brands,
		BrandAdjustments: adjustments,
		Products:         products,
		AdditionalItems:  items,
		Warnings:         warnings.list,
	}
	draft.Totals = CalcTotals(brands, products, items)
	return draft, nil
}

func priceRow(table RateTable, row ProductRow, brands []string, pct float64, warnings *warningSet) ProductRow {
	out := ProductRow{
		ID:          row.ID,
		Thickness:   row.Thickness,
		Size:        row.Size,
		Quantity:    row.Quantity,
		BrandTotals: make(map[string]float64, len(brands)),
	}
	if out.ID == "" {
		out.ID = uuid.NewString()
	}

	area, ok := SizeArea(row.Size)
	if !ok {
		warnings.add(fmt.Sprintf("unknown size %q priced at 0 sq ft", row.Size))
	}
	sqft := decimal.NewFromFloat(area).Mul(decimal.NewFromInt(int64(row.Quantity)))
	out.TotalSqFt = sqft.InexactFloat64()

	for _, brand := range brands {
		base, err := table.ResolveRate(brand, row.Thickness)
		if err != nil {
			warnings.add(err.Error())
		}
		out.BrandTotals[brand] = ApplyAdjustment(base, pct).Mul(sqft).InexactFloat64()
	}
	return out
}

func priceItem(item AdditionalItem) AdditionalItem {
	out := item
	if out.ID == "" {
		out.ID = uuid.NewString()
	}
	if out.Quantity == 0 {
		out.Quantity = 1
	}
	out.ProductName = strings.TrimSpace(out.ProductName)
	out.Description = strings.TrimSpace(out.Description)
	out.Total = itemTotal(out).InexactFloat64()
	return out
}

func itemTotal(item AdditionalItem) decimal.Decimal {
	return decimal.NewFromInt(int64(item.Quantity)).Mul(decimal.NewFromFloat(item.Rate))
}

// CalcTotals sums stored row totals per brand, the additional items, and
// the per-brand grand totals. It reads the snapshot only and never
// consults a rate table.
func CalcTotals(brands []string, products []ProductRow, items []AdditionalItem) QuotationTotals {
	additional := decimal.Zero
	for _, item := range items {
		additional = additional.Add(itemTotal(item))
	}

	totals := QuotationTotals{
		BrandTotals:          make(map[string]float64, len(brands)),
		AdditionalItemsTotal: additional.InexactFloat64(),
		GrandTotals:          make(map[string]float64, len(brands)),
	}
	for _, brand := range brands {
		sum := decimal.Zero
		for _, row := range products {
			sum = sum.Add(decimal.NewFromFloat(row.BrandTotals[brand]))
		}
		totals.BrandTotals[brand] = sum.InexactFloat64()
		totals.GrandTotals[brand] = sum.Add(additional).InexactFloat64()
	}
	return totals
}

// CalcQuotationTotals recomputes the totals of a stored quotation from its
// own snapshot.
func CalcQuotationTotals(q *Quotation) QuotationTotals {
	return CalcTotals(q.SelectedBrands, q.Products, q.AdditionalItems)
}

// EffectiveRates returns each selected brand's rates with the quotation's
// frozen adjustment applied, keyed by brand then thickness key.
func EffectiveRates(table RateTable, brands []string, adjustments map[string]float64) map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(brands))
	for _, brand := range brands {
		rates := make(map[string]float64, len(ThicknessKeys))
		for _, key := range ThicknessKeys {
			rates[key] = EffectiveRate(table, brand, key, adjustments[brand]).InexactFloat64()
		}
		out[brand] = rates
	}
	return out
}

// RoundRupees rounds an amount to whole rupees for presentation.
func RoundRupees(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(0).InexactFloat64()
}

func uniqueBrands(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, b := range in {
		b = strings.TrimSpace(b)
		if b == "" || seen[b] {
			continue
		}
		seen[b] = true
		out = append(out, b)
	}
	return out
}

type warningSet struct {
	seen map[string]bool
	list []string
}

func (w *warningSet) add(msg string) {
	if w.seen == nil {
		w.seen = make(map[string]bool)
	}
	if w.seen[msg] {
		return
	}
	w.seen[msg] = true
	w.list = append(w.list, msg)
}
