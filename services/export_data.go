package services

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Letterhead is the company block printed at the top of exported
// quotations.
type Letterhead struct {
	Name    string
	Tagline string
	Address string
	Phone   string
	Website string
}

// BrandColumn is one selected brand as it heads the export tables.
type BrandColumn struct {
	Name       string
	Label      string
	Code       string
	Adjustment float64
}

// ProductLine is a product row with its per-brand totals rounded to whole
// rupees, in BrandColumn order.
type ProductLine struct {
	Thickness string
	Size      string
	Quantity  int
	SqFt      float64
	Totals    []float64
}

// ItemLine is an additional item with its total rounded to whole rupees.
type ItemLine struct {
	ProductName string
	Description string
	Quantity    int
	Rate        float64
	Total       float64
}

// BrandSummary is one line of the totals breakdown.
type BrandSummary struct {
	Brand      string
	BrandTotal float64
	Additional float64
	GrandTotal float64
	Words      string
}

// RateLine is one thickness of the rates reference table, with the rate
// each brand was priced at rounded to whole rupees.
type RateLine struct {
	Thickness string
	Rates     []float64
}

// QuotationExport holds everything the PDF, Excel and HTML renderers
// print. Every amount in it is already rounded; renderers only format.
type QuotationExport struct {
	Company     Letterhead
	QuotationNo int
	Reference   string
	Date        string
	Customer    Customer
	Mobile      string
	RevisionOf  int

	Brands          []BrandColumn
	Products        []ProductLine
	ProductTotals   []float64
	Items           []ItemLine
	AdditionalTotal float64
	Summary         []BrandSummary
	Rates           []RateLine
}

// BuildQuotationExport rounds a stored quotation for presentation. Totals
// and rates come from the quotation's own snapshot. table only supplies the
// reference rate of a thickness the quotation has no priced rows for.
func BuildQuotationExport(q *Quotation, table RateTable, company Letterhead, countryCode string) QuotationExport {
	totals := CalcQuotationTotals(q)

	data := QuotationExport{
		Company:         company,
		QuotationNo:     q.QuotationNo,
		Reference:       FormatQuotationNo(q.QuotationNo),
		Date:            FormatDate(q.CreatedAt),
		Customer:        q.Customer,
		Mobile:          FormatMobile(q.Customer.Mobile, countryCode),
		RevisionOf:      q.RevisionOf,
		AdditionalTotal: RoundRupees(totals.AdditionalItemsTotal),
	}

	for _, brand := range q.SelectedBrands {
		detail := BrandDetails[brand]
		data.Brands = append(data.Brands, BrandColumn{
			Name:       brand,
			Label:      detail.Label,
			Code:       detail.Code,
			Adjustment: q.BrandAdjustments[brand],
		})
		data.ProductTotals = append(data.ProductTotals, RoundRupees(totals.BrandTotals[brand]))
		grand := RoundRupees(totals.GrandTotals[brand])
		data.Summary = append(data.Summary, BrandSummary{
			Brand:      brand,
			BrandTotal: RoundRupees(totals.BrandTotals[brand]),
			Additional: data.AdditionalTotal,
			GrandTotal: grand,
			Words:      AmountToWords(grand),
		})
	}

	for _, p := range q.Products {
		line := ProductLine{
			Thickness: p.Thickness,
			Size:      p.Size,
			Quantity:  p.Quantity,
			SqFt:      p.TotalSqFt,
		}
		for _, brand := range q.SelectedBrands {
			line.Totals = append(line.Totals, RoundRupees(p.BrandTotals[brand]))
		}
		data.Products = append(data.Products, line)
	}

	for _, item := range q.AdditionalItems {
		data.Items = append(data.Items, ItemLine{
			ProductName: item.ProductName,
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			Total:       RoundRupees(item.Total),
		})
	}

	quoted := quotedRates(q)
	effective := EffectiveRates(table, q.SelectedBrands, q.BrandAdjustments)
	for _, key := range ThicknessKeys {
		line := RateLine{Thickness: key}
		for _, brand := range q.SelectedBrands {
			rate, ok := quoted[key][brand]
			if !ok {
				rate = effective[brand][key]
			}
			line.Rates = append(line.Rates, RoundRupees(rate))
		}
		data.Rates = append(data.Rates, line)
	}

	return data
}

// quotedRates recovers the rate each brand was priced at per thickness key
// from the stored rows: brand total over square feet of that thickness.
// Thicknesses without any square feet are left out.
func quotedRates(q *Quotation) map[string]map[string]float64 {
	sqft := make(map[string]decimal.Decimal)
	totals := make(map[string]map[string]decimal.Decimal)
	for _, p := range q.Products {
		if p.TotalSqFt <= 0 {
			continue
		}
		key := NormalizeThickness(p.Thickness)
		sqft[key] = sqft[key].Add(decimal.NewFromFloat(p.TotalSqFt))
		if totals[key] == nil {
			totals[key] = make(map[string]decimal.Decimal)
		}
		for brand, total := range p.BrandTotals {
			totals[key][brand] = totals[key][brand].Add(decimal.NewFromFloat(total))
		}
	}

	rates := make(map[string]map[string]float64, len(totals))
	for key, byBrand := range totals {
		rates[key] = make(map[string]float64, len(byBrand))
		for brand, total := range byBrand {
			rates[key][brand] = total.Div(sqft[key]).InexactFloat64()
		}
	}
	return rates
}

// PDFFilename is the download name of a quotation PDF, e.g.
// quotation-RameshPatil-1001.pdf.
func PDFFilename(q *Quotation) string {
	name := strings.Join(strings.Fields(q.Customer.Name), "")
	return "quotation-" + name + "-" + strings.TrimPrefix(FormatQuotationNo(q.QuotationNo), "#") + ".pdf"
}

// ExcelFilename is the download name of a quotation workbook.
func ExcelFilename(q *Quotation) string {
	return strings.TrimSuffix(PDFFilename(q), ".pdf") + ".xlsx"
}
