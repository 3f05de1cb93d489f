package services

// Thickness rate keys, in display order.
const (
	Thickness19MM = "19MM"
	Thickness12MM = "12MM"
	Thickness9MM  = "9MM"
	Thickness6MM  = "6MM"
)

// ThicknessKeys lists the keys every brand in a RateTable is priced by.
var ThicknessKeys = []string{Thickness19MM, Thickness12MM, Thickness9MM, Thickness6MM}

// ThicknessLabels lists the thickness sections shown on the quotation form.
var ThicknessLabels = []string{"19MM / 18MM", Thickness12MM, Thickness9MM, Thickness6MM}

// thicknessRateKeys maps display labels that differ from their rate key.
var thicknessRateKeys = map[string]string{
	"19MM / 18MM": Thickness19MM,
}

// NormalizeThickness maps a display label onto its rate-table key.
// Labels without a mapping pass through unchanged.
func NormalizeThickness(label string) string {
	if key, ok := thicknessRateKeys[label]; ok {
		return key
	}
	return label
}

// SizeOption is a sheet size and the square feet one sheet covers.
type SizeOption struct {
	Label string  `json:"label"`
	SqFt  float64 `json:"sqft"`
}

// DefaultSize is the size preselected on new product rows.
const DefaultSize = "8 x 4"

var SizeOptions = []SizeOption{
	{Label: "8 x 4", SqFt: 32},
	{Label: "7 x 4", SqFt: 28},
	{Label: "7 x 3", SqFt: 21},
	{Label: "6 x 4", SqFt: 24},
	{Label: "6 x 3", SqFt: 18},
	{Label: "6 x 2.5", SqFt: 15},
}

// SizeArea returns the square feet per sheet for a size label, and false
// when the label is not a known size.
func SizeArea(label string) (float64, bool) {
	for _, opt := range SizeOptions {
		if opt.Label == label {
			return opt.SqFt, true
		}
	}
	return 0, false
}

// AdditionalItemNames is the catalog offered for miscellaneous line items.
var AdditionalItemNames = []string{
	"BLOCKBOARD 19MM",
	"BLOCKBOARD 25MM",
	"DURIAN-DIXON LINER 0.8MM",
	"TELESCOPIC CHANNEL",
	"SLIM BOX TENDOM",
	"FEVICOL",
	"BLUCOAT",
	"HARDWARE FITTINGS",
	"HINGES",
	"AUTO HINGES 0\"",
	"AUTO HINGES 8\"",
	"CHARCOAL PANELS & LOUVERS",
	"WPL PANELS 10FT * 1 FT",
	"PVC SHEETS",
	"PRINTED SOLID WPC DOORS",
	"WPC FRAMES",
}

// BrandDetail is the grade printed under a brand's column header.
type BrandDetail struct {
	Label string `json:"label"`
	Code  string `json:"code"`
}

var BrandDetails = map[string]BrandDetail{
	"Duraflame Semiwaterproof 303": {Label: "semiwaterproof", Code: "303"},
	"Durbi Semiwaterproof 303":     {Label: "semiwaterproof", Code: "303"},
	"Nocte Semiwaterproof 303":     {Label: "semiwaterproof", Code: "303"},
	"Nocte Waterproof 710":         {Label: "waterproof", Code: "710"},
}

// NewProductRows returns the initial form state: one empty row per
// thickness section.
func NewProductRows() []ProductRow {
	rows := make([]ProductRow, 0, len(ThicknessLabels))
	for _, label := range ThicknessLabels {
		rows = append(rows, NewProductRow(label))
	}
	return rows
}

// Catalog bundles the fixed reference tables for clients.
type Catalog struct {
	ThicknessKeys       []string               `json:"thicknessKeys"`
	ThicknessLabels     []string               `json:"thicknessLabels"`
	Sizes               []SizeOption           `json:"sizes"`
	AdditionalItemNames []string               `json:"additionalItemNames"`
	BrandDetails        map[string]BrandDetail `json:"brandDetails"`
	FirstQuotationNo    int                    `json:"firstQuotationNo"`
}

func DefaultCatalog(firstQuotationNo int) Catalog {
	return Catalog{
		ThicknessKeys:       ThicknessKeys,
		ThicknessLabels:     ThicknessLabels,
		Sizes:               SizeOptions,
		AdditionalItemNames: AdditionalItemNames,
		BrandDetails:        BrandDetails,
		FirstQuotationNo:    firstQuotationNo,
	}
}
