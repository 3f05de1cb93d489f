package services

import (
	"fmt"
	"math"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// pdfGrid is the column count of every PDF row. Brand columns split what
// the fixed columns leave over.
const pdfGrid = 24

var (
	brandColor  = &props.Color{Red: 146, Green: 64, Blue: 14}
	mutedColor  = &props.Color{Red: 107, Green: 114, Blue: 128}
	amountColor = &props.Color{Red: 5, Green: 150, Blue: 105}
	headerFill  = &props.Cell{
		BackgroundColor: &props.Color{Red: 249, Green: 250, Blue: 251},
		BorderType:      border.Full,
		BorderColor:     &props.Color{Red: 209, Green: 213, Blue: 219},
	}
	bodyCell = &props.Cell{
		BorderType:  border.Full,
		BorderColor: &props.Color{Red: 209, Green: 213, Blue: 219},
	}
)

// GenerateQuotationPDF renders a quotation document using maroto/v2.
// It returns the raw PDF bytes or an error.
func GenerateQuotationPDF(data QuotationExport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithMaxGridSize(pdfGrid).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addLetterhead(m, data.Company)
	addQuotationInfo(m, data)
	if len(data.Products) > 0 {
		addProductTable(m, data)
	}
	if len(data.Items) > 0 {
		addItemsTable(m, data)
	}
	addTotalsBreakdown(m, data)
	addRatesTable(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

func addLetterhead(m core.Maroto, c Letterhead) {
	m.AddRows(
		row.New(12).Add(
			col.New(pdfGrid).Add(
				text.New(c.Name, props.Text{
					Size:  20,
					Style: fontstyle.Bold,
					Align: align.Center,
					Color: brandColor,
				}),
			),
		),
		row.New(7).Add(
			col.New(pdfGrid).Add(
				text.New(c.Tagline, props.Text{Size: 10, Align: align.Center, Color: brandColor}),
			),
		),
		row.New(5).Add(
			col.New(pdfGrid).Add(
				text.New(c.Phone, props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right, Color: brandColor}),
			),
		),
		row.New(5).Add(
			col.New(pdfGrid).Add(
				text.New(c.Website, props.Text{Size: 8, Align: align.Right, Color: brandColor}),
			),
		),
	)
	m.AddRows(line.NewRow(3, props.Line{Color: brandColor}))
	m.AddRows(
		row.New(8).Add(
			col.New(pdfGrid).Add(
				text.New(c.Address, props.Text{Size: 10, Align: align.Center, Color: brandColor}),
			),
		),
	)
	m.AddRows(line.NewRow(3, props.Line{Color: brandColor}))
}

func addQuotationInfo(m core.Maroto, data QuotationExport) {
	heading := props.Text{Size: 10, Style: fontstyle.Bold}
	left := props.Text{Size: 9}
	right := props.Text{Size: 9, Align: align.Right}
	rightHeading := heading
	rightHeading.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New("Customer Details", heading)),
			col.New(12).Add(text.New("Quotation Info", rightHeading)),
		),
		row.New(5).Add(
			col.New(12).Add(text.New("Name: "+data.Customer.Name, left)),
			col.New(12).Add(text.New("Quotation No: "+data.Reference, right)),
		),
		row.New(5).Add(
			col.New(12).Add(text.New("Mobile: "+data.Mobile, left)),
			col.New(12).Add(text.New("Date: "+data.Date, right)),
		),
	)

	revision := ""
	if data.RevisionOf > 0 {
		revision = "Revision of: " + FormatQuotationNo(data.RevisionOf)
	}
	m.AddRows(
		row.New(5).Add(
			col.New(12).Add(text.New("Address: "+data.Customer.Address, left)),
			col.New(12).Add(text.New(revision, right)),
		),
	)
	m.AddRows(row.New(4))
}

// brandWidth splits the grid space left after the fixed columns evenly
// across the brand columns.
func brandWidth(fixed, brands int) int {
	if brands == 0 {
		return 0
	}
	w := (pdfGrid - fixed) / brands
	if w < 1 {
		w = 1
	}
	return w
}

func addSectionTitle(m core.Maroto, title string) {
	m.AddRows(
		row.New(8).Add(
			col.New(pdfGrid).Add(
				text.New(title, props.Text{Size: 11, Style: fontstyle.Bold, Top: 2}),
			),
		),
	)
}

// brandHeaderCols returns one header column per brand with its grade label
// and code underneath.
func brandHeaderCols(brands []BrandColumn, width int) []core.Col {
	cols := make([]core.Col, 0, len(brands))
	for _, b := range brands {
		cols = append(cols, col.New(width).Add(
			text.New(b.Name, props.Text{Size: 7, Style: fontstyle.Bold, Align: align.Center, Top: 1}),
			text.New(b.Label+" "+b.Code, props.Text{Size: 6, Align: align.Center, Top: 7, Color: mutedColor}),
		).WithStyle(headerFill))
	}
	return cols
}

func addProductTable(m core.Maroto, data QuotationExport) {
	addSectionTitle(m, "Product Details")

	head := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Center, Top: 3}
	headLeft := head
	headLeft.Align = align.Left
	w := brandWidth(12, len(data.Brands))

	header := row.New(12).Add(
		col.New(4).Add(text.New("Thickness", headLeft)).WithStyle(headerFill),
		col.New(3).Add(text.New("Size", head)).WithStyle(headerFill),
		col.New(2).Add(text.New("Qty", head)).WithStyle(headerFill),
		col.New(3).Add(text.New("Sq.Ft", head)).WithStyle(headerFill),
	)
	header.Add(brandHeaderCols(data.Brands, w)...)
	m.AddRows(header)

	cell := props.Text{Size: 8, Align: align.Center, Top: 1.5}
	cellLeft := cell
	cellLeft.Align = align.Left
	amount := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Center, Top: 1.5, Color: amountColor}

	for _, p := range data.Products {
		r := row.New(6).Add(
			col.New(4).Add(text.New(p.Thickness, cellLeft)).WithStyle(bodyCell),
			col.New(3).Add(text.New(p.Size, cell)).WithStyle(bodyCell),
			col.New(2).Add(text.New(fmt.Sprintf("%d", p.Quantity), cell)).WithStyle(bodyCell),
			col.New(3).Add(text.New(FormatQty(p.SqFt), cell)).WithStyle(bodyCell),
		)
		for _, total := range p.Totals {
			r.Add(col.New(w).Add(text.New(FormatRupees(total), amount)).WithStyle(bodyCell))
		}
		m.AddRows(r)
	}

	totalLabel := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right, Top: 1.5}
	r := row.New(6).Add(
		col.New(12).Add(text.New("Product Totals:", totalLabel)).WithStyle(headerFill),
	)
	for _, total := range data.ProductTotals {
		r.Add(col.New(w).Add(text.New(FormatRupees(total), amount)).WithStyle(headerFill))
	}
	m.AddRows(r)
}

func addItemsTable(m core.Maroto, data QuotationExport) {
	addSectionTitle(m, "Additional Items")

	head := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Center, Top: 1.5}
	headLeft := head
	headLeft.Align = align.Left

	m.AddRows(
		row.New(6).Add(
			col.New(7).Add(text.New("Product Name", headLeft)).WithStyle(headerFill),
			col.New(7).Add(text.New("Description", headLeft)).WithStyle(headerFill),
			col.New(2).Add(text.New("Qty", head)).WithStyle(headerFill),
			col.New(4).Add(text.New("Rate", head)).WithStyle(headerFill),
			col.New(4).Add(text.New("Total", head)).WithStyle(headerFill),
		),
	)

	cell := props.Text{Size: 8, Align: align.Center, Top: 1.5}
	cellLeft := cell
	cellLeft.Align = align.Left
	amount := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Center, Top: 1.5, Color: amountColor}

	for _, item := range data.Items {
		m.AddRows(
			row.New(6).Add(
				col.New(7).Add(text.New(item.ProductName, cellLeft)).WithStyle(bodyCell),
				col.New(7).Add(text.New(item.Description, cellLeft)).WithStyle(bodyCell),
				col.New(2).Add(text.New(fmt.Sprintf("%d", item.Quantity), cell)).WithStyle(bodyCell),
				col.New(4).Add(text.New("₹"+FormatQty(item.Rate), cell)).WithStyle(bodyCell),
				col.New(4).Add(text.New(FormatRupees(item.Total), amount)).WithStyle(bodyCell),
			),
		)
	}

	m.AddRows(
		row.New(6).Add(
			col.New(20).Add(text.New("Additional Items Total:", props.Text{
				Size: 8, Style: fontstyle.Bold, Align: align.Right, Top: 1.5,
			})).WithStyle(headerFill),
			col.New(4).Add(text.New(FormatRupees(data.AdditionalTotal), amount)).WithStyle(headerFill),
		),
	)
}

func addTotalsBreakdown(m core.Maroto, data QuotationExport) {
	addSectionTitle(m, "Totals Breakdown")

	head := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Center, Top: 1.5}
	headLeft := head
	headLeft.Align = align.Left

	m.AddRows(
		row.New(6).Add(
			col.New(9).Add(text.New("Brand Name", headLeft)).WithStyle(headerFill),
			col.New(5).Add(text.New("Brand Total", head)).WithStyle(headerFill),
			col.New(5).Add(text.New("Additional", head)).WithStyle(headerFill),
			col.New(5).Add(text.New("All Total", head)).WithStyle(headerFill),
		),
	)

	cell := props.Text{Size: 8, Align: align.Center, Top: 1.5}
	cellLeft := cell
	cellLeft.Align = align.Left
	bold := cell
	bold.Style = fontstyle.Bold
	words := props.Text{Size: 7, Align: align.Left, Top: 1, Color: mutedColor}

	for _, s := range data.Summary {
		m.AddRows(
			row.New(6).Add(
				col.New(9).Add(text.New(s.Brand, cellLeft)).WithStyle(bodyCell),
				col.New(5).Add(text.New(FormatRupees(s.BrandTotal), cell)).WithStyle(bodyCell),
				col.New(5).Add(text.New(FormatRupees(s.Additional), cell)).WithStyle(bodyCell),
				col.New(5).Add(text.New(FormatRupees(s.GrandTotal), bold)).WithStyle(bodyCell),
			),
			row.New(5).Add(
				col.New(pdfGrid).Add(text.New(s.Words, words)),
			),
		)
	}
}

func addRatesTable(m core.Maroto, data QuotationExport) {
	if len(data.Brands) == 0 {
		return
	}
	addSectionTitle(m, "Plywood Rates")

	head := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left, Top: 3}
	w := brandWidth(6, len(data.Brands))

	header := row.New(12).Add(col.New(6).Add(text.New("THICKNESS", head)).WithStyle(headerFill))
	header.Add(brandHeaderCols(data.Brands, w)...)
	m.AddRows(header)

	cell := props.Text{Size: 8, Align: align.Center, Top: 1.5}
	cellLeft := cell
	cellLeft.Align = align.Left

	for _, rl := range data.Rates {
		r := row.New(6).Add(col.New(6).Add(text.New(rl.Thickness, cellLeft)).WithStyle(bodyCell))
		for _, rate := range rl.Rates {
			r.Add(col.New(w).Add(text.New(FormatRupees(rate), cell)).WithStyle(bodyCell))
		}
		m.AddRows(r)
	}
}

// FormatQty returns a string representation of the quantity value.
// Whole numbers are formatted without decimals; fractional values get 2 decimal places.
func FormatQty(qty float64) string {
	if qty == math.Trunc(qty) {
		return fmt.Sprintf("%.0f", qty)
	}
	return fmt.Sprintf("%.2f", qty)
}
