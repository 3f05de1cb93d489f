package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// excelStyles are the cell styles shared by the quotation workbook and the
// register.
type excelStyles struct {
	title    int
	subtitle int
	header   int
	body     int
	amount   int
	label    int
	total    int
}

func newExcelStyles(f *excelize.File) (excelStyles, error) {
	var s excelStyles
	var err error

	// Title style: bold, 16pt, company colour.
	s.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16, Color: "#92400E"},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return s, fmt.Errorf("create title style: %w", err)
	}

	s.subtitle, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return s, fmt.Errorf("create subtitle style: %w", err)
	}

	// Column header style: bold, white text, charcoal background, centered.
	s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return s, fmt.Errorf("create header style: %w", err)
	}

	s.body, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return s, fmt.Errorf("create body style: %w", err)
	}

	// Whole rupees with Indian digit grouping.
	numFmt := `[>=10000000]"₹"##\,##\,##\,##0;[>=100000]"₹"##\,##\,##0;"₹"##,##0`
	s.amount, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Size: 10},
		Border:       thinBorders(),
		CustomNumFmt: &numFmt,
	})
	if err != nil {
		return s, fmt.Errorf("create amount style: %w", err)
	}

	s.label, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return s, fmt.Errorf("create summary label style: %w", err)
	}

	s.total, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true, Size: 11},
		Border:       thinBorders(),
		CustomNumFmt: &numFmt,
	})
	if err != nil {
		return s, fmt.Errorf("create summary value style: %w", err)
	}
	return s, nil
}

// GenerateQuotationExcel creates a workbook with the quotation's products,
// additional items, totals breakdown and rates, and returns the file
// contents as a byte slice.
func GenerateQuotationExcel(data QuotationExport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Quotation " + data.Reference
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	st, err := newExcelStyles(f)
	if err != nil {
		return nil, err
	}

	// Four fixed product columns, then one per brand.
	lastColNum := 4 + len(data.Brands)
	if lastColNum < 5 {
		lastColNum = 5
	}
	lastCol, _ := excelize.ColumnNumberToName(lastColNum)

	if err := f.SetColWidth(sheetName, "A", "A", 30); err != nil {
		return nil, fmt.Errorf("set col width: %w", err)
	}
	if err := f.SetColWidth(sheetName, "B", lastCol, 18); err != nil {
		return nil, fmt.Errorf("set col width: %w", err)
	}

	// ── Letterhead and customer ─────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", data.Company.Name)
	f.SetCellStyle(sheetName, "A1", lastCol+"1", st.title)

	info := [][2]string{
		{"Quotation No", data.Reference},
		{"Date", data.Date},
		{"Customer", data.Customer.Name},
		{"Mobile", data.Customer.Mobile},
		{"Address", data.Customer.Address},
	}
	if data.RevisionOf > 0 {
		info = append(info, [2]string{"Revision Of", FormatQuotationNo(data.RevisionOf)})
	}
	row := 2
	for _, kv := range info {
		f.SetCellValue(sheetName, cellName(1, row), kv[0])
		f.SetCellValue(sheetName, cellName(2, row), sanitizeExcelCell(kv[1]))
		f.SetCellStyle(sheetName, cellName(1, row), cellName(2, row), st.subtitle)
		row++
	}
	row++

	// ── Products ────────────────────────────────────────────────────────

	headers := []string{"Thickness", "Size", "Qty", "Sq.Ft"}
	for _, b := range data.Brands {
		headers = append(headers, b.Name)
	}
	writeHeader(f, sheetName, row, headers, st.header)
	row++

	for _, p := range data.Products {
		f.SetCellValue(sheetName, cellName(1, row), p.Thickness)
		f.SetCellValue(sheetName, cellName(2, row), p.Size)
		f.SetCellValue(sheetName, cellName(3, row), p.Quantity)
		f.SetCellValue(sheetName, cellName(4, row), p.SqFt)
		f.SetCellStyle(sheetName, cellName(1, row), cellName(4, row), st.body)
		for i, total := range p.Totals {
			f.SetCellValue(sheetName, cellName(5+i, row), total)
			f.SetCellStyle(sheetName, cellName(5+i, row), cellName(5+i, row), st.amount)
		}
		row++
	}

	f.SetCellValue(sheetName, cellName(4, row), "Product Totals:")
	f.SetCellStyle(sheetName, cellName(4, row), cellName(4, row), st.label)
	for i, total := range data.ProductTotals {
		f.SetCellValue(sheetName, cellName(5+i, row), total)
		f.SetCellStyle(sheetName, cellName(5+i, row), cellName(5+i, row), st.total)
	}
	row += 2

	// ── Additional items ────────────────────────────────────────────────

	if len(data.Items) > 0 {
		writeHeader(f, sheetName, row, []string{"Product Name", "Description", "Qty", "Rate", "Total"}, st.header)
		row++
		for _, item := range data.Items {
			f.SetCellValue(sheetName, cellName(1, row), sanitizeExcelCell(item.ProductName))
			f.SetCellValue(sheetName, cellName(2, row), sanitizeExcelCell(item.Description))
			f.SetCellValue(sheetName, cellName(3, row), item.Quantity)
			f.SetCellValue(sheetName, cellName(4, row), item.Rate)
			f.SetCellValue(sheetName, cellName(5, row), item.Total)
			f.SetCellStyle(sheetName, cellName(1, row), cellName(4, row), st.body)
			f.SetCellStyle(sheetName, cellName(5, row), cellName(5, row), st.amount)
			row++
		}
		f.SetCellValue(sheetName, cellName(4, row), "Additional Items Total:")
		f.SetCellStyle(sheetName, cellName(4, row), cellName(4, row), st.label)
		f.SetCellValue(sheetName, cellName(5, row), data.AdditionalTotal)
		f.SetCellStyle(sheetName, cellName(5, row), cellName(5, row), st.total)
		row += 2
	}

	// ── Totals breakdown ────────────────────────────────────────────────

	writeHeader(f, sheetName, row, []string{"Brand Name", "Brand Total", "Additional", "All Total", "In Words"}, st.header)
	row++
	for _, s := range data.Summary {
		f.SetCellValue(sheetName, cellName(1, row), s.Brand)
		f.SetCellValue(sheetName, cellName(2, row), s.BrandTotal)
		f.SetCellValue(sheetName, cellName(3, row), s.Additional)
		f.SetCellValue(sheetName, cellName(4, row), s.GrandTotal)
		f.SetCellValue(sheetName, cellName(5, row), s.Words)
		f.SetCellStyle(sheetName, cellName(1, row), cellName(1, row), st.body)
		f.SetCellStyle(sheetName, cellName(2, row), cellName(3, row), st.amount)
		f.SetCellStyle(sheetName, cellName(4, row), cellName(4, row), st.total)
		f.SetCellStyle(sheetName, cellName(5, row), cellName(5, row), st.body)
		row++
	}
	row++

	// ── Rates ───────────────────────────────────────────────────────────

	rateHeaders := []string{"THICKNESS"}
	for _, b := range data.Brands {
		rateHeaders = append(rateHeaders, b.Name)
	}
	writeHeader(f, sheetName, row, rateHeaders, st.header)
	row++
	for _, rl := range data.Rates {
		f.SetCellValue(sheetName, cellName(1, row), rl.Thickness)
		f.SetCellStyle(sheetName, cellName(1, row), cellName(1, row), st.body)
		for i, rate := range rl.Rates {
			f.SetCellValue(sheetName, cellName(2+i, row), rate)
			f.SetCellStyle(sheetName, cellName(2+i, row), cellName(2+i, row), st.amount)
		}
		row++
	}

	return writeWorkbook(f)
}

// GenerateQuotationRegister lists every quotation on one sheet with its
// grand total per brand. brands fixes the column order; quotations that
// did not select a brand leave its cell empty.
func GenerateQuotationRegister(quotations []*Quotation, brands []string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Quotations"
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	st, err := newExcelStyles(f)
	if err != nil {
		return nil, err
	}

	headers := []string{"Quotation No", "Date", "Customer", "Mobile", "Revision Of", "Additional Items"}
	headers = append(headers, brands...)
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	if err := f.SetColWidth(sheetName, "A", lastCol, 18); err != nil {
		return nil, fmt.Errorf("set col width: %w", err)
	}
	if err := f.SetColWidth(sheetName, "C", "C", 30); err != nil {
		return nil, fmt.Errorf("set col width: %w", err)
	}

	writeHeader(f, sheetName, 1, headers, st.header)

	row := 2
	for _, q := range quotations {
		totals := CalcQuotationTotals(q)
		f.SetCellValue(sheetName, cellName(1, row), FormatQuotationNo(q.QuotationNo))
		f.SetCellValue(sheetName, cellName(2, row), FormatDate(q.CreatedAt))
		f.SetCellValue(sheetName, cellName(3, row), sanitizeExcelCell(q.Customer.Name))
		f.SetCellValue(sheetName, cellName(4, row), sanitizeExcelCell(q.Customer.Mobile))
		if q.RevisionOf > 0 {
			f.SetCellValue(sheetName, cellName(5, row), FormatQuotationNo(q.RevisionOf))
		}
		f.SetCellStyle(sheetName, cellName(1, row), cellName(5, row), st.body)
		f.SetCellValue(sheetName, cellName(6, row), RoundRupees(totals.AdditionalItemsTotal))
		f.SetCellStyle(sheetName, cellName(6, row), lastCol+fmt.Sprint(row), st.amount)
		for i, brand := range brands {
			if grand, ok := totals.GrandTotals[brand]; ok {
				f.SetCellValue(sheetName, cellName(7+i, row), RoundRupees(grand))
			}
		}
		row++
	}

	return writeWorkbook(f)
}

func writeHeader(f *excelize.File, sheet string, row int, headers []string, style int) {
	for i, h := range headers {
		f.SetCellValue(sheet, cellName(i+1, row), h)
	}
	f.SetCellStyle(sheet, cellName(1, row), cellName(len(headers), row), style)
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func writeWorkbook(f *excelize.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
