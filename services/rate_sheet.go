package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/xuri/excelize/v2"
)

const rateSheetName = "Rates"

// GenerateRateSheet writes the rate table as a one-sheet workbook with a
// Brand column followed by one column per thickness. The same layout is
// accepted back by ParseRateSheet.
func GenerateRateSheet(table RateTable) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), rateSheetName)

	styles, err := newExcelStyles(f)
	if err != nil {
		return nil, err
	}

	headers := append([]string{"Brand"}, ThicknessKeys...)
	writeHeader(f, rateSheetName, 1, headers, styles.header)
	f.SetColWidth(rateSheetName, "A", "A", 32)
	f.SetColWidth(rateSheetName, "B", cellColumn(len(headers)), 12)

	row := 2
	for _, brand := range table.Brands() {
		f.SetCellValue(rateSheetName, cellName(1, row), sanitizeExcelCell(brand))
		for i, key := range ThicknessKeys {
			f.SetCellValue(rateSheetName, cellName(i+2, row), table[brand][key])
		}
		f.SetCellStyle(rateSheetName, cellName(1, row), cellName(len(headers), row), styles.body)
		row++
	}

	return writeWorkbook(f)
}

// ParseRateSheet reads an uploaded .csv or .xlsx rate sheet. The first row
// must hold a Brand column and thickness columns (any spelling accepted by
// NormalizeThickness); every following non-blank row is one brand.
func ParseRateSheet(r io.Reader, fileName string) (RateTable, error) {
	var (
		headers []string
		rows    [][]string
		err     error
	)
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		headers, rows, err = parseCSV(r)
	case ".xlsx":
		headers, rows, err = parseExcel(r)
	default:
		return nil, sheetError("only .csv and .xlsx files are supported")
	}
	if err != nil {
		return nil, sheetError(err.Error())
	}

	brandCol, columns, err := mapRateHeaders(headers)
	if err != nil {
		return nil, err
	}

	raw := make(map[string]map[string]any, len(rows))
	for _, row := range rows {
		if brandCol >= len(row) || strings.TrimSpace(row[brandCol]) == "" {
			continue
		}
		rates := make(map[string]any, len(columns))
		for i, key := range columns {
			if key == "" || i >= len(row) || strings.TrimSpace(row[i]) == "" {
				continue
			}
			rates[key] = strings.TrimSpace(row[i])
		}
		raw[strings.TrimSpace(row[brandCol])] = rates
	}
	return ParseRateTable(raw)
}

// parseCSV reads a CSV file and returns headers + data rows.
func parseCSV(file io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(allRows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}
	return allRows[0], allRows[1:], nil
}

// parseExcel reads an xlsx file and returns headers + data rows from the first sheet.
func parseExcel(file io.Reader) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}
	return rows[0], rows[1:], nil
}

// mapRateHeaders finds the Brand column and maps every other column to a
// thickness key. Unrecognised columns map to "" and are ignored.
func mapRateHeaders(headers []string) (int, []string, error) {
	brandCol := -1
	columns := make([]string, len(headers))
	for i, h := range headers {
		label := strings.TrimSpace(h)
		if strings.EqualFold(label, "brand") {
			brandCol = i
			continue
		}
		if key := NormalizeThickness(strings.ToUpper(label)); isThicknessKey(key) {
			columns[i] = key
		}
	}
	if brandCol < 0 {
		return 0, nil, sheetError(`missing "Brand" column`)
	}
	return brandCol, columns, nil
}

func sheetError(message string) error {
	return newValidationError(validation.Errors{
		"file": validation.NewError("validation_invalid_rate_sheet", message),
	})
}

func cellColumn(col int) string {
	name, _ := excelize.ColumnNumberToName(col)
	return name
}
