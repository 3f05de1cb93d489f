package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"plyquote/services"
	"plyquote/templates"
)

// loadExport fetches a quotation and rounds it for the renderers.
func loadExport(e *core.RequestEvent, env *Env) (*services.Quotation, services.QuotationExport, error) {
	no, ok := parseQuotationNo(e)
	if !ok {
		return nil, services.QuotationExport{}, &services.ValidationError{Fields: []string{"quotationNo"}}
	}
	q, err := env.Quotations.Get(no)
	if err != nil {
		return nil, services.QuotationExport{}, err
	}
	return q, services.BuildQuotationExport(q, env.Rates.Book().Current(), env.Company, env.CountryCode), nil
}

func attachment(e *core.RequestEvent, contentType, filename string, body []byte) error {
	e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	return e.Blob(http.StatusOK, contentType, body)
}

// HandleQuotationExportPDF downloads a quotation as PDF.
func HandleQuotationExportPDF(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q, data, err := loadExport(e, env)
		if err != nil {
			return respondError(e, "export_pdf", err)
		}

		pdfBytes, err := services.GenerateQuotationPDF(data)
		if err != nil {
			log.Printf("export_pdf: failed to generate: %v", err)
			return ErrorJSON(e, http.StatusInternalServerError, "Failed to generate PDF file")
		}
		return attachment(e, "application/pdf", services.PDFFilename(q), pdfBytes)
	}
}

// HandleQuotationExportExcel downloads a quotation as an Excel workbook.
func HandleQuotationExportExcel(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q, data, err := loadExport(e, env)
		if err != nil {
			return respondError(e, "export_excel", err)
		}

		xlsxBytes, err := services.GenerateQuotationExcel(data)
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return ErrorJSON(e, http.StatusInternalServerError, "Failed to generate Excel file")
		}
		return attachment(e, xlsxContentType, services.ExcelFilename(q), xlsxBytes)
	}
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// HandleQuotationRegisterExcel downloads every stored quotation as one
// sheet. Brand columns follow the current rate table, then any other brand
// a stored quotation selected.
func HandleQuotationRegisterExcel(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		list, err := env.Quotations.List()
		if err != nil {
			return respondError(e, "export_register", err)
		}

		brands := env.Rates.Book().Current().Brands()
		seen := make(map[string]bool, len(brands))
		for _, b := range brands {
			seen[b] = true
		}
		for _, q := range list {
			for _, b := range q.SelectedBrands {
				if !seen[b] {
					seen[b] = true
					brands = append(brands, b)
				}
			}
		}

		xlsxBytes, err := services.GenerateQuotationRegister(list, brands)
		if err != nil {
			log.Printf("export_register: failed to generate: %v", err)
			return ErrorJSON(e, http.StatusInternalServerError, "Failed to generate Excel file")
		}
		return attachment(e, xlsxContentType, "quotations.xlsx", xlsxBytes)
	}
}

// HandleQuotationPreviewPage renders a printable HTML quotation.
func HandleQuotationPreviewPage(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		_, data, err := loadExport(e, env)
		if err != nil {
			return respondError(e, "quotation_preview_page", err)
		}

		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		return templates.QuotationPreview(data).Render(e.Request.Context(), e.Response)
	}
}
