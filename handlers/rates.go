package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"plyquote/services"
)

// HandleRatesGet returns the rate table in effect.
func HandleRatesGet(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.JSON(http.StatusOK, env.Rates.Book().Current())
	}
}

// HandleRatesUpdate replaces the whole rate table.
func HandleRatesUpdate(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var raw map[string]map[string]any
		if err := e.BindBody(&raw); err != nil {
			log.Printf("rates_update: invalid body: %v", err)
			return ErrorJSON(e, http.StatusBadRequest, "Invalid rate table")
		}

		table, err := services.ParseRateTable(raw)
		if err != nil {
			return respondError(e, "rates_update", err)
		}
		if err := env.Rates.Replace(table); err != nil {
			return respondError(e, "rates_update", err)
		}
		return e.JSON(http.StatusOK, env.Rates.Book().Current())
	}
}

// HandleRatesExportExcel downloads the rate table as an editable workbook.
func HandleRatesExportExcel(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := services.GenerateRateSheet(env.Rates.Book().Current())
		if err != nil {
			log.Printf("rates_export: %v", err)
			return ErrorJSON(e, http.StatusInternalServerError, "Failed to generate rate sheet")
		}
		return attachment(e, xlsxContentType, "rates.xlsx", data)
	}
}

// HandleRatesImport replaces the rate table from an uploaded .csv or .xlsx
// sheet in the layout written by HandleRatesExportExcel.
func HandleRatesImport(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		// Parse multipart form (max 10MB)
		if err := e.Request.ParseMultipartForm(10 << 20); err != nil {
			return ErrorJSON(e, http.StatusBadRequest, "File too large or invalid form data")
		}

		file, header, err := e.Request.FormFile("file")
		if err != nil {
			return ErrorJSON(e, http.StatusBadRequest, "Please select a file to upload")
		}
		defer file.Close()

		table, err := services.ParseRateSheet(file, header.Filename)
		if err != nil {
			return respondError(e, "rates_import", err)
		}
		if err := env.Rates.Replace(table); err != nil {
			return respondError(e, "rates_import", err)
		}
		return e.JSON(http.StatusOK, env.Rates.Book().Current())
	}
}
