package main

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"plyquote/collections"
	"plyquote/config"
	"plyquote/handlers"
	"plyquote/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	app := pocketbase.New()
	env := handlers.NewEnv(app, cfg)

	app.RootCmd.AddCommand(newRatesCommand(app))

	// Create collections, seed default rates and load the rate book on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		if err := collections.Setup(app); err != nil {
			return err
		}
		if err := collections.SeedRates(app, services.DefaultRateTable()); err != nil {
			log.Printf("Warning: seed rates failed: %v", err)
		}
		env.Rates.Refresh()
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/api/test", handlers.HandleHealth())
		se.Router.GET("/api/catalog", handlers.HandleCatalog(env))

		// ── Rates ───────────────────────────────────────────────
		se.Router.GET("/api/rates", handlers.HandleRatesGet(env))
		se.Router.PUT("/api/rates", handlers.HandleRatesUpdate(env))
		se.Router.GET("/api/rates/export/excel", handlers.HandleRatesExportExcel(env))
		se.Router.POST("/api/rates/import", handlers.HandleRatesImport(env))

		// ── Quotations ──────────────────────────────────────────
		// Static paths must be registered before /api/quotations/{quotationNo}
		se.Router.POST("/api/quotations/preview", handlers.HandleQuotationPreview(env))
		se.Router.GET("/api/quotations/export/excel", handlers.HandleQuotationRegisterExcel(env))
		se.Router.GET("/api/quotations", handlers.HandleQuotationList(env))
		se.Router.POST("/api/quotations", handlers.HandleQuotationCreate(env))

		se.Router.GET("/api/quotations/{quotationNo}/export/pdf", handlers.HandleQuotationExportPDF(env))
		se.Router.GET("/api/quotations/{quotationNo}/export/excel", handlers.HandleQuotationExportExcel(env))
		se.Router.GET("/api/quotations/{quotationNo}/preview", handlers.HandleQuotationPreviewPage(env))
		se.Router.GET("/api/quotations/{quotationNo}/share", handlers.HandleQuotationShare(env))

		se.Router.GET("/api/quotations/{quotationNo}", handlers.HandleQuotationView(env))
		se.Router.PUT("/api/quotations/{quotationNo}", handlers.HandleQuotationUpdate(env))
		se.Router.DELETE("/api/quotations/{quotationNo}", handlers.HandleQuotationDelete(env))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
