package handlers

import (
	"github.com/pocketbase/pocketbase/core"

	"plyquote/config"
	"plyquote/services"
)

// Env is what the quotation and rate handlers close over.
type Env struct {
	Quotations *services.QuotationStore
	Rates      *services.RateStore

	Company          services.Letterhead
	CountryCode      string
	FirstQuotationNo int
}

// NewEnv wires the stores for app from cfg. The rate book starts on the
// default table until Rates.Refresh is called.
func NewEnv(app core.App, cfg config.Config) *Env {
	return &Env{
		Quotations:       services.NewQuotationStore(app, cfg.FirstQuotationNo, cfg.AllocationAttempts),
		Rates:            services.NewRateStore(app, services.NewRateBook(nil)),
		Company:          services.Letterhead(cfg.Company),
		CountryCode:      cfg.WhatsAppCountryCode,
		FirstQuotationNo: cfg.FirstQuotationNo,
	}
}
