package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"plyquote/services"
)

type catalogResponse struct {
	services.Catalog
	NewProductRows    []services.ProductRow   `json:"newProductRows"`
	NextQuotationNo   int                     `json:"nextQuotationNo"`
	NewAdditionalItem services.AdditionalItem `json:"newAdditionalItem"`
}

// HandleCatalog returns the fixed reference tables the quotation form is
// built from, plus a fresh set of empty rows.
func HandleCatalog(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		next, err := env.Quotations.NextQuotationNo()
		if err != nil {
			return respondError(e, "catalog", err)
		}
		return e.JSON(http.StatusOK, catalogResponse{
			Catalog:           services.DefaultCatalog(env.FirstQuotationNo),
			NewProductRows:    services.NewProductRows(),
			NextQuotationNo:   next,
			NewAdditionalItem: services.NewAdditionalItem(),
		})
	}
}
