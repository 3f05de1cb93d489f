package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"
)

// HandleQuotationList returns every stored quotation, newest first.
func HandleQuotationList(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		list, err := env.Quotations.List()
		if err != nil {
			return respondError(e, "quotation_list", err)
		}
		return e.JSON(http.StatusOK, list)
	}
}
