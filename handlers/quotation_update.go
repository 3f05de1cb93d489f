package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"plyquote/services"
)

// HandleQuotationUpdate stores an edited quotation under a new number and
// links it to the one it was edited from. The original is kept.
func HandleQuotationUpdate(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		no, ok := parseQuotationNo(e)
		if !ok {
			return ErrorJSON(e, http.StatusBadRequest, "Invalid quotation number")
		}

		draft, err := bindDraft(e, env, "quotation_update")
		if err != nil {
			return respondError(e, "quotation_update", err)
		}

		q, err := env.Quotations.Revise(e.Request.Context(), no, draft)
		if err != nil {
			return respondError(e, "quotation_update", err)
		}

		log.Printf("quotation_update: stored %s as revision of %s",
			services.FormatQuotationNo(q.QuotationNo), services.FormatQuotationNo(no))
		return e.JSON(http.StatusCreated, q)
	}
}
