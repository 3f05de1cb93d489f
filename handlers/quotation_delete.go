package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"plyquote/services"
)

// HandleQuotationDelete removes a quotation by number.
func HandleQuotationDelete(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		no, ok := parseQuotationNo(e)
		if !ok {
			return ErrorJSON(e, http.StatusBadRequest, "Invalid quotation number")
		}

		if err := env.Quotations.Delete(no); err != nil {
			return respondError(e, "quotation_delete", err)
		}

		log.Printf("quotation_delete: deleted %s", services.FormatQuotationNo(no))
		return e.JSON(http.StatusOK, map[string]string{
			"message": "Quotation " + services.FormatQuotationNo(no) + " deleted",
		})
	}
}
