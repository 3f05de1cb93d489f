package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"plyquote/services"
)

type shareResponse struct {
	QuotationNo int    `json:"quotationNo"`
	Message     string `json:"message"`
	URL         string `json:"url"`
}

// HandleQuotationShare returns the WhatsApp link for sending a quotation to
// its customer.
func HandleQuotationShare(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		no, ok := parseQuotationNo(e)
		if !ok {
			return ErrorJSON(e, http.StatusBadRequest, "Invalid quotation number")
		}

		q, err := env.Quotations.Get(no)
		if err != nil {
			return respondError(e, "quotation_share", err)
		}

		return e.JSON(http.StatusOK, shareResponse{
			QuotationNo: q.QuotationNo,
			Message:     services.ShareMessage(q, env.Company.Name),
			URL:         services.WhatsAppLink(q, env.Company.Name, env.CountryCode),
		})
	}
}
