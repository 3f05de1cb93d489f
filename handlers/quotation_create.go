package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"plyquote/services"
)

// bindDraft decodes the quotation form and prices it against the current
// rate table.
func bindDraft(e *core.RequestEvent, env *Env, op string) (services.QuotationDraft, error) {
	var in services.DraftInput
	if err := e.BindBody(&in); err != nil {
		log.Printf("%s: invalid body: %v", op, err)
		return services.QuotationDraft{}, &services.ValidationError{Err: err}
	}

	draft, err := services.BuildQuotation(env.Rates.Book().Current(), in)
	if err != nil {
		return services.QuotationDraft{}, err
	}
	for _, w := range draft.Warnings {
		log.Printf("%s: %s", op, w)
	}
	return draft, nil
}

// HandleQuotationPreview prices a quotation form without storing it.
func HandleQuotationPreview(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		draft, err := bindDraft(e, env, "quotation_preview")
		if err != nil {
			return respondError(e, "quotation_preview", err)
		}
		return e.JSON(http.StatusOK, draft)
	}
}

// HandleQuotationCreate prices, numbers and stores a new quotation.
func HandleQuotationCreate(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		draft, err := bindDraft(e, env, "quotation_create")
		if err != nil {
			return respondError(e, "quotation_create", err)
		}

		q, err := env.Quotations.Create(e.Request.Context(), draft)
		if err != nil {
			return respondError(e, "quotation_create", err)
		}

		log.Printf("quotation_create: stored %s for %q", services.FormatQuotationNo(q.QuotationNo), q.Customer.Name)
		return e.JSON(http.StatusCreated, q)
	}
}
