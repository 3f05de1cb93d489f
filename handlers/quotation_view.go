package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase/core"
)

// parseQuotationNo reads the {quotationNo} path value. A leading '#' is
// accepted so "#1001" and "1001" name the same quotation.
func parseQuotationNo(e *core.RequestEvent) (int, bool) {
	raw := strings.TrimPrefix(strings.TrimSpace(e.Request.PathValue("quotationNo")), "#")
	no, err := strconv.Atoi(raw)
	if err != nil || no <= 0 {
		return 0, false
	}
	return no, true
}

// HandleQuotationView returns one stored quotation with its totals.
func HandleQuotationView(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		no, ok := parseQuotationNo(e)
		if !ok {
			return ErrorJSON(e, http.StatusBadRequest, "Invalid quotation number")
		}

		q, err := env.Quotations.Get(no)
		if err != nil {
			return respondError(e, "quotation_view", err)
		}
		return e.JSON(http.StatusOK, q)
	}
}
