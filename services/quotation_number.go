package services

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pocketbase/pocketbase/core"

	"plyquote/collections"
)

// DefaultFirstQuotationNo is the number given to the first quotation of an
// empty store.
const DefaultFirstQuotationNo = 1001

// NextQuotationNo returns the highest stored quotation number plus one, or
// first when no quotation exists.
//
// The read and the later insert are not atomic on their own. Callers run
// both inside one transaction and rely on the unique index on quotation_no
// to reject a number that was taken in between.
func NextQuotationNo(app core.App, first int) (int, error) {
	records, err := app.FindRecordsByFilter(
		collections.Quotations,
		"quotation_no > 0",
		"-quotation_no",
		1,
		0,
	)
	if err != nil {
		return 0, fmt.Errorf("query highest quotation number: %w", err)
	}
	if len(records) == 0 {
		return first, nil
	}
	return records[0].GetInt("quotation_no") + 1, nil
}

// isDuplicateNumber reports whether a save failed on the quotation_no
// uniqueness constraint, either as a PocketBase validation error or as the
// raw SQLite constraint error.
func isDuplicateNumber(err error) bool {
	if err == nil {
		return false
	}
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		if _, ok := verrs["quotation_no"]; ok {
			return true
		}
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") && strings.Contains(msg, "quotation_no")
}
