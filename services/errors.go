package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrRateUnavailable is returned by rate lookups when the brand or the
// thickness is missing from the rate table.
var ErrRateUnavailable = errors.New("rate unavailable")

// ValidationError reports input the operator has to fix. Fields names the
// offending inputs using their wire names.
type ValidationError struct {
	Fields []string
	Err    error
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		if e.Err != nil {
			return e.Err.Error()
		}
		return "invalid input"
	}
	return "missing or invalid fields: " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Unwrap() error { return e.Err }

// newValidationError converts ozzo validation errors into a ValidationError
// with sorted field names. Any other error is wrapped without field names.
func newValidationError(err error) *ValidationError {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for field := range verrs {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		return &ValidationError{Fields: fields, Err: err}
	}
	return &ValidationError{Err: err}
}

// NotFoundError reports a quotation number with no stored record.
type NotFoundError struct {
	QuotationNo int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("quotation #%d not found", e.QuotationNo)
}

// ConflictError reports a quotation number that was allocated twice.
// Callers may retry with a fresh allocation.
type ConflictError struct {
	QuotationNo int
	Err         error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("quotation number #%d already taken", e.QuotationNo)
}

func (e *ConflictError) Unwrap() error { return e.Err }

// UnavailableError reports that the store could not be reached or failed.
type UnavailableError struct {
	Op  string
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s: store unavailable: %v", e.Op, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }
