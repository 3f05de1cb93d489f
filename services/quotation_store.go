package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase/core"

	"plyquote/collections"
)

// QuotationStore persists quotations in the quotations collection and
// allocates their numbers.
type QuotationStore struct {
	app      core.App
	firstNo  int
	attempts uint

	now        func() time.Time
	allocate   func(app core.App, first int) (int, error)
	newBackOff func() backoff.BackOff
}

// NewQuotationStore returns a store numbering from firstNo. A create that
// collides on its number is retried up to attempts times in total.
func NewQuotationStore(app core.App, firstNo int, attempts uint) *QuotationStore {
	if firstNo < 1 {
		firstNo = DefaultFirstQuotationNo
	}
	if attempts == 0 {
		attempts = 1
	}
	return &QuotationStore{
		app:      app,
		firstNo:  firstNo,
		attempts: attempts,
		now:      time.Now,
		allocate: NextQuotationNo,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 25 * time.Millisecond
			b.MaxInterval = 250 * time.Millisecond
			return b
		},
	}
}

// List returns every stored quotation, newest first.
func (s *QuotationStore) List() ([]*Quotation, error) {
	records, err := s.app.FindRecordsByFilter(
		collections.Quotations,
		"quotation_no > 0",
		"-created_at,-quotation_no",
		0,
		0,
	)
	if err != nil {
		return nil, &UnavailableError{Op: "list quotations", Err: err}
	}

	out := make([]*Quotation, 0, len(records))
	for _, rec := range records {
		q, err := quotationFromRecord(rec)
		if err != nil {
			return nil, &UnavailableError{Op: "list quotations", Err: err}
		}
		out = append(out, q)
	}
	return out, nil
}

// Get returns the quotation with the given number.
func (s *QuotationStore) Get(no int) (*Quotation, error) {
	rec, err := s.findRecord(s.app, no)
	if err != nil {
		return nil, err
	}
	q, err := quotationFromRecord(rec)
	if err != nil {
		return nil, &UnavailableError{Op: "get quotation", Err: err}
	}
	return q, nil
}

// NextQuotationNo returns the number the next create would try first.
func (s *QuotationStore) NextQuotationNo() (int, error) {
	no, err := NextQuotationNo(s.app, s.firstNo)
	if err != nil {
		return 0, &UnavailableError{Op: "next quotation number", Err: err}
	}
	return no, nil
}

// Create numbers and stores a draft. The draft is rejected with a
// ValidationError if customer name, mobile or brands are missing. A number
// collision is retried with a fresh number; once the attempts are used up
// the ConflictError is returned.
func (s *QuotationStore) Create(ctx context.Context, draft QuotationDraft) (*Quotation, error) {
	return s.create(ctx, draft, 0)
}

// Revise stores draft as a new quotation with a new number, linked to the
// existing quotation no. The existing quotation is left untouched.
func (s *QuotationStore) Revise(ctx context.Context, no int, draft QuotationDraft) (*Quotation, error) {
	if _, err := s.findRecord(s.app, no); err != nil {
		return nil, err
	}
	return s.create(ctx, draft, no)
}

// Delete removes the quotation with the given number.
func (s *QuotationStore) Delete(no int) error {
	rec, err := s.findRecord(s.app, no)
	if err != nil {
		return err
	}
	if err := s.app.Delete(rec); err != nil {
		return &UnavailableError{Op: "delete quotation", Err: err}
	}
	return nil
}

func (s *QuotationStore) create(ctx context.Context, draft QuotationDraft, revisionOf int) (*Quotation, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	attempt := 0
	op := func() (*Quotation, error) {
		attempt++
		q, err := s.insert(draft, revisionOf)
		if err == nil {
			return q, nil
		}
		var conflict *ConflictError
		if errors.As(err, &conflict) {
			log.Printf("quotation_store: number %d already taken (attempt %d of %d)",
				conflict.QuotationNo, attempt, s.attempts)
			return nil, err
		}
		return nil, backoff.Permanent(err)
	}

	q, err := backoff.Retry(ctx, op,
		backoff.WithBackOff(s.newBackOff()),
		backoff.WithMaxTries(s.attempts),
	)
	if err != nil {
		// Retry hands back the wrapper when the last try was permanent.
		var permanent *backoff.PermanentError
		if errors.As(err, &permanent) {
			err = permanent.Unwrap()
		}
		return nil, err
	}
	return q, nil
}

// insert reads the highest number and saves the new record in one
// transaction.
func (s *QuotationStore) insert(draft QuotationDraft, revisionOf int) (*Quotation, error) {
	var saved *Quotation
	err := s.app.RunInTransaction(func(txApp core.App) error {
		no, err := s.allocate(txApp, s.firstNo)
		if err != nil {
			return &UnavailableError{Op: "create quotation", Err: err}
		}
		q := &Quotation{
			QuotationNo:      no,
			Customer:         draft.Customer,
			SelectedBrands:   draft.SelectedBrands,
			BrandAdjustments: draft.BrandAdjustments,
			Products:         draft.Products,
			AdditionalItems:  draft.AdditionalItems,
			RevisionOf:       revisionOf,
			CreatedAt:        s.now(),
		}
		if err := saveQuotation(txApp, q); err != nil {
			return err
		}
		saved = q
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// saveQuotation writes q as a new record under q.QuotationNo.
func saveQuotation(app core.App, q *Quotation) error {
	col, err := app.FindCollectionByNameOrId(collections.Quotations)
	if err != nil {
		return &UnavailableError{Op: "create quotation", Err: err}
	}

	record := core.NewRecord(col)
	record.Set("quotation_no", q.QuotationNo)
	record.Set("customer", q.Customer)
	record.Set("selected_brands", q.SelectedBrands)
	record.Set("brand_adjustments", q.BrandAdjustments)
	record.Set("products", q.Products)
	record.Set("additional_items", q.AdditionalItems)
	if q.RevisionOf > 0 {
		record.Set("revision_of", q.RevisionOf)
	}
	record.Set("created_at", q.CreatedAt)

	if err := app.Save(record); err != nil {
		if isDuplicateNumber(err) {
			return &ConflictError{QuotationNo: q.QuotationNo, Err: err}
		}
		return &UnavailableError{Op: "create quotation", Err: err}
	}

	q.CreatedAt = record.GetDateTime("created_at").Time()
	q.Totals = CalcQuotationTotals(q)
	return nil
}

func (s *QuotationStore) findRecord(app core.App, no int) (*core.Record, error) {
	rec, err := app.FindFirstRecordByFilter(
		collections.Quotations,
		"quotation_no = {:no}",
		dbx.Params{"no": no},
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{QuotationNo: no}
		}
		return nil, &UnavailableError{Op: "find quotation", Err: err}
	}
	return rec, nil
}

func quotationFromRecord(rec *core.Record) (*Quotation, error) {
	q := &Quotation{
		QuotationNo: rec.GetInt("quotation_no"),
		RevisionOf:  rec.GetInt("revision_of"),
		CreatedAt:   rec.GetDateTime("created_at").Time(),
	}

	fields := []struct {
		name string
		dst  any
	}{
		{"customer", &q.Customer},
		{"selected_brands", &q.SelectedBrands},
		{"brand_adjustments", &q.BrandAdjustments},
		{"products", &q.Products},
		{"additional_items", &q.AdditionalItems},
	}
	for _, f := range fields {
		if err := rec.UnmarshalJSONField(f.name, f.dst); err != nil {
			return nil, fmt.Errorf("quotation %d: decode %s: %w", q.QuotationNo, f.name, err)
		}
	}

	if q.SelectedBrands == nil {
		q.SelectedBrands = []string{}
	}
	if q.BrandAdjustments == nil {
		q.BrandAdjustments = map[string]float64{}
	}
	if q.Products == nil {
		q.Products = []ProductRow{}
	}
	if q.AdditionalItems == nil {
		q.AdditionalItems = []AdditionalItem{}
	}

	q.Totals = CalcQuotationTotals(q)
	return q, nil
}
