package invoice

import (
	"strings"
	"time"

	ierr "github.com/quickinvoice/quickinvoice/internal/errors"
	"github.com/quickinvoice/quickinvoice/internal/types"
	"github.com/shopspring/decimal"
)

// Operation is one discrete edit to a draft. Edits are dispatched through
// Draft.Apply so every consumer observes complete snapshots only.
type Operation interface {
	apply(d *Draft) error
}

// SetHeaderField sets a scalar draft field to the given value. Text fields
// accept any string, including empty; no error is raised for any value.
type SetHeaderField struct {
	Field types.HeaderField
	Value string
}

// SetItemField sets one field of the item at Index. For quantity and rate the
// raw text goes through numeric coercion; downstream consumers only ever
// observe the coerced value.
type SetItemField struct {
	Index int
	Field types.ItemField
	Raw   string
}

// AppendItem appends a blank item to the end of the list. Items are only ever
// appended, never inserted mid-sequence or removed.
type AppendItem struct{}

// Apply produces a new snapshot from the draft plus the operation. The
// receiver is never mutated.
func (d *Draft) Apply(op Operation) (*Draft, error) {
	next := d.Copy()
	if err := op.apply(next); err != nil {
		return nil, err
	}
	next.Version++
	next.UpdatedAt = time.Now().UTC()
	return next, nil
}

func (o SetHeaderField) apply(d *Draft) error {
	switch o.Field {
	case types.HeaderFieldInvoiceNumber:
		d.InvoiceNumber = o.Value
	case types.HeaderFieldDate:
		d.Date = o.Value
	case types.HeaderFieldDueDate:
		d.DueDate = o.Value
	case types.HeaderFieldCompanyName:
		d.CompanyName = o.Value
	case types.HeaderFieldCompanyEmail:
		d.CompanyEmail = o.Value
	case types.HeaderFieldBillTo:
		d.BillTo = o.Value
	case types.HeaderFieldNotes:
		d.Notes = o.Value
	default:
		return o.Field.Validate()
	}
	return nil
}

func (o SetItemField) apply(d *Draft) error {
	if err := o.Field.Validate(); err != nil {
		return err
	}
	if o.Index < 0 || o.Index >= len(d.Items) {
		return ierr.NewError("item index out of range").
			WithHintf("Draft has %d items", len(d.Items)).
			WithReportableDetails(map[string]any{
				"index": o.Index,
			}).
			Mark(ierr.ErrValidation)
	}

	item := &d.Items[o.Index]
	switch o.Field {
	case types.ItemFieldDescription:
		item.Description = o.Raw
	case types.ItemFieldQuantity:
		item.Quantity = CoerceNumber(o.Raw)
	case types.ItemFieldRate:
		item.Rate = CoerceNumber(o.Raw)
	}
	return nil
}

func (o AppendItem) apply(d *Draft) error {
	d.Items = append(d.Items, NewLineItem())
	return nil
}

// CoerceNumber parses raw text as a number. Parse failures, empty input and
// negative values all coerce to zero; no error is ever surfaced for numeric
// input.
func CoerceNumber(raw string) decimal.Decimal {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || value.IsNegative() {
		return decimal.Zero
	}
	return value
}
