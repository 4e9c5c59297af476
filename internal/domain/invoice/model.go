package invoice

import (
	"fmt"
	"time"

	"github.com/quickinvoice/quickinvoice/internal/types"
	"github.com/shopspring/decimal"
)

// LineItem is one row of the invoice: a quantity of a described good or
// service at a given unit rate. The amount is derived, never stored.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
}

// NewLineItem returns a blank line item with the form defaults.
func NewLineItem() LineItem {
	return LineItem{
		Description: "",
		Quantity:    decimal.NewFromInt(1),
		Rate:        decimal.Zero,
	}
}

// Amount returns quantity * rate for the item.
func (i LineItem) Amount() decimal.Decimal {
	return i.Quantity.Mul(i.Rate)
}

// Draft is the complete editable state of one invoice. It lives in memory for
// the duration of the editing session and is never persisted. Dates are kept
// as the YYYY-MM-DD strings the form edits; no ordering between issue date and
// due date is enforced.
type Draft struct {
	ID            string     `json:"id"`
	InvoiceNumber string     `json:"invoice_number"`
	Date          string     `json:"date"`
	DueDate       string     `json:"due_date"`
	CompanyName   string     `json:"company_name"`
	CompanyEmail  string     `json:"company_email"`
	BillTo        string     `json:"bill_to"`
	Items         []LineItem `json:"items"`
	Notes         string     `json:"notes"`
	Version       int        `json:"version"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// NewDraft returns a draft with generated defaults: a single blank item, the
// clock reading as issue date, issue date + 30 days as due date and a fresh
// invoice number derived from the same clock reading.
func NewDraft(now time.Time) *Draft {
	return &Draft{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_DRAFT),
		InvoiceNumber: GenerateInvoiceNumber(now),
		Date:          now.Format("2006-01-02"),
		DueDate:       now.AddDate(0, 0, 30).Format("2006-01-02"),
		Items:         []LineItem{NewLineItem()},
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// GenerateInvoiceNumber builds an identifier from the clock reading, e.g.
// INV-20250614-0930. It is generated exactly once per draft and editable as
// free text afterwards.
func GenerateInvoiceNumber(now time.Time) string {
	return fmt.Sprintf("INV-%s-%s", now.Format("20060102"), now.Format("1504"))
}

// Total returns the grand total, always recomputed as the exact sum of
// quantity * rate over all items so it can never drift from its inputs.
func (d *Draft) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range d.Items {
		total = total.Add(item.Amount())
	}
	return total
}

// Copy returns a deep copy of the draft. Snapshots handed out to consumers
// are always copies so an in-flight export is unaffected by later edits.
func (d *Draft) Copy() *Draft {
	if d == nil {
		return nil
	}

	out := *d
	out.Items = make([]LineItem, len(d.Items))
	copy(out.Items, d.Items)
	return &out
}
