package pdfgen

import (
	"strings"

	"github.com/quickinvoice/quickinvoice/internal/domain/invoice"
	domain "github.com/quickinvoice/quickinvoice/internal/domain/pdfgen"
	"github.com/shopspring/decimal"
)

const (
	documentTitle = "INVOICE"
	footerCaption = "Thank you for your business!"

	// Placeholders substituted for blank optional fields at render time.
	placeholderCompanyName  = "Company Name"
	placeholderCompanyEmail = "company@example.com"
	placeholderBillTo       = "Client Details"
	placeholderDescription  = "-"
)

// BuildDocument turns a draft snapshot into the laid-out document. It is a
// pure function: per-line amounts and the grand total are recomputed from the
// snapshot on every call and the snapshot is never modified.
func BuildDocument(d *invoice.Draft) *domain.Document {
	rows := make([]domain.Row, len(d.Items))
	total := decimal.Zero
	for i, item := range d.Items {
		// Re-coerce defensively so the renderer stays safe on snapshots that
		// did not pass through the editing operations.
		quantity := normalize(item.Quantity)
		rate := normalize(item.Rate)
		amount := quantity.Mul(rate)
		total = total.Add(amount)

		rows[i] = domain.Row{
			Description: fallback(item.Description, placeholderDescription),
			Quantity:    quantity.String(),
			Rate:        FormatCurrency(rate),
			Amount:      FormatCurrency(amount),
		}
	}

	return &domain.Document{
		Title:         documentTitle,
		InvoiceNumber: d.InvoiceNumber,
		CompanyName:   fallback(d.CompanyName, placeholderCompanyName),
		CompanyEmail:  fallback(d.CompanyEmail, placeholderCompanyEmail),
		DateIssued:    d.Date,
		DueDate:       d.DueDate,
		BillTo:        fallback(d.BillTo, placeholderBillTo),
		Rows:          rows,
		Total:         FormatCurrency(total),
		TotalAmount:   total,
		Notes:         strings.TrimSpace(d.Notes),
		Footer:        footerCaption,
	}
}

func normalize(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}

func fallback(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}

// FormatCurrency renders a monetary value as a fixed-locale USD string with
// thousands separators and exactly two decimal places, e.g. $1,234.50. The
// formatting is presentation-only and never feeds back into amounts.
func FormatCurrency(v decimal.Decimal) string {
	fixed := v.Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}

	out := "$" + b.String() + "." + fracPart
	if v.IsNegative() {
		out = "-" + out
	}
	return out
}
