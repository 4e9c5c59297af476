package types

import (
	ierr "github.com/quickinvoice/quickinvoice/internal/errors"
	"github.com/samber/lo"
)

// HeaderField names a scalar draft field that can be edited by the form.
// The items collection is edited through ItemField operations instead.
type HeaderField string

const (
	HeaderFieldInvoiceNumber HeaderField = "invoice_number"
	HeaderFieldDate          HeaderField = "date"
	HeaderFieldDueDate       HeaderField = "due_date"
	HeaderFieldCompanyName   HeaderField = "company_name"
	HeaderFieldCompanyEmail  HeaderField = "company_email"
	HeaderFieldBillTo        HeaderField = "bill_to"
	HeaderFieldNotes         HeaderField = "notes"
)

func (f HeaderField) String() string {
	return string(f)
}

func (f HeaderField) Validate() error {
	allowed := []HeaderField{
		HeaderFieldInvoiceNumber,
		HeaderFieldDate,
		HeaderFieldDueDate,
		HeaderFieldCompanyName,
		HeaderFieldCompanyEmail,
		HeaderFieldBillTo,
		HeaderFieldNotes,
	}
	if !lo.Contains(allowed, f) {
		return ierr.NewError("invalid header field").
			WithHint("Please provide a valid header field name").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ItemField names an editable field of a single line item.
type ItemField string

const (
	ItemFieldDescription ItemField = "description"
	ItemFieldQuantity    ItemField = "quantity"
	ItemFieldRate        ItemField = "rate"
)

func (f ItemField) String() string {
	return string(f)
}

func (f ItemField) Validate() error {
	allowed := []ItemField{
		ItemFieldDescription,
		ItemFieldQuantity,
		ItemFieldRate,
	}
	if !lo.Contains(allowed, f) {
		return ierr.NewError("invalid item field").
			WithHint("Please provide a valid item field name").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// IsNumeric reports whether edits to the field go through numeric coercion.
func (f ItemField) IsNumeric() bool {
	return f == ItemFieldQuantity || f == ItemFieldRate
}

// ExportStatus represents the state of a PDF export. An export that was never
// started has no record at all, so the idle state needs no constant.
type ExportStatus string

const (
	// ExportStatusInProgress indicates the PDF is still being generated
	ExportStatusInProgress ExportStatus = "in_progress"
	// ExportStatusReady indicates the PDF artifact is available for download
	ExportStatusReady ExportStatus = "ready"
	// ExportStatusFailed indicates generation failed; the export is terminal
	// and a new one must be triggered manually
	ExportStatusFailed ExportStatus = "failed"
)

func (s ExportStatus) String() string {
	return string(s)
}

func (s ExportStatus) Validate() error {
	allowed := []ExportStatus{
		ExportStatusInProgress,
		ExportStatusReady,
		ExportStatusFailed,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid export status").
			WithHint("Please provide a valid export status").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
