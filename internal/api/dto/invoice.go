package dto

import (
	"github.com/quickinvoice/quickinvoice/internal/domain/invoice"
	pdfdomain "github.com/quickinvoice/quickinvoice/internal/domain/pdfgen"
	"github.com/quickinvoice/quickinvoice/internal/types"
	"github.com/shopspring/decimal"
)

// UpdateHeaderFieldRequest sets one scalar draft field.
type UpdateHeaderFieldRequest struct {
	Field types.HeaderField `json:"field" binding:"required"`
	Value string            `json:"value"`
}

func (r UpdateHeaderFieldRequest) Validate() error {
	return r.Field.Validate()
}

// UpdateItemFieldRequest sets one field of a line item. Value carries the raw
// form text; numeric fields are coerced by the editing operation.
type UpdateItemFieldRequest struct {
	Field types.ItemField `json:"field" binding:"required"`
	Value string          `json:"value"`
}

func (r UpdateItemFieldRequest) Validate() error {
	return r.Field.Validate()
}

// LineItemResponse is one item with its derived amount.
type LineItemResponse struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// DraftResponse is the current snapshot plus the recomputed grand total.
type DraftResponse struct {
	ID            string             `json:"id"`
	InvoiceNumber string             `json:"invoice_number"`
	Date          string             `json:"date"`
	DueDate       string             `json:"due_date"`
	CompanyName   string             `json:"company_name"`
	CompanyEmail  string             `json:"company_email"`
	BillTo        string             `json:"bill_to"`
	Items         []LineItemResponse `json:"items"`
	Notes         string             `json:"notes"`
	Total         decimal.Decimal    `json:"total"`
	Version       int                `json:"version"`
}

func NewDraftResponse(d *invoice.Draft) *DraftResponse {
	items := make([]LineItemResponse, len(d.Items))
	for i, item := range d.Items {
		items[i] = LineItemResponse{
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			Amount:      item.Amount(),
		}
	}

	return &DraftResponse{
		ID:            d.ID,
		InvoiceNumber: d.InvoiceNumber,
		Date:          d.Date,
		DueDate:       d.DueDate,
		CompanyName:   d.CompanyName,
		CompanyEmail:  d.CompanyEmail,
		BillTo:        d.BillTo,
		Items:         items,
		Notes:         d.Notes,
		Total:         d.Total(),
		Version:       d.Version,
	}
}

// PreviewResponse is the laid-out document the preview pane renders. It is
// produced by the same layout pass the PDF export uses.
type PreviewResponse struct {
	Document *pdfdomain.Document `json:"document"`
}
