package pdfgen

import (
	"context"

	domain "github.com/quickinvoice/quickinvoice/internal/domain/pdfgen"
)

// InvoiceRenderer serializes a laid-out document into PDF bytes.
type InvoiceRenderer interface {
	RenderInvoicePDF(ctx context.Context, doc *domain.Document) ([]byte, error)
}
