package pdfgen

import (
	"bytes"
	"context"

	"github.com/jung-kurt/gofpdf"
	domain "github.com/quickinvoice/quickinvoice/internal/domain/pdfgen"
	ierr "github.com/quickinvoice/quickinvoice/internal/errors"
	"github.com/quickinvoice/quickinvoice/internal/logger"
)

// Table column widths in mm; the page content area is 180mm wide.
const (
	colDescription = 80.0
	colQuantity    = 25.0
	colRate        = 40.0
	colAmount      = 35.0
	contentWidth   = colDescription + colQuantity + colRate + colAmount
)

// GofpdfRenderer compiles documents to PDF with gofpdf.
type GofpdfRenderer struct {
	log *logger.Logger
}

// NewGofpdfRenderer creates the production PDF renderer.
func NewGofpdfRenderer(log *logger.Logger) InvoiceRenderer {
	return &GofpdfRenderer{log: log}
}

// RenderInvoicePDF draws the fixed single-page template: title block, info
// grid, billing target, items table, totals row, optional notes and the
// footer caption. All rows are assumed to fit on one page.
func (r *GofpdfRenderer) RenderInvoicePDF(ctx context.Context, doc *domain.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 20, 15)
	pdf.SetAutoPageBreak(false, 15)
	pdf.AddPage()

	// Title block
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(26, 26, 26)
	pdf.CellFormat(contentWidth, 12, doc.Title, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(107, 114, 128)
	pdf.CellFormat(contentWidth, 7, "#"+doc.InvoiceNumber, "", 1, "C", false, 0, "")
	pdf.Ln(10)

	// Two-column info grid: issuer on the left, dates on the right.
	top := pdf.GetY()
	r.label(pdf, "From")
	r.value(pdf, doc.CompanyName)
	r.value(pdf, doc.CompanyEmail)
	left := pdf.GetY()

	pdf.SetY(top)
	pdf.SetX(110)
	r.labelAt(pdf, 110, "Date Issued")
	r.valueAt(pdf, 110, doc.DateIssued)
	r.labelAt(pdf, 110, "Due Date")
	r.valueAt(pdf, 110, doc.DueDate)
	if y := pdf.GetY(); y > left {
		left = y
	}
	pdf.SetY(left + 8)

	// Billing target block
	r.label(pdf, "Bill To")
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(17, 24, 39)
	pdf.MultiCell(contentWidth, 5.5, doc.BillTo, "", "L", false)
	pdf.Ln(8)

	// Items table
	pdf.SetDrawColor(229, 231, 235)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(107, 114, 128)
	pdf.CellFormat(colDescription, 7, "Description", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colQuantity, 7, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(colRate, 7, "Rate", "B", 0, "R", false, 0, "")
	pdf.CellFormat(colAmount, 7, "Amount", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(17, 24, 39)
	pdf.SetDrawColor(243, 244, 246)
	for _, row := range doc.Rows {
		pdf.CellFormat(colDescription, 7, row.Description, "B", 0, "L", false, 0, "")
		pdf.CellFormat(colQuantity, 7, row.Quantity, "B", 0, "R", false, 0, "")
		pdf.CellFormat(colRate, 7, row.Rate, "B", 0, "R", false, 0, "")
		pdf.CellFormat(colAmount, 7, row.Amount, "B", 1, "R", false, 0, "")
	}

	// Totals block
	pdf.Ln(4)
	pdf.SetDrawColor(229, 231, 235)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(colDescription+colQuantity+colRate, 8, "Total", "T", 0, "R", false, 0, "")
	pdf.CellFormat(colAmount, 8, doc.Total, "T", 1, "R", false, 0, "")

	// Notes block, only when present
	if doc.Notes != "" {
		pdf.Ln(8)
		r.label(pdf, "Notes")
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(17, 24, 39)
		pdf.MultiCell(contentWidth, 5.5, doc.Notes, "", "L", false)
	}

	// Footer caption
	pdf.SetY(-25)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(156, 163, 175)
	pdf.SetDrawColor(243, 244, 246)
	pdf.CellFormat(contentWidth, 6, doc.Footer, "T", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		r.log.Errorw("failed to generate invoice pdf",
			"invoice_number", doc.InvoiceNumber,
			"error", err)
		return nil, ierr.WithError(err).
			WithHint("Error generating PDF").
			Mark(ierr.ErrSystem)
	}

	return buf.Bytes(), nil
}

func (r *GofpdfRenderer) label(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(107, 114, 128)
	pdf.CellFormat(90, 5.5, text, "", 1, "L", false, 0, "")
}

func (r *GofpdfRenderer) value(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(17, 24, 39)
	pdf.CellFormat(90, 5.5, text, "", 1, "L", false, 0, "")
}

func (r *GofpdfRenderer) labelAt(pdf *gofpdf.Fpdf, x float64, text string) {
	pdf.SetX(x)
	r.label(pdf, text)
}

func (r *GofpdfRenderer) valueAt(pdf *gofpdf.Fpdf, x float64, text string) {
	pdf.SetX(x)
	r.value(pdf, text)
}
