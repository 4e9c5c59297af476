package pdfgen

import "github.com/shopspring/decimal"

// Document is the laid-out, single-page description of an invoice. It is the
// one representation consumed by both the on-screen preview and the PDF
// compiler, so the two can never disagree on totals or formatting.
type Document struct {
	Title         string `json:"title"`
	InvoiceNumber string `json:"invoice_number"`
	CompanyName   string `json:"company_name"`
	CompanyEmail  string `json:"company_email"`
	DateIssued    string `json:"date_issued"`
	DueDate       string `json:"due_date"`
	BillTo        string `json:"bill_to"`
	Rows          []Row  `json:"rows"`
	// Total is the formatted grand total; TotalAmount carries the exact value
	// the formatting was derived from.
	Total       string          `json:"total"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	// Notes is empty when the notes block is absent.
	Notes  string `json:"notes,omitempty"`
	Footer string `json:"footer"`
}

// Row is one items-table row with presentation-ready values. Rate and Amount
// are formatted currency strings; Quantity is the plain number.
type Row struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	Rate        string `json:"rate"`
	Amount      string `json:"amount"`
}
