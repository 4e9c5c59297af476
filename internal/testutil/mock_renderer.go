package testutil

import (
	"context"

	domain "github.com/quickinvoice/quickinvoice/internal/domain/pdfgen"
	"github.com/quickinvoice/quickinvoice/internal/pdfgen"
	"github.com/stretchr/testify/mock"
)

var _ pdfgen.InvoiceRenderer = (*MockRenderer)(nil)

// MockRenderer stands in for the PDF renderer in service tests.
type MockRenderer struct {
	mock.Mock
}

func NewMockRenderer() *MockRenderer {
	return &MockRenderer{}
}

// RenderInvoicePDF implements pdfgen.InvoiceRenderer.
func (m *MockRenderer) RenderInvoicePDF(ctx context.Context, doc *domain.Document) ([]byte, error) {
	args := m.Called(ctx, doc)
	if data, ok := args.Get(0).([]byte); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}
