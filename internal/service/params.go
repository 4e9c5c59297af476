package service

import (
	"github.com/quickinvoice/quickinvoice/internal/config"
	"github.com/quickinvoice/quickinvoice/internal/domain/export"
	"github.com/quickinvoice/quickinvoice/internal/domain/invoice"
	"github.com/quickinvoice/quickinvoice/internal/logger"
	"github.com/quickinvoice/quickinvoice/internal/pdfgen"
)

// ServiceParams bundles the dependencies shared by the service layer.
type ServiceParams struct {
	Logger     *logger.Logger
	Config     *config.Configuration
	DraftRepo  invoice.Repository
	ExportRepo export.Repository
	Renderer   pdfgen.InvoiceRenderer
}

func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	draftRepo invoice.Repository,
	exportRepo export.Repository,
	renderer pdfgen.InvoiceRenderer,
) ServiceParams {
	return ServiceParams{
		Logger:     logger,
		Config:     config,
		DraftRepo:  draftRepo,
		ExportRepo: exportRepo,
		Renderer:   renderer,
	}
}
