package service

import (
	"context"
	"time"

	"github.com/quickinvoice/quickinvoice/internal/api/dto"
	"github.com/quickinvoice/quickinvoice/internal/domain/export"
	"github.com/quickinvoice/quickinvoice/internal/domain/invoice"
	pdfdomain "github.com/quickinvoice/quickinvoice/internal/domain/pdfgen"
	ierr "github.com/quickinvoice/quickinvoice/internal/errors"
	"github.com/quickinvoice/quickinvoice/internal/logger"
	"github.com/quickinvoice/quickinvoice/internal/pdfgen"
	"github.com/quickinvoice/quickinvoice/internal/types"
)

const exportFailureReason = "Error generating PDF"

// ExportService turns draft snapshots into downloadable PDF artifacts.
// StartExport captures the snapshot at call time and generates in the
// background, so the form stays editable while an export is in flight and
// later edits never leak into it. Each trigger is an independent export;
// there is no cancellation and failed exports are re-triggered manually.
type ExportService interface {
	StartExport(ctx context.Context, draftID string) (*dto.ExportResponse, error)
	GetExport(ctx context.Context, id string) (*dto.ExportResponse, error)
	DownloadExport(ctx context.Context, id string) (*export.Export, error)
}

type exportService struct {
	logger     *logger.Logger
	draftRepo  invoice.Repository
	exportRepo export.Repository
	renderer   pdfgen.InvoiceRenderer
}

func NewExportService(params ServiceParams) ExportService {
	return &exportService{
		logger:     params.Logger,
		draftRepo:  params.DraftRepo,
		exportRepo: params.ExportRepo,
		renderer:   params.Renderer,
	}
}

func (s *exportService) StartExport(ctx context.Context, draftID string) (*dto.ExportResponse, error) {
	// The repository hands out a copy, so this is the captured snapshot.
	draft, err := s.draftRepo.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	exp := export.NewExport(draft.ID, export.FileName(draft.InvoiceNumber, now), now)
	if err := s.exportRepo.Create(ctx, exp); err != nil {
		return nil, err
	}

	doc := pdfgen.BuildDocument(draft)
	go s.generate(exp.ID, doc)

	s.logger.Infow("started export",
		"export_id", exp.ID,
		"draft_id", draft.ID,
		"file_name", exp.FileName)
	return dto.NewExportResponse(exp), nil
}

func (s *exportService) GetExport(ctx context.Context, id string) (*dto.ExportResponse, error) {
	exp, err := s.exportRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewExportResponse(exp), nil
}

func (s *exportService) DownloadExport(ctx context.Context, id string) (*export.Export, error) {
	exp, err := s.exportRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	switch exp.Status {
	case types.ExportStatusReady:
		return exp, nil
	case types.ExportStatusInProgress:
		return nil, ierr.WithError(export.ErrExportNotReady).
			WithHint("Export is still being prepared").
			Mark(ierr.ErrInvalidOperation)
	default:
		return nil, ierr.WithError(export.ErrExportNotReady).
			WithHint(exportFailureReason).
			Mark(ierr.ErrInvalidOperation)
	}
}

// generate runs in the background. The request context is gone by the time it
// executes, so it operates on a fresh one.
func (s *exportService) generate(exportID string, doc *pdfdomain.Document) {
	ctx := context.Background()

	data, renderErr := s.renderer.RenderInvoicePDF(ctx, doc)

	exp, err := s.exportRepo.Get(ctx, exportID)
	if err != nil {
		s.logger.Errorw("export record disappeared during generation",
			"export_id", exportID,
			"error", err)
		return
	}

	now := time.Now().UTC()
	if renderErr != nil {
		s.logger.Errorw("failed to generate export",
			"export_id", exportID,
			"error", renderErr)
		exp.MarkFailed(exportFailureReason, now)
	} else {
		exp.MarkReady(data, now)
	}

	if err := s.exportRepo.Update(ctx, exp); err != nil {
		s.logger.Errorw("failed to update export",
			"export_id", exportID,
			"error", err)
	}
}
