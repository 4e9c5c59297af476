package service

import (
	"context"
	"time"

	"github.com/quickinvoice/quickinvoice/internal/api/dto"
	"github.com/quickinvoice/quickinvoice/internal/domain/invoice"
	"github.com/quickinvoice/quickinvoice/internal/logger"
	"github.com/quickinvoice/quickinvoice/internal/pdfgen"
)

// DraftService owns the editable invoice state. Every edit goes through the
// draft reducer, producing a new snapshot that replaces the stored one; the
// preview and the export path both read whatever snapshot is current.
type DraftService interface {
	CreateDraft(ctx context.Context) (*dto.DraftResponse, error)
	GetDraft(ctx context.Context, id string) (*dto.DraftResponse, error)
	UpdateHeaderField(ctx context.Context, id string, req dto.UpdateHeaderFieldRequest) (*dto.DraftResponse, error)
	UpdateItemField(ctx context.Context, id string, index int, req dto.UpdateItemFieldRequest) (*dto.DraftResponse, error)
	AddItem(ctx context.Context, id string) (*dto.DraftResponse, error)
	GetPreview(ctx context.Context, id string) (*dto.PreviewResponse, error)
}

type draftService struct {
	logger    *logger.Logger
	draftRepo invoice.Repository
}

func NewDraftService(params ServiceParams) DraftService {
	return &draftService{
		logger:    params.Logger,
		draftRepo: params.DraftRepo,
	}
}

func (s *draftService) CreateDraft(ctx context.Context) (*dto.DraftResponse, error) {
	draft := invoice.NewDraft(time.Now().UTC())
	if err := s.draftRepo.Create(ctx, draft); err != nil {
		s.logger.Errorw("failed to create draft", "error", err)
		return nil, err
	}

	s.logger.Infow("created draft",
		"draft_id", draft.ID,
		"invoice_number", draft.InvoiceNumber)
	return dto.NewDraftResponse(draft), nil
}

func (s *draftService) GetDraft(ctx context.Context, id string) (*dto.DraftResponse, error) {
	draft, err := s.draftRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewDraftResponse(draft), nil
}

func (s *draftService) UpdateHeaderField(ctx context.Context, id string, req dto.UpdateHeaderFieldRequest) (*dto.DraftResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.apply(ctx, id, invoice.SetHeaderField{Field: req.Field, Value: req.Value})
}

func (s *draftService) UpdateItemField(ctx context.Context, id string, index int, req dto.UpdateItemFieldRequest) (*dto.DraftResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.apply(ctx, id, invoice.SetItemField{Index: index, Field: req.Field, Raw: req.Value})
}

func (s *draftService) AddItem(ctx context.Context, id string) (*dto.DraftResponse, error) {
	return s.apply(ctx, id, invoice.AppendItem{})
}

func (s *draftService) GetPreview(ctx context.Context, id string) (*dto.PreviewResponse, error) {
	draft, err := s.draftRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.PreviewResponse{Document: pdfgen.BuildDocument(draft)}, nil
}

// apply runs one edit through the reducer and stores the resulting snapshot.
func (s *draftService) apply(ctx context.Context, id string, op invoice.Operation) (*dto.DraftResponse, error) {
	draft, err := s.draftRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := draft.Apply(op)
	if err != nil {
		return nil, err
	}

	if err := s.draftRepo.Update(ctx, next); err != nil {
		s.logger.Errorw("failed to update draft",
			"draft_id", id,
			"error", err)
		return nil, err
	}

	return dto.NewDraftResponse(next), nil
}
