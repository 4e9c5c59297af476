package service

import (
	"testing"

	"github.com/quickinvoice/quickinvoice/internal/api/dto"
	ierr "github.com/quickinvoice/quickinvoice/internal/errors"
	"github.com/quickinvoice/quickinvoice/internal/testutil"
	"github.com/quickinvoice/quickinvoice/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DraftServiceSuite struct {
	testutil.BaseServiceTestSuite
	service DraftService
}

func TestDraftService(t *testing.T) {
	suite.Run(t, new(DraftServiceSuite))
}

func (s *DraftServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	stores := s.GetStores()
	s.service = NewDraftService(ServiceParams{
		Logger:     s.GetLogger(),
		Config:     s.GetConfig(),
		DraftRepo:  stores.DraftRepo,
		ExportRepo: stores.ExportRepo,
		Renderer:   testutil.NewMockRenderer(),
	})
}

func (s *DraftServiceSuite) TestCreateDraft() {
	resp, err := s.service.CreateDraft(s.GetContext())
	s.NoError(err)
	s.NotEmpty(resp.ID)
	s.Regexp(`^INV-\d{8}-\d{4}$`, resp.InvoiceNumber)
	s.Len(resp.Items, 1)
	s.True(resp.Items[0].Quantity.Equal(decimal.NewFromInt(1)))
	s.True(resp.Items[0].Rate.IsZero())
	s.True(resp.Total.IsZero())
	s.Equal(1, resp.Version)

	// the draft is retrievable afterwards
	got, err := s.service.GetDraft(s.GetContext(), resp.ID)
	s.NoError(err)
	s.Equal(resp.ID, got.ID)
}

func (s *DraftServiceSuite) TestGetDraftNotFound() {
	_, err := s.service.GetDraft(s.GetContext(), "draft_missing")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *DraftServiceSuite) TestUpdateHeaderField() {
	draft, err := s.service.CreateDraft(s.GetContext())
	s.NoError(err)

	resp, err := s.service.UpdateHeaderField(s.GetContext(), draft.ID, dto.UpdateHeaderFieldRequest{
		Field: types.HeaderFieldCompanyName,
		Value: "Acme Inc",
	})
	s.NoError(err)
	s.Equal("Acme Inc", resp.CompanyName)
	s.Equal(draft.Version+1, resp.Version)

	// clearing a field back to blank is a normal edit
	resp, err = s.service.UpdateHeaderField(s.GetContext(), draft.ID, dto.UpdateHeaderFieldRequest{
		Field: types.HeaderFieldCompanyName,
		Value: "",
	})
	s.NoError(err)
	s.Empty(resp.CompanyName)
}

func (s *DraftServiceSuite) TestUpdateHeaderFieldUnknown() {
	draft, err := s.service.CreateDraft(s.GetContext())
	s.NoError(err)

	_, err = s.service.UpdateHeaderField(s.GetContext(), draft.ID, dto.UpdateHeaderFieldRequest{
		Field: types.HeaderField("favorite_color"),
		Value: "blue",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *DraftServiceSuite) TestUpdateItemField() {
	draft, err := s.service.CreateDraft(s.GetContext())
	s.NoError(err)

	_, err = s.service.UpdateItemField(s.GetContext(), draft.ID, 0, dto.UpdateItemFieldRequest{
		Field: types.ItemFieldDescription,
		Value: "Design work",
	})
	s.NoError(err)
	_, err = s.service.UpdateItemField(s.GetContext(), draft.ID, 0, dto.UpdateItemFieldRequest{
		Field: types.ItemFieldQuantity,
		Value: "3",
	})
	s.NoError(err)
	resp, err := s.service.UpdateItemField(s.GetContext(), draft.ID, 0, dto.UpdateItemFieldRequest{
		Field: types.ItemFieldRate,
		Value: "150.5",
	})
	s.NoError(err)

	s.Equal("Design work", resp.Items[0].Description)
	s.True(resp.Items[0].Amount.Equal(decimal.RequireFromString("451.5")))
	s.True(resp.Total.Equal(decimal.RequireFromString("451.5")))
}

func (s *DraftServiceSuite) TestUpdateItemFieldCoercion() {
	draft, err := s.service.CreateDraft(s.GetContext())
	s.NoError(err)

	// unparseable and negative input coerce to zero
	for _, raw := range []string{"abc", "", "-5"} {
		resp, err := s.service.UpdateItemField(s.GetContext(), draft.ID, 0, dto.UpdateItemFieldRequest{
			Field: types.ItemFieldRate,
			Value: raw,
		})
		s.NoError(err, "raw %q", raw)
		s.True(resp.Items[0].Rate.IsZero(), "raw %q", raw)
	}
}

func (s *DraftServiceSuite) TestUpdateItemFieldIndexOutOfRange() {
	draft, err := s.service.CreateDraft(s.GetContext())
	s.NoError(err)

	_, err = s.service.UpdateItemField(s.GetContext(), draft.ID, 5, dto.UpdateItemFieldRequest{
		Field: types.ItemFieldRate,
		Value: "1",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	// the failed edit leaves the draft untouched
	got, err := s.service.GetDraft(s.GetContext(), draft.ID)
	s.NoError(err)
	s.Equal(draft.Version, got.Version)
}

func (s *DraftServiceSuite) TestAddItem() {
	draft, err := s.service.CreateDraft(s.GetContext())
	s.NoError(err)

	resp, err := s.service.AddItem(s.GetContext(), draft.ID)
	s.NoError(err)
	resp, err = s.service.AddItem(s.GetContext(), resp.ID)
	s.NoError(err)

	s.Len(resp.Items, 3)
	for _, item := range resp.Items {
		s.Empty(item.Description)
		s.True(item.Quantity.Equal(decimal.NewFromInt(1)))
		s.True(item.Rate.IsZero())
	}
	s.True(resp.Total.IsZero())
}

func (s *DraftServiceSuite) TestGetPreview() {
	draft, err := s.service.CreateDraft(s.GetContext())
	s.NoError(err)

	resp, err := s.service.GetPreview(s.GetContext(), draft.ID)
	s.NoError(err)

	doc := resp.Document
	s.Equal("INVOICE", doc.Title)
	s.Equal(draft.InvoiceNumber, doc.InvoiceNumber)
	s.Equal("Company Name", doc.CompanyName)
	s.Equal("$0.00", doc.Total)
	s.Empty(doc.Notes)
	s.Equal("Thank you for your business!", doc.Footer)

	// the preview tracks edits immediately
	_, err = s.service.UpdateItemField(s.GetContext(), draft.ID, 0, dto.UpdateItemFieldRequest{
		Field: types.ItemFieldRate,
		Value: "1234.56",
	})
	s.NoError(err)

	resp, err = s.service.GetPreview(s.GetContext(), draft.ID)
	s.NoError(err)
	s.Equal("$1,234.56", resp.Document.Total)
}
