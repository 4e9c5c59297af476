package memory

import (
	"context"
	"testing"
	"time"

	"github.com/quickinvoice/quickinvoice/internal/config"
	"github.com/quickinvoice/quickinvoice/internal/domain/export"
	"github.com/quickinvoice/quickinvoice/internal/domain/invoice"
	ierr "github.com/quickinvoice/quickinvoice/internal/errors"
	"github.com/quickinvoice/quickinvoice/internal/logger"
	"github.com/quickinvoice/quickinvoice/internal/types"
	"github.com/stretchr/testify/require"
)

func newTestRepos(t *testing.T) (invoice.Repository, export.Repository) {
	t.Helper()
	cfg := config.GetDefaultConfig()
	log, err := logger.NewLogger(cfg)
	require.NoError(t, err)
	return NewDraftRepository(cfg, log), NewExportRepository(cfg, log)
}

func TestDraftRepositoryCRUD(t *testing.T) {
	repo, _ := newTestRepos(t)
	ctx := context.Background()

	draft := invoice.NewDraft(time.Now().UTC())
	require.NoError(t, repo.Create(ctx, draft))

	// duplicate IDs are rejected
	err := repo.Create(ctx, draft)
	require.Error(t, err)
	require.True(t, ierr.IsAlreadyExists(err))

	got, err := repo.Get(ctx, draft.ID)
	require.NoError(t, err)
	require.Equal(t, draft.ID, got.ID)
	require.Equal(t, draft.InvoiceNumber, got.InvoiceNumber)

	got.CompanyName = "Acme Inc"
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.Get(ctx, draft.ID)
	require.NoError(t, err)
	require.Equal(t, "Acme Inc", updated.CompanyName)
}

func TestDraftRepositoryNotFound(t *testing.T) {
	repo, _ := newTestRepos(t)
	ctx := context.Background()

	_, err := repo.Get(ctx, "draft_missing")
	require.Error(t, err)
	require.True(t, ierr.IsNotFound(err))

	err = repo.Update(ctx, invoice.NewDraft(time.Now().UTC()))
	require.Error(t, err)
	require.True(t, ierr.IsNotFound(err))
}

func TestDraftRepositoryHandsOutCopies(t *testing.T) {
	repo, _ := newTestRepos(t)
	ctx := context.Background()

	draft := invoice.NewDraft(time.Now().UTC())
	require.NoError(t, repo.Create(ctx, draft))

	// mutating the original after Create must not affect the stored snapshot
	draft.CompanyName = "mutated"
	draft.Items[0].Description = "mutated"

	got, err := repo.Get(ctx, draft.ID)
	require.NoError(t, err)
	require.Empty(t, got.CompanyName)
	require.Empty(t, got.Items[0].Description)

	// mutating a fetched copy must not affect later reads
	got.BillTo = "mutated"
	again, err := repo.Get(ctx, draft.ID)
	require.NoError(t, err)
	require.Empty(t, again.BillTo)
}

func TestExportRepositoryCRUD(t *testing.T) {
	_, repo := newTestRepos(t)
	ctx := context.Background()
	now := time.Now().UTC()

	exp := export.NewExport("draft_1", "invoice-INV-1.pdf", now)
	require.NoError(t, repo.Create(ctx, exp))

	got, err := repo.Get(ctx, exp.ID)
	require.NoError(t, err)
	require.Equal(t, types.ExportStatusInProgress, got.Status)

	got.MarkReady([]byte("%PDF"), now)
	require.NoError(t, repo.Update(ctx, got))

	ready, err := repo.Get(ctx, exp.ID)
	require.NoError(t, err)
	require.Equal(t, types.ExportStatusReady, ready.Status)
	require.Equal(t, []byte("%PDF"), ready.Data)
	require.NotNil(t, ready.CompletedAt)

	_, err = repo.Get(ctx, "export_missing")
	require.Error(t, err)
	require.True(t, ierr.IsNotFound(err))
}
