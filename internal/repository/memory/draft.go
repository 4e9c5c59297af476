package memory

import (
	"context"

	gocache "github.com/patrickmn/go-cache"
	"github.com/quickinvoice/quickinvoice/internal/config"
	"github.com/quickinvoice/quickinvoice/internal/domain/invoice"
	ierr "github.com/quickinvoice/quickinvoice/internal/errors"
	"github.com/quickinvoice/quickinvoice/internal/logger"
)

// draftRepository keeps drafts in an expiring in-memory cache. There is no
// persistence: a draft lives for the editing session and is discarded when
// its TTL elapses.
type draftRepository struct {
	cache *gocache.Cache
	log   *logger.Logger
}

func NewDraftRepository(cfg *config.Configuration, log *logger.Logger) invoice.Repository {
	return &draftRepository{
		cache: gocache.New(cfg.Drafts.SessionTTL, cfg.Drafts.CleanupInterval),
		log:   log,
	}
}

func (r *draftRepository) Create(ctx context.Context, draft *invoice.Draft) error {
	if err := r.cache.Add(draft.ID, draft.Copy(), gocache.DefaultExpiration); err != nil {
		return ierr.WithError(invoice.ErrDraftAlreadyExists).
			WithHintf("Draft %s already exists", draft.ID).
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (r *draftRepository) Get(ctx context.Context, id string) (*invoice.Draft, error) {
	item, found := r.cache.Get(id)
	if !found {
		return nil, ierr.WithError(invoice.ErrDraftNotFound).
			WithHintf("Draft %s was not found or has expired", id).
			Mark(ierr.ErrNotFound)
	}
	// Hand out a copy so callers can never mutate the stored snapshot.
	return item.(*invoice.Draft).Copy(), nil
}

func (r *draftRepository) Update(ctx context.Context, draft *invoice.Draft) error {
	if _, found := r.cache.Get(draft.ID); !found {
		return ierr.WithError(invoice.ErrDraftNotFound).
			WithHintf("Draft %s was not found or has expired", draft.ID).
			Mark(ierr.ErrNotFound)
	}
	// Updating refreshes the session TTL.
	r.cache.Set(draft.ID, draft.Copy(), gocache.DefaultExpiration)
	return nil
}
