package memory

import (
	"context"

	gocache "github.com/patrickmn/go-cache"
	"github.com/quickinvoice/quickinvoice/internal/config"
	"github.com/quickinvoice/quickinvoice/internal/domain/export"
	ierr "github.com/quickinvoice/quickinvoice/internal/errors"
	"github.com/quickinvoice/quickinvoice/internal/logger"
)

// exportRepository keeps export records, including ready artifacts, in an
// expiring in-memory cache scoped to the session like the drafts themselves.
type exportRepository struct {
	cache *gocache.Cache
	log   *logger.Logger
}

func NewExportRepository(cfg *config.Configuration, log *logger.Logger) export.Repository {
	return &exportRepository{
		cache: gocache.New(cfg.Drafts.SessionTTL, cfg.Drafts.CleanupInterval),
		log:   log,
	}
}

func (r *exportRepository) Create(ctx context.Context, e *export.Export) error {
	if err := r.cache.Add(e.ID, e.Copy(), gocache.DefaultExpiration); err != nil {
		return ierr.NewError("export already exists").
			WithHintf("Export %s already exists", e.ID).
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (r *exportRepository) Get(ctx context.Context, id string) (*export.Export, error) {
	item, found := r.cache.Get(id)
	if !found {
		return nil, ierr.WithError(export.ErrExportNotFound).
			WithHintf("Export %s was not found or has expired", id).
			Mark(ierr.ErrNotFound)
	}
	return item.(*export.Export).Copy(), nil
}

func (r *exportRepository) Update(ctx context.Context, e *export.Export) error {
	if _, found := r.cache.Get(e.ID); !found {
		return ierr.WithError(export.ErrExportNotFound).
			WithHintf("Export %s was not found or has expired", e.ID).
			Mark(ierr.ErrNotFound)
	}
	r.cache.Set(e.ID, e.Copy(), gocache.DefaultExpiration)
	return nil
}
