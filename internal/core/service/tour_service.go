package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/visapro/visapro-api/internal/core/domain"
	"github.com/visapro/visapro-api/internal/core/ports"
	"github.com/visapro/visapro-api/internal/core/slug"
)

// TourServiceImpl implements ports.TourService. Tours slug off their title
// rather than a name field; the allocation policy is otherwise identical.
type TourServiceImpl struct {
	repo   ports.TourRepository
	slugs  *slug.Allocator
	logger zerolog.Logger
}

func NewTourService(repo ports.TourRepository, logger zerolog.Logger) *TourServiceImpl {
	return &TourServiceImpl{repo: repo, slugs: slug.NewAllocator(repo), logger: logger}
}

func (s *TourServiceImpl) Create(ctx context.Context, t *domain.Tour) (*domain.Tour, error) {
	t.Description = sanitizePlain(t.Description)
	t.LongDescription = sanitizeRich(t.LongDescription)
	if t.Status == "" {
		t.Status = domain.TourActive
	}

	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	for attempt := 0; attempt < 2; attempt++ {
		sl, err := s.slugs.Allocate(ctx, t.Title)
		if err != nil {
			return nil, err
		}
		t.Slug = sl

		created, err := s.repo.Insert(ctx, t)
		if err == nil {
			s.logger.Info().Str("tour_id", created.ID).Str("slug", created.Slug).Msg("tour created")
			return created, nil
		}
		if !errors.Is(err, domain.ErrSlugConflict) {
			return nil, err
		}
		s.logger.Warn().Str("slug", sl).Msg("slug race on tour create, retrying with fresh probe")
	}
	return nil, domain.ErrSlugConflict
}

func (s *TourServiceImpl) List(ctx context.Context, filters ports.TourFilters, opts ports.ListOptions) ([]domain.Tour, ports.ListMeta, error) {
	opts = opts.Normalized("order", defaultListLimit, maxListLimit)
	items, total, err := s.repo.List(ctx, filters, opts)
	if err != nil {
		return nil, ports.ListMeta{}, err
	}
	return items, ports.NewListMeta(opts, total), nil
}

func (s *TourServiceImpl) GetByID(ctx context.Context, id string) (*domain.Tour, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TourServiceImpl) GetBySlug(ctx context.Context, sl string) (*domain.Tour, error) {
	return s.repo.FindActiveBySlug(ctx, sl)
}

func (s *TourServiceImpl) Update(ctx context.Context, id string, t *domain.Tour) (*domain.Tour, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	t.ID = existing.ID
	t.Slug = existing.Slug
	t.CreatedAt = existing.CreatedAt
	t.UpdatedAt = time.Now().UTC()
	t.Description = sanitizePlain(t.Description)
	t.LongDescription = sanitizeRich(t.LongDescription)

	if t.Title != existing.Title {
		sl, err := s.slugs.Reallocate(ctx, id, t.Title)
		if err != nil {
			return nil, err
		}
		t.Slug = sl
	}

	return s.repo.Replace(ctx, id, t)
}

func (s *TourServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *TourServiceImpl) Active(ctx context.Context) ([]domain.Tour, error) {
	return s.repo.ListActive(ctx)
}

func (s *TourServiceImpl) Featured(ctx context.Context) ([]domain.Tour, error) {
	return s.repo.ListFeatured(ctx)
}
