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

// VisaCategoryServiceImpl implements ports.VisaCategoryService.
type VisaCategoryServiceImpl struct {
	repo   ports.VisaCategoryRepository
	slugs  *slug.Allocator
	logger zerolog.Logger
}

func NewVisaCategoryService(repo ports.VisaCategoryRepository, logger zerolog.Logger) *VisaCategoryServiceImpl {
	return &VisaCategoryServiceImpl{repo: repo, slugs: slug.NewAllocator(repo), logger: logger}
}

func (s *VisaCategoryServiceImpl) Create(ctx context.Context, c *domain.VisaCategory) (*domain.VisaCategory, error) {
	c.Description = sanitizePlain(c.Description)

	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	for attempt := 0; attempt < 2; attempt++ {
		sl, err := s.slugs.Allocate(ctx, c.Name)
		if err != nil {
			return nil, err
		}
		c.Slug = sl

		created, err := s.repo.Insert(ctx, c)
		if err == nil {
			s.logger.Info().Str("category_id", created.ID).Str("slug", created.Slug).Msg("visa category created")
			return created, nil
		}
		if !errors.Is(err, domain.ErrSlugConflict) {
			return nil, err
		}
		s.logger.Warn().Str("slug", sl).Msg("slug race on category create, retrying with fresh probe")
	}
	return nil, domain.ErrSlugConflict
}

func (s *VisaCategoryServiceImpl) List(ctx context.Context, filters ports.VisaCategoryFilters, opts ports.ListOptions) ([]domain.VisaCategory, ports.ListMeta, error) {
	opts = opts.Normalized("order", defaultListLimit, maxListLimit)
	items, total, err := s.repo.List(ctx, filters, opts)
	if err != nil {
		return nil, ports.ListMeta{}, err
	}
	return items, ports.NewListMeta(opts, total), nil
}

func (s *VisaCategoryServiceImpl) GetByID(ctx context.Context, id string) (*domain.VisaCategory, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *VisaCategoryServiceImpl) GetBySlug(ctx context.Context, sl string) (*domain.VisaCategory, error) {
	return s.repo.FindActiveBySlug(ctx, sl)
}

func (s *VisaCategoryServiceImpl) Update(ctx context.Context, id string, c *domain.VisaCategory) (*domain.VisaCategory, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.ID = existing.ID
	c.Slug = existing.Slug
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now().UTC()
	c.Description = sanitizePlain(c.Description)

	if c.Name != existing.Name {
		sl, err := s.slugs.Reallocate(ctx, id, c.Name)
		if err != nil {
			return nil, err
		}
		c.Slug = sl
	}

	return s.repo.Replace(ctx, id, c)
}

func (s *VisaCategoryServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *VisaCategoryServiceImpl) Active(ctx context.Context) ([]domain.VisaCategory, error) {
	return s.repo.ListActive(ctx)
}
