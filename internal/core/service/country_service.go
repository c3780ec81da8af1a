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

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// CountryServiceImpl implements ports.CountryService.
type CountryServiceImpl struct {
	repo   ports.CountryRepository
	slugs  *slug.Allocator
	logger zerolog.Logger
}

func NewCountryService(repo ports.CountryRepository, logger zerolog.Logger) *CountryServiceImpl {
	return &CountryServiceImpl{repo: repo, slugs: slug.NewAllocator(repo), logger: logger}
}

// Create allocates a unique slug and persists the country. When the unique
// index rejects the insert despite the probe (concurrent creation with the
// same name), one retry with a fresh probe is made before giving up.
func (s *CountryServiceImpl) Create(ctx context.Context, c *domain.Country) (*domain.Country, error) {
	c.Description = sanitizePlain(c.Description)
	c.DescriptionBn = sanitizePlain(c.DescriptionBn)

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
			s.logger.Info().Str("country_id", created.ID).Str("slug", created.Slug).Msg("country created")
			return created, nil
		}
		if !errors.Is(err, domain.ErrSlugConflict) {
			return nil, err
		}
		s.logger.Warn().Str("slug", sl).Msg("slug race on country create, retrying with fresh probe")
	}
	return nil, domain.ErrSlugConflict
}

func (s *CountryServiceImpl) List(ctx context.Context, filters ports.CountryFilters, opts ports.ListOptions) ([]domain.Country, ports.ListMeta, error) {
	opts = opts.Normalized("name", defaultListLimit, maxListLimit)
	items, total, err := s.repo.List(ctx, filters, opts)
	if err != nil {
		return nil, ports.ListMeta{}, err
	}
	return items, ports.NewListMeta(opts, total), nil
}

func (s *CountryServiceImpl) GetByID(ctx context.Context, id string) (*domain.Country, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CountryServiceImpl) GetBySlug(ctx context.Context, sl string) (*domain.Country, error) {
	return s.repo.FindActiveBySlug(ctx, sl)
}

// Update replaces the stored document. The slug is recomputed only when the
// name actually changed; an unchanged name never moves an assigned slug.
func (s *CountryServiceImpl) Update(ctx context.Context, id string, c *domain.Country) (*domain.Country, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.ID = existing.ID
	c.Slug = existing.Slug
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now().UTC()
	c.Description = sanitizePlain(c.Description)
	c.DescriptionBn = sanitizePlain(c.DescriptionBn)

	if c.Name != existing.Name {
		sl, err := s.slugs.Reallocate(ctx, id, c.Name)
		if err != nil {
			return nil, err
		}
		c.Slug = sl
	}

	return s.repo.Replace(ctx, id, c)
}

func (s *CountryServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *CountryServiceImpl) Active(ctx context.Context) ([]domain.Country, error) {
	return s.repo.ListActive(ctx)
}

func (s *CountryServiceImpl) Featured(ctx context.Context) ([]domain.Country, error) {
	return s.repo.ListFeatured(ctx)
}
