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
	featuredPackagesKey = "featured:packages"
	featuredCacheTTL    = 5 * time.Minute
)

// ListingCache is a read-through cache for hot public listings (Redis).
// Misses and cache errors fall back to the repository.
type ListingCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, val any, ttl time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// PackageServiceImpl implements ports.PackageService.
type PackageServiceImpl struct {
	repo   ports.PackageRepository
	slugs  *slug.Allocator
	cache  ListingCache
	logger zerolog.Logger
}

func NewPackageService(repo ports.PackageRepository, cache ListingCache, logger zerolog.Logger) *PackageServiceImpl {
	return &PackageServiceImpl{repo: repo, slugs: slug.NewAllocator(repo), cache: cache, logger: logger}
}

func (s *PackageServiceImpl) Create(ctx context.Context, p *domain.HajjUmrahPackage) (*domain.HajjUmrahPackage, error) {
	p.Description = sanitizePlain(p.Description)
	p.LongDescription = sanitizeRich(p.LongDescription)
	if p.Status == "" {
		p.Status = domain.TourActive
	}

	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	for attempt := 0; attempt < 2; attempt++ {
		sl, err := s.slugs.Allocate(ctx, p.Name)
		if err != nil {
			return nil, err
		}
		p.Slug = sl

		created, err := s.repo.Insert(ctx, p)
		if err == nil {
			s.invalidateFeatured(ctx)
			s.logger.Info().Str("package_id", created.ID).Str("slug", created.Slug).Str("type", string(created.Type)).Msg("package created")
			return created, nil
		}
		if !errors.Is(err, domain.ErrSlugConflict) {
			return nil, err
		}
		s.logger.Warn().Str("slug", sl).Msg("slug race on package create, retrying with fresh probe")
	}
	return nil, domain.ErrSlugConflict
}

func (s *PackageServiceImpl) List(ctx context.Context, filters ports.PackageFilters, opts ports.ListOptions) ([]domain.HajjUmrahPackage, ports.ListMeta, error) {
	opts = opts.Normalized("order", defaultListLimit, maxListLimit)
	items, total, err := s.repo.List(ctx, filters, opts)
	if err != nil {
		return nil, ports.ListMeta{}, err
	}
	return items, ports.NewListMeta(opts, total), nil
}

func (s *PackageServiceImpl) GetByID(ctx context.Context, id string) (*domain.HajjUmrahPackage, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PackageServiceImpl) GetBySlug(ctx context.Context, sl string) (*domain.HajjUmrahPackage, error) {
	return s.repo.FindActiveBySlug(ctx, sl)
}

func (s *PackageServiceImpl) Update(ctx context.Context, id string, p *domain.HajjUmrahPackage) (*domain.HajjUmrahPackage, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.ID = existing.ID
	p.Slug = existing.Slug
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	p.Description = sanitizePlain(p.Description)
	p.LongDescription = sanitizeRich(p.LongDescription)

	if p.Name != existing.Name {
		sl, err := s.slugs.Reallocate(ctx, id, p.Name)
		if err != nil {
			return nil, err
		}
		p.Slug = sl
	}

	updated, err := s.repo.Replace(ctx, id, p)
	if err != nil {
		return nil, err
	}
	s.invalidateFeatured(ctx)
	return updated, nil
}

func (s *PackageServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateFeatured(ctx)
	return nil
}

// Featured reads through the cache: homepage traffic dwarfs admin writes.
func (s *PackageServiceImpl) Featured(ctx context.Context) ([]domain.HajjUmrahPackage, error) {
	if s.cache != nil {
		var cached []domain.HajjUmrahPackage
		hit, err := s.cache.Get(ctx, featuredPackagesKey, &cached)
		if err != nil {
			s.logger.Warn().Err(err).Msg("featured cache read failed, falling back to store")
		} else if hit {
			return cached, nil
		}
	}

	items, err := s.repo.ListFeatured(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, featuredPackagesKey, items, featuredCacheTTL); err != nil {
			s.logger.Warn().Err(err).Msg("featured cache write failed")
		}
	}
	return items, nil
}

func (s *PackageServiceImpl) invalidateFeatured(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, featuredPackagesKey); err != nil {
		s.logger.Warn().Err(err).Msg("featured cache invalidation failed")
	}
}
