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

// HotelServiceImpl implements ports.HotelService.
type HotelServiceImpl struct {
	repo   ports.HotelRepository
	slugs  *slug.Allocator
	logger zerolog.Logger
}

func NewHotelService(repo ports.HotelRepository, logger zerolog.Logger) *HotelServiceImpl {
	return &HotelServiceImpl{repo: repo, slugs: slug.NewAllocator(repo), logger: logger}
}

func (s *HotelServiceImpl) Create(ctx context.Context, h *domain.Hotel) (*domain.Hotel, error) {
	h.Description = sanitizePlain(h.Description)
	h.LongDescription = sanitizeRich(h.LongDescription)
	if h.Status == "" {
		h.Status = domain.HotelActive
	}

	now := time.Now().UTC()
	h.CreatedAt = now
	h.UpdatedAt = now

	for attempt := 0; attempt < 2; attempt++ {
		sl, err := s.slugs.Allocate(ctx, h.Name)
		if err != nil {
			return nil, err
		}
		h.Slug = sl

		created, err := s.repo.Insert(ctx, h)
		if err == nil {
			s.logger.Info().Str("hotel_id", created.ID).Str("slug", created.Slug).Msg("hotel created")
			return created, nil
		}
		if !errors.Is(err, domain.ErrSlugConflict) {
			return nil, err
		}
		s.logger.Warn().Str("slug", sl).Msg("slug race on hotel create, retrying with fresh probe")
	}
	return nil, domain.ErrSlugConflict
}

func (s *HotelServiceImpl) List(ctx context.Context, filters ports.HotelFilters, opts ports.ListOptions) ([]domain.Hotel, ports.ListMeta, error) {
	opts = opts.Normalized("order", defaultListLimit, maxListLimit)
	items, total, err := s.repo.List(ctx, filters, opts)
	if err != nil {
		return nil, ports.ListMeta{}, err
	}
	return items, ports.NewListMeta(opts, total), nil
}

func (s *HotelServiceImpl) GetByID(ctx context.Context, id string) (*domain.Hotel, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *HotelServiceImpl) GetBySlug(ctx context.Context, sl string) (*domain.Hotel, error) {
	return s.repo.FindActiveBySlug(ctx, sl)
}

func (s *HotelServiceImpl) Update(ctx context.Context, id string, h *domain.Hotel) (*domain.Hotel, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	h.ID = existing.ID
	h.Slug = existing.Slug
	h.CreatedAt = existing.CreatedAt
	h.UpdatedAt = time.Now().UTC()
	h.Description = sanitizePlain(h.Description)
	h.LongDescription = sanitizeRich(h.LongDescription)

	if h.Name != existing.Name {
		sl, err := s.slugs.Reallocate(ctx, id, h.Name)
		if err != nil {
			return nil, err
		}
		h.Slug = sl
	}

	return s.repo.Replace(ctx, id, h)
}

func (s *HotelServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *HotelServiceImpl) Active(ctx context.Context) ([]domain.Hotel, error) {
	return s.repo.ListActive(ctx)
}

func (s *HotelServiceImpl) Featured(ctx context.Context) ([]domain.Hotel, error) {
	return s.repo.ListFeatured(ctx)
}
