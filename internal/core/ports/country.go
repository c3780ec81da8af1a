package ports

import (
	"context"

	"github.com/visapro/visapro-api/internal/core/domain"
)

// CountryFilters narrows the country listing.
type CountryFilters struct {
	SearchTerm     string
	IsActive       *bool
	IsFeatured     *bool
	Region         string
	SubmissionType string
}

// CountryRepository is the persistence interface for countries. The slug
// probe methods satisfy slug.Index so the repository doubles as the
// allocation scope for its own collection.
type CountryRepository interface {
	Insert(ctx context.Context, c *domain.Country) (*domain.Country, error)
	FindByID(ctx context.Context, id string) (*domain.Country, error)
	// FindActiveBySlug backs the public detail page: slug match AND active.
	FindActiveBySlug(ctx context.Context, slug string) (*domain.Country, error)
	List(ctx context.Context, filters CountryFilters, opts ListOptions) ([]domain.Country, int64, error)
	// ListActive returns a slim projection of active countries for dropdowns.
	ListActive(ctx context.Context) ([]domain.Country, error)
	// ListFeatured returns active+featured countries ordered for the homepage.
	ListFeatured(ctx context.Context) ([]domain.Country, error)
	Replace(ctx context.Context, id string, c *domain.Country) (*domain.Country, error)
	Delete(ctx context.Context, id string) error

	SlugExists(ctx context.Context, slug string) (bool, error)
	SlugExistsExcluding(ctx context.Context, slug string, excludeID string) (bool, error)
}

// CountryService defines use-case operations for the country module.
type CountryService interface {
	Create(ctx context.Context, c *domain.Country) (*domain.Country, error)
	List(ctx context.Context, filters CountryFilters, opts ListOptions) ([]domain.Country, ListMeta, error)
	GetByID(ctx context.Context, id string) (*domain.Country, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Country, error)
	// Update replaces the stored document, keeping id/slug/createdAt and
	// reallocating the slug only when the name actually changed.
	Update(ctx context.Context, id string, c *domain.Country) (*domain.Country, error)
	Delete(ctx context.Context, id string) error
	Active(ctx context.Context) ([]domain.Country, error)
	Featured(ctx context.Context) ([]domain.Country, error)
}
