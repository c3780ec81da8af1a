package ports

import (
	"context"

	"github.com/visapro/visapro-api/internal/core/domain"
)

// PackageFilters narrows the Hajj/Umrah package listing.
type PackageFilters struct {
	SearchTerm string
	Type       string
	Status     string
	IsActive   *bool
	IsFeatured *bool
	IsPopular  *bool
}

// PackageRepository is the persistence interface for Hajj/Umrah packages.
type PackageRepository interface {
	Insert(ctx context.Context, p *domain.HajjUmrahPackage) (*domain.HajjUmrahPackage, error)
	FindByID(ctx context.Context, id string) (*domain.HajjUmrahPackage, error)
	FindActiveBySlug(ctx context.Context, slug string) (*domain.HajjUmrahPackage, error)
	List(ctx context.Context, filters PackageFilters, opts ListOptions) ([]domain.HajjUmrahPackage, int64, error)
	ListFeatured(ctx context.Context) ([]domain.HajjUmrahPackage, error)
	Replace(ctx context.Context, id string, p *domain.HajjUmrahPackage) (*domain.HajjUmrahPackage, error)
	Delete(ctx context.Context, id string) error

	SlugExists(ctx context.Context, slug string) (bool, error)
	SlugExistsExcluding(ctx context.Context, slug string, excludeID string) (bool, error)
}

// PackageService defines use-case operations for the Hajj/Umrah module.
type PackageService interface {
	Create(ctx context.Context, p *domain.HajjUmrahPackage) (*domain.HajjUmrahPackage, error)
	List(ctx context.Context, filters PackageFilters, opts ListOptions) ([]domain.HajjUmrahPackage, ListMeta, error)
	GetByID(ctx context.Context, id string) (*domain.HajjUmrahPackage, error)
	GetBySlug(ctx context.Context, slug string) (*domain.HajjUmrahPackage, error)
	Update(ctx context.Context, id string, p *domain.HajjUmrahPackage) (*domain.HajjUmrahPackage, error)
	Delete(ctx context.Context, id string) error
	// Featured serves the homepage and is cached with a short TTL.
	Featured(ctx context.Context) ([]domain.HajjUmrahPackage, error)
}
