package ports

import (
	"context"

	"github.com/visapro/visapro-api/internal/core/domain"
)

// VisaCategoryFilters narrows the visa category listing.
type VisaCategoryFilters struct {
	SearchTerm string
	IsActive   *bool
}

// VisaCategoryRepository is the persistence interface for visa categories.
type VisaCategoryRepository interface {
	Insert(ctx context.Context, c *domain.VisaCategory) (*domain.VisaCategory, error)
	FindByID(ctx context.Context, id string) (*domain.VisaCategory, error)
	FindActiveBySlug(ctx context.Context, slug string) (*domain.VisaCategory, error)
	List(ctx context.Context, filters VisaCategoryFilters, opts ListOptions) ([]domain.VisaCategory, int64, error)
	ListActive(ctx context.Context) ([]domain.VisaCategory, error)
	Replace(ctx context.Context, id string, c *domain.VisaCategory) (*domain.VisaCategory, error)
	Delete(ctx context.Context, id string) error

	SlugExists(ctx context.Context, slug string) (bool, error)
	SlugExistsExcluding(ctx context.Context, slug string, excludeID string) (bool, error)
}

// VisaCategoryService defines use-case operations for visa categories.
type VisaCategoryService interface {
	Create(ctx context.Context, c *domain.VisaCategory) (*domain.VisaCategory, error)
	List(ctx context.Context, filters VisaCategoryFilters, opts ListOptions) ([]domain.VisaCategory, ListMeta, error)
	GetByID(ctx context.Context, id string) (*domain.VisaCategory, error)
	GetBySlug(ctx context.Context, slug string) (*domain.VisaCategory, error)
	Update(ctx context.Context, id string, c *domain.VisaCategory) (*domain.VisaCategory, error)
	Delete(ctx context.Context, id string) error
	Active(ctx context.Context) ([]domain.VisaCategory, error)
}
