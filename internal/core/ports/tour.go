package ports

import (
	"context"

	"github.com/visapro/visapro-api/internal/core/domain"
)

// TourFilters narrows the tour listing.
type TourFilters struct {
	SearchTerm  string
	IsActive    *bool
	IsFeatured  *bool
	Destination string
	Category    string
	TourType    string
	Status      string
	MinPrice    *float64
	MaxPrice    *float64
}

// TourRepository is the persistence interface for tours.
type TourRepository interface {
	Insert(ctx context.Context, t *domain.Tour) (*domain.Tour, error)
	FindByID(ctx context.Context, id string) (*domain.Tour, error)
	FindActiveBySlug(ctx context.Context, slug string) (*domain.Tour, error)
	List(ctx context.Context, filters TourFilters, opts ListOptions) ([]domain.Tour, int64, error)
	ListActive(ctx context.Context) ([]domain.Tour, error)
	ListFeatured(ctx context.Context) ([]domain.Tour, error)
	Replace(ctx context.Context, id string, t *domain.Tour) (*domain.Tour, error)
	Delete(ctx context.Context, id string) error

	SlugExists(ctx context.Context, slug string) (bool, error)
	SlugExistsExcluding(ctx context.Context, slug string, excludeID string) (bool, error)
}

// TourService defines use-case operations for the tour module.
type TourService interface {
	Create(ctx context.Context, t *domain.Tour) (*domain.Tour, error)
	List(ctx context.Context, filters TourFilters, opts ListOptions) ([]domain.Tour, ListMeta, error)
	GetByID(ctx context.Context, id string) (*domain.Tour, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tour, error)
	Update(ctx context.Context, id string, t *domain.Tour) (*domain.Tour, error)
	Delete(ctx context.Context, id string) error
	Active(ctx context.Context) ([]domain.Tour, error)
	Featured(ctx context.Context) ([]domain.Tour, error)
}
