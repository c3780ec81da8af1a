package ports

import (
	"context"

	"github.com/visapro/visapro-api/internal/core/domain"
)

// HotelFilters narrows the hotel listing.
type HotelFilters struct {
	SearchTerm    string
	IsActive      *bool
	IsFeatured    *bool
	City          string
	Country       string
	StarRating    *int
	HotelCategory string
	RoomType      string
	Status        string
	MinPrice      *float64
	MaxPrice      *float64
}

// HotelRepository is the persistence interface for hotels.
type HotelRepository interface {
	Insert(ctx context.Context, h *domain.Hotel) (*domain.Hotel, error)
	FindByID(ctx context.Context, id string) (*domain.Hotel, error)
	FindActiveBySlug(ctx context.Context, slug string) (*domain.Hotel, error)
	List(ctx context.Context, filters HotelFilters, opts ListOptions) ([]domain.Hotel, int64, error)
	ListActive(ctx context.Context) ([]domain.Hotel, error)
	ListFeatured(ctx context.Context) ([]domain.Hotel, error)
	Replace(ctx context.Context, id string, h *domain.Hotel) (*domain.Hotel, error)
	Delete(ctx context.Context, id string) error

	SlugExists(ctx context.Context, slug string) (bool, error)
	SlugExistsExcluding(ctx context.Context, slug string, excludeID string) (bool, error)
}

// HotelService defines use-case operations for the hotel module.
type HotelService interface {
	Create(ctx context.Context, h *domain.Hotel) (*domain.Hotel, error)
	List(ctx context.Context, filters HotelFilters, opts ListOptions) ([]domain.Hotel, ListMeta, error)
	GetByID(ctx context.Context, id string) (*domain.Hotel, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Hotel, error)
	Update(ctx context.Context, id string, h *domain.Hotel) (*domain.Hotel, error)
	Delete(ctx context.Context, id string) error
	Active(ctx context.Context) ([]domain.Hotel, error)
	Featured(ctx context.Context) ([]domain.Hotel, error)
}
