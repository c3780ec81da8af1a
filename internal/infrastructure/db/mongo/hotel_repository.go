package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/visapro/visapro-api/internal/core/domain"
	"github.com/visapro/visapro-api/internal/core/ports"
)

const collectionHotels = "hotels"

// HotelRepository is the MongoDB implementation of ports.HotelRepository.
type HotelRepository struct {
	col *mongo.Collection
}

func NewHotelRepository(db *mongo.Database) *HotelRepository {
	return &HotelRepository{col: db.Collection(collectionHotels)}
}

func (r *HotelRepository) Insert(ctx context.Context, h *domain.Hotel) (*domain.Hotel, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	h.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, h); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSlugConflict
		}
		return nil, fmt.Errorf("insert hotel: %w", err)
	}
	return h, nil
}

func (r *HotelRepository) FindByID(ctx context.Context, id string) (*domain.Hotel, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var h domain.Hotel
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&h); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrHotelNotFound
		}
		return nil, fmt.Errorf("find hotel: %w", err)
	}
	return &h, nil
}

func (r *HotelRepository) FindActiveBySlug(ctx context.Context, slug string) (*domain.Hotel, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var h domain.Hotel
	filter := bson.M{"slug": slug, "isActive": true}
	if err := r.col.FindOne(ctx, filter).Decode(&h); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrHotelNotFound
		}
		return nil, fmt.Errorf("find hotel by slug: %w", err)
	}
	return &h, nil
}

func (r *HotelRepository) List(ctx context.Context, filters ports.HotelFilters, opts ports.ListOptions) ([]domain.Hotel, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	conditions := []bson.M{}
	if filters.SearchTerm != "" {
		regex := bson.M{"$regex": filters.SearchTerm, "$options": "i"}
		conditions = append(conditions, bson.M{"$or": []bson.M{
			{"name": regex},
			{"nameBn": regex},
			{"city": regex},
			{"country": regex},
		}})
	}
	if filters.IsActive != nil {
		conditions = append(conditions, bson.M{"isActive": *filters.IsActive})
	}
	if filters.IsFeatured != nil {
		conditions = append(conditions, bson.M{"isFeatured": *filters.IsFeatured})
	}
	if filters.City != "" {
		conditions = append(conditions, bson.M{"city": filters.City})
	}
	if filters.Country != "" {
		conditions = append(conditions, bson.M{"country": filters.Country})
	}
	if filters.StarRating != nil {
		conditions = append(conditions, bson.M{"starRating": *filters.StarRating})
	}
	if filters.HotelCategory != "" {
		conditions = append(conditions, bson.M{"hotelCategory": filters.HotelCategory})
	}
	if filters.RoomType != "" {
		conditions = append(conditions, bson.M{"roomType": filters.RoomType})
	}
	if filters.Status != "" {
		conditions = append(conditions, bson.M{"status": filters.Status})
	}
	if price := priceRange(filters.MinPrice, filters.MaxPrice); price != nil {
		conditions = append(conditions, bson.M{"pricePerNight": price})
	}
	filter := bson.M{}
	if len(conditions) > 0 {
		filter = bson.M{"$and": conditions}
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count hotels: %w", err)
	}

	findOpts := options.Find().
		SetSort(sortDoc(opts)).
		SetSkip(int64(opts.Skip())).
		SetLimit(int64(opts.Limit))

	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("list hotels: %w", err)
	}
	defer cur.Close(ctx)

	var hotels []domain.Hotel
	if err := cur.All(ctx, &hotels); err != nil {
		return nil, 0, fmt.Errorf("decode hotels: %w", err)
	}
	return hotels, total, nil
}

func (r *HotelRepository) ListActive(ctx context.Context) ([]domain.Hotel, error) {
	return r.findSorted(ctx, bson.M{"isActive": true})
}

func (r *HotelRepository) ListFeatured(ctx context.Context) ([]domain.Hotel, error) {
	return r.findSorted(ctx, bson.M{"isActive": true, "isFeatured": true})
}

func (r *HotelRepository) findSorted(ctx context.Context, filter bson.M) ([]domain.Hotel, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	findOpts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	defer cur.Close(ctx)

	var hotels []domain.Hotel
	if err := cur.All(ctx, &hotels); err != nil {
		return nil, fmt.Errorf("decode hotels: %w", err)
	}
	return hotels, nil
}

func (r *HotelRepository) Replace(ctx context.Context, id string, h *domain.Hotel) (*domain.Hotel, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": id}, h)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSlugConflict
		}
		return nil, fmt.Errorf("replace hotel: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrHotelNotFound
	}
	return h, nil
}

func (r *HotelRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete hotel: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrHotelNotFound
	}
	return nil
}

func (r *HotelRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	return slugExists(ctx, r.col, slug)
}

func (r *HotelRepository) SlugExistsExcluding(ctx context.Context, slug, excludeID string) (bool, error) {
	return slugExistsExcluding(ctx, r.col, slug, excludeID)
}

func (r *HotelRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		slugIndex(),
		{Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "isFeatured", Value: 1}}},
		{Keys: bson.D{{Key: "city", Value: 1}}},
		{Keys: bson.D{{Key: "pricePerNight", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// priceRange builds a $gte/$lte clause, or nil when both bounds are absent.
func priceRange(min, max *float64) bson.M {
	if min == nil && max == nil {
		return nil
	}
	rangeDoc := bson.M{}
	if min != nil {
		rangeDoc["$gte"] = *min
	}
	if max != nil {
		rangeDoc["$lte"] = *max
	}
	return rangeDoc
}
