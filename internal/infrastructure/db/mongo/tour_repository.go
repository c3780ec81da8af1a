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

const collectionTours = "tours"

// TourRepository is the MongoDB implementation of ports.TourRepository.
type TourRepository struct {
	col *mongo.Collection
}

func NewTourRepository(db *mongo.Database) *TourRepository {
	return &TourRepository{col: db.Collection(collectionTours)}
}

func (r *TourRepository) Insert(ctx context.Context, t *domain.Tour) (*domain.Tour, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	t.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, t); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSlugConflict
		}
		return nil, fmt.Errorf("insert tour: %w", err)
	}
	return t, nil
}

func (r *TourRepository) FindByID(ctx context.Context, id string) (*domain.Tour, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var t domain.Tour
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTourNotFound
		}
		return nil, fmt.Errorf("find tour: %w", err)
	}
	return &t, nil
}

func (r *TourRepository) FindActiveBySlug(ctx context.Context, slug string) (*domain.Tour, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var t domain.Tour
	filter := bson.M{"slug": slug, "isActive": true}
	if err := r.col.FindOne(ctx, filter).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTourNotFound
		}
		return nil, fmt.Errorf("find tour by slug: %w", err)
	}
	return &t, nil
}

func (r *TourRepository) List(ctx context.Context, filters ports.TourFilters, opts ports.ListOptions) ([]domain.Tour, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	conditions := []bson.M{}
	if filters.SearchTerm != "" {
		regex := bson.M{"$regex": filters.SearchTerm, "$options": "i"}
		conditions = append(conditions, bson.M{"$or": []bson.M{
			{"title": regex},
			{"titleBn": regex},
			{"destination": regex},
		}})
	}
	if filters.IsActive != nil {
		conditions = append(conditions, bson.M{"isActive": *filters.IsActive})
	}
	if filters.IsFeatured != nil {
		conditions = append(conditions, bson.M{"isFeatured": *filters.IsFeatured})
	}
	if filters.Destination != "" {
		conditions = append(conditions, bson.M{"destination": filters.Destination})
	}
	if filters.Category != "" {
		conditions = append(conditions, bson.M{"category": filters.Category})
	}
	if filters.TourType != "" {
		conditions = append(conditions, bson.M{"tourType": filters.TourType})
	}
	if filters.Status != "" {
		conditions = append(conditions, bson.M{"status": filters.Status})
	}
	if price := priceRange(filters.MinPrice, filters.MaxPrice); price != nil {
		conditions = append(conditions, bson.M{"price": price})
	}
	filter := bson.M{}
	if len(conditions) > 0 {
		filter = bson.M{"$and": conditions}
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count tours: %w", err)
	}

	findOpts := options.Find().
		SetSort(sortDoc(opts)).
		SetSkip(int64(opts.Skip())).
		SetLimit(int64(opts.Limit))

	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("list tours: %w", err)
	}
	defer cur.Close(ctx)

	var tours []domain.Tour
	if err := cur.All(ctx, &tours); err != nil {
		return nil, 0, fmt.Errorf("decode tours: %w", err)
	}
	return tours, total, nil
}

func (r *TourRepository) ListActive(ctx context.Context) ([]domain.Tour, error) {
	return r.findSorted(ctx, bson.M{"isActive": true})
}

func (r *TourRepository) ListFeatured(ctx context.Context) ([]domain.Tour, error) {
	return r.findSorted(ctx, bson.M{"isActive": true, "isFeatured": true})
}

func (r *TourRepository) findSorted(ctx context.Context, filter bson.M) ([]domain.Tour, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	findOpts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("list tours: %w", err)
	}
	defer cur.Close(ctx)

	var tours []domain.Tour
	if err := cur.All(ctx, &tours); err != nil {
		return nil, fmt.Errorf("decode tours: %w", err)
	}
	return tours, nil
}

func (r *TourRepository) Replace(ctx context.Context, id string, t *domain.Tour) (*domain.Tour, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": id}, t)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSlugConflict
		}
		return nil, fmt.Errorf("replace tour: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrTourNotFound
	}
	return t, nil
}

func (r *TourRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete tour: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTourNotFound
	}
	return nil
}

func (r *TourRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	return slugExists(ctx, r.col, slug)
}

func (r *TourRepository) SlugExistsExcluding(ctx context.Context, slug, excludeID string) (bool, error) {
	return slugExistsExcluding(ctx, r.col, slug, excludeID)
}

func (r *TourRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		slugIndex(),
		{Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "isFeatured", Value: 1}}},
		{Keys: bson.D{{Key: "destination", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
