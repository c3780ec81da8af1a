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

const collectionVisaCategories = "visacategories"

// VisaCategoryRepository is the MongoDB implementation of
// ports.VisaCategoryRepository.
type VisaCategoryRepository struct {
	col *mongo.Collection
}

func NewVisaCategoryRepository(db *mongo.Database) *VisaCategoryRepository {
	return &VisaCategoryRepository{col: db.Collection(collectionVisaCategories)}
}

func (r *VisaCategoryRepository) Insert(ctx context.Context, c *domain.VisaCategory) (*domain.VisaCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, c); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSlugConflict
		}
		return nil, fmt.Errorf("insert visa category: %w", err)
	}
	return c, nil
}

func (r *VisaCategoryRepository) FindByID(ctx context.Context, id string) (*domain.VisaCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.VisaCategory
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVisaCategoryNotFound
		}
		return nil, fmt.Errorf("find visa category: %w", err)
	}
	return &c, nil
}

func (r *VisaCategoryRepository) FindActiveBySlug(ctx context.Context, slug string) (*domain.VisaCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.VisaCategory
	filter := bson.M{"slug": slug, "isActive": true}
	if err := r.col.FindOne(ctx, filter).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVisaCategoryNotFound
		}
		return nil, fmt.Errorf("find visa category by slug: %w", err)
	}
	return &c, nil
}

func (r *VisaCategoryRepository) List(ctx context.Context, filters ports.VisaCategoryFilters, opts ports.ListOptions) ([]domain.VisaCategory, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	conditions := []bson.M{}
	if filters.SearchTerm != "" {
		regex := bson.M{"$regex": filters.SearchTerm, "$options": "i"}
		conditions = append(conditions, bson.M{"$or": []bson.M{
			{"name": regex},
			{"nameBn": regex},
		}})
	}
	if filters.IsActive != nil {
		conditions = append(conditions, bson.M{"isActive": *filters.IsActive})
	}
	filter := bson.M{}
	if len(conditions) > 0 {
		filter = bson.M{"$and": conditions}
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count visa categories: %w", err)
	}

	findOpts := options.Find().
		SetSort(sortDoc(opts)).
		SetSkip(int64(opts.Skip())).
		SetLimit(int64(opts.Limit))

	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("list visa categories: %w", err)
	}
	defer cur.Close(ctx)

	var categories []domain.VisaCategory
	if err := cur.All(ctx, &categories); err != nil {
		return nil, 0, fmt.Errorf("decode visa categories: %w", err)
	}
	return categories, total, nil
}

func (r *VisaCategoryRepository) ListActive(ctx context.Context) ([]domain.VisaCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	findOpts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "name", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"isActive": true}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("list active visa categories: %w", err)
	}
	defer cur.Close(ctx)

	var categories []domain.VisaCategory
	if err := cur.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("decode active visa categories: %w", err)
	}
	return categories, nil
}

func (r *VisaCategoryRepository) Replace(ctx context.Context, id string, c *domain.VisaCategory) (*domain.VisaCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": id}, c)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSlugConflict
		}
		return nil, fmt.Errorf("replace visa category: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrVisaCategoryNotFound
	}
	return c, nil
}

func (r *VisaCategoryRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete visa category: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrVisaCategoryNotFound
	}
	return nil
}

func (r *VisaCategoryRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	return slugExists(ctx, r.col, slug)
}

func (r *VisaCategoryRepository) SlugExistsExcluding(ctx context.Context, slug, excludeID string) (bool, error) {
	return slugExistsExcluding(ctx, r.col, slug, excludeID)
}

func (r *VisaCategoryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		slugIndex(),
		{Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "order", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
