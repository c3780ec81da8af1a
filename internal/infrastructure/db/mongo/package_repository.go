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

const collectionPackages = "hajjumrahpackages"

// PackageRepository is the MongoDB implementation of ports.PackageRepository.
type PackageRepository struct {
	col *mongo.Collection
}

func NewPackageRepository(db *mongo.Database) *PackageRepository {
	return &PackageRepository{col: db.Collection(collectionPackages)}
}

func (r *PackageRepository) Insert(ctx context.Context, p *domain.HajjUmrahPackage) (*domain.HajjUmrahPackage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	p.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, p); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSlugConflict
		}
		return nil, fmt.Errorf("insert package: %w", err)
	}
	return p, nil
}

func (r *PackageRepository) FindByID(ctx context.Context, id string) (*domain.HajjUmrahPackage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.HajjUmrahPackage
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPackageNotFound
		}
		return nil, fmt.Errorf("find package: %w", err)
	}
	return &p, nil
}

func (r *PackageRepository) FindActiveBySlug(ctx context.Context, slug string) (*domain.HajjUmrahPackage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.HajjUmrahPackage
	filter := bson.M{"slug": slug, "isActive": true}
	if err := r.col.FindOne(ctx, filter).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPackageNotFound
		}
		return nil, fmt.Errorf("find package by slug: %w", err)
	}
	return &p, nil
}

func (r *PackageRepository) List(ctx context.Context, filters ports.PackageFilters, opts ports.ListOptions) ([]domain.HajjUmrahPackage, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	conditions := []bson.M{}
	if filters.SearchTerm != "" {
		regex := bson.M{"$regex": filters.SearchTerm, "$options": "i"}
		conditions = append(conditions, bson.M{"$or": []bson.M{
			{"name": regex},
			{"nameBn": regex},
			{"subtitle": regex},
		}})
	}
	if filters.Type != "" {
		conditions = append(conditions, bson.M{"type": filters.Type})
	}
	if filters.Status != "" {
		conditions = append(conditions, bson.M{"status": filters.Status})
	}
	if filters.IsActive != nil {
		conditions = append(conditions, bson.M{"isActive": *filters.IsActive})
	}
	if filters.IsFeatured != nil {
		conditions = append(conditions, bson.M{"isFeatured": *filters.IsFeatured})
	}
	if filters.IsPopular != nil {
		conditions = append(conditions, bson.M{"isPopular": *filters.IsPopular})
	}
	filter := bson.M{}
	if len(conditions) > 0 {
		filter = bson.M{"$and": conditions}
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count packages: %w", err)
	}

	findOpts := options.Find().
		SetSort(sortDoc(opts)).
		SetSkip(int64(opts.Skip())).
		SetLimit(int64(opts.Limit))

	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("list packages: %w", err)
	}
	defer cur.Close(ctx)

	var packages []domain.HajjUmrahPackage
	if err := cur.All(ctx, &packages); err != nil {
		return nil, 0, fmt.Errorf("decode packages: %w", err)
	}
	return packages, total, nil
}

func (r *PackageRepository) ListFeatured(ctx context.Context) ([]domain.HajjUmrahPackage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"isActive": true, "isFeatured": true}
	findOpts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})

	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("list featured packages: %w", err)
	}
	defer cur.Close(ctx)

	var packages []domain.HajjUmrahPackage
	if err := cur.All(ctx, &packages); err != nil {
		return nil, fmt.Errorf("decode featured packages: %w", err)
	}
	return packages, nil
}

func (r *PackageRepository) Replace(ctx context.Context, id string, p *domain.HajjUmrahPackage) (*domain.HajjUmrahPackage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": id}, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSlugConflict
		}
		return nil, fmt.Errorf("replace package: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrPackageNotFound
	}
	return p, nil
}

func (r *PackageRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete package: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPackageNotFound
	}
	return nil
}

func (r *PackageRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	return slugExists(ctx, r.col, slug)
}

func (r *PackageRepository) SlugExistsExcluding(ctx context.Context, slug, excludeID string) (bool, error) {
	return slugExistsExcluding(ctx, r.col, slug, excludeID)
}

func (r *PackageRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		slugIndex(),
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "isFeatured", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
