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

const collectionCountries = "countries"

// activeCountryProjection is the slim shape served to public dropdowns and
// country grids, where the full visa-type payload is dead weight.
var activeCountryProjection = bson.M{
	"name": 1, "nameBn": 1, "slug": 1, "flag": 1, "image": 1,
	"region": 1, "startingPrice": 1, "submissionType": 1, "isFeatured": 1,
}

// CountryRepository is the MongoDB implementation of ports.CountryRepository.
type CountryRepository struct {
	col *mongo.Collection
}

func NewCountryRepository(db *mongo.Database) *CountryRepository {
	return &CountryRepository{col: db.Collection(collectionCountries)}
}

func (r *CountryRepository) Insert(ctx context.Context, c *domain.Country) (*domain.Country, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, c); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSlugConflict
		}
		return nil, fmt.Errorf("insert country: %w", err)
	}
	return c, nil
}

func (r *CountryRepository) FindByID(ctx context.Context, id string) (*domain.Country, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Country
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCountryNotFound
		}
		return nil, fmt.Errorf("find country: %w", err)
	}
	return &c, nil
}

func (r *CountryRepository) FindActiveBySlug(ctx context.Context, slug string) (*domain.Country, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Country
	filter := bson.M{"slug": slug, "isActive": true}
	if err := r.col.FindOne(ctx, filter).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCountryNotFound
		}
		return nil, fmt.Errorf("find country by slug: %w", err)
	}
	return &c, nil
}

func (r *CountryRepository) List(ctx context.Context, filters ports.CountryFilters, opts ports.ListOptions) ([]domain.Country, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	conditions := []bson.M{}
	if filters.SearchTerm != "" {
		regex := bson.M{"$regex": filters.SearchTerm, "$options": "i"}
		conditions = append(conditions, bson.M{"$or": []bson.M{
			{"name": regex},
			{"nameBn": regex},
			{"region": regex},
		}})
	}
	if filters.IsActive != nil {
		conditions = append(conditions, bson.M{"isActive": *filters.IsActive})
	}
	if filters.IsFeatured != nil {
		conditions = append(conditions, bson.M{"isFeatured": *filters.IsFeatured})
	}
	if filters.Region != "" {
		conditions = append(conditions, bson.M{"region": filters.Region})
	}
	if filters.SubmissionType != "" {
		conditions = append(conditions, bson.M{"submissionType": filters.SubmissionType})
	}
	filter := bson.M{}
	if len(conditions) > 0 {
		filter = bson.M{"$and": conditions}
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count countries: %w", err)
	}

	findOpts := options.Find().
		SetSort(sortDoc(opts)).
		SetSkip(int64(opts.Skip())).
		SetLimit(int64(opts.Limit))

	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("list countries: %w", err)
	}
	defer cur.Close(ctx)

	var countries []domain.Country
	if err := cur.All(ctx, &countries); err != nil {
		return nil, 0, fmt.Errorf("decode countries: %w", err)
	}
	return countries, total, nil
}

func (r *CountryRepository) ListActive(ctx context.Context) ([]domain.Country, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	findOpts := options.Find().
		SetProjection(activeCountryProjection).
		SetSort(bson.D{{Key: "order", Value: 1}, {Key: "name", Value: 1}})

	cur, err := r.col.Find(ctx, bson.M{"isActive": true}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("list active countries: %w", err)
	}
	defer cur.Close(ctx)

	var countries []domain.Country
	if err := cur.All(ctx, &countries); err != nil {
		return nil, fmt.Errorf("decode active countries: %w", err)
	}
	return countries, nil
}

func (r *CountryRepository) ListFeatured(ctx context.Context) ([]domain.Country, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"isActive": true, "isFeatured": true}
	findOpts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})

	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("list featured countries: %w", err)
	}
	defer cur.Close(ctx)

	var countries []domain.Country
	if err := cur.All(ctx, &countries); err != nil {
		return nil, fmt.Errorf("decode featured countries: %w", err)
	}
	return countries, nil
}

func (r *CountryRepository) Replace(ctx context.Context, id string, c *domain.Country) (*domain.Country, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": id}, c)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSlugConflict
		}
		return nil, fmt.Errorf("replace country: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrCountryNotFound
	}
	return c, nil
}

func (r *CountryRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete country: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCountryNotFound
	}
	return nil
}

func (r *CountryRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	return slugExists(ctx, r.col, slug)
}

func (r *CountryRepository) SlugExistsExcluding(ctx context.Context, slug, excludeID string) (bool, error) {
	return slugExistsExcluding(ctx, r.col, slug, excludeID)
}

func (r *CountryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		slugIndex(),
		{Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "isFeatured", Value: 1}}},
		{Keys: bson.D{{Key: "region", Value: 1}}},
		{Keys: bson.D{{Key: "order", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
