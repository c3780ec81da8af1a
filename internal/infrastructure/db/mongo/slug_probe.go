package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// slugExists is the shared existence probe behind every collection's slug
// allocation scope. It is advisory only: the unique index on "slug" is the
// authoritative uniqueness enforcer.
func slugExists(ctx context.Context, col *mongo.Collection, slug string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := col.CountDocuments(ctx, bson.M{"slug": slug}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("slug probe: %w", err)
	}
	return n > 0, nil
}

// slugExistsExcluding ignores the record being renamed so an entity never
// collides with its own current slug.
func slugExistsExcluding(ctx context.Context, col *mongo.Collection, slug, excludeID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"slug": slug, "_id": bson.M{"$ne": excludeID}}
	n, err := col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("slug probe: %w", err)
	}
	return n > 0, nil
}

// slugIndex is the unique index model shared by all slugged collections.
func slugIndex() mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
}
