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

const collectionVisaDocuments = "visadocuments"

// VisaDocumentRepository is the MongoDB implementation of
// ports.VisaDocumentRepository. Documents have no slug; the unique key is the
// generated reference number.
type VisaDocumentRepository struct {
	col *mongo.Collection
}

func NewVisaDocumentRepository(db *mongo.Database) *VisaDocumentRepository {
	return &VisaDocumentRepository{col: db.Collection(collectionVisaDocuments)}
}

func (r *VisaDocumentRepository) Insert(ctx context.Context, d *domain.VisaDocument) (*domain.VisaDocument, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	d.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, d); err != nil {
		return nil, fmt.Errorf("insert visa document: %w", err)
	}
	return d, nil
}

func (r *VisaDocumentRepository) FindByID(ctx context.Context, id string) (*domain.VisaDocument, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d domain.VisaDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVisaDocumentNotFound
		}
		return nil, fmt.Errorf("find visa document: %w", err)
	}
	return &d, nil
}

func (r *VisaDocumentRepository) List(ctx context.Context, filters ports.VisaDocumentFilters, opts ports.ListOptions) ([]domain.VisaDocument, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	conditions := []bson.M{}
	if filters.SearchTerm != "" {
		regex := bson.M{"$regex": filters.SearchTerm, "$options": "i"}
		conditions = append(conditions, bson.M{"$or": []bson.M{
			{"applicantName": regex},
			{"reference": regex},
			{"country": regex},
		}})
	}
	if filters.UserID != "" {
		conditions = append(conditions, bson.M{"user": filters.UserID})
	}
	if filters.Status != "" {
		conditions = append(conditions, bson.M{"status": filters.Status})
	}
	if filters.Country != "" {
		conditions = append(conditions, bson.M{"country": filters.Country})
	}
	if filters.VisaType != "" {
		conditions = append(conditions, bson.M{"visaType": filters.VisaType})
	}
	filter := bson.M{}
	if len(conditions) > 0 {
		filter = bson.M{"$and": conditions}
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count visa documents: %w", err)
	}

	findOpts := options.Find().
		SetSort(sortDoc(opts)).
		SetSkip(int64(opts.Skip())).
		SetLimit(int64(opts.Limit))

	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("list visa documents: %w", err)
	}
	defer cur.Close(ctx)

	var docs []domain.VisaDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode visa documents: %w", err)
	}
	return docs, total, nil
}

func (r *VisaDocumentRepository) ListByUser(ctx context.Context, userID string) ([]domain.VisaDocument, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"user": userID}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("list user visa documents: %w", err)
	}
	defer cur.Close(ctx)

	var docs []domain.VisaDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode user visa documents: %w", err)
	}
	return docs, nil
}

func (r *VisaDocumentRepository) Replace(ctx context.Context, id string, d *domain.VisaDocument) (*domain.VisaDocument, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": id}, d)
	if err != nil {
		return nil, fmt.Errorf("replace visa document: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrVisaDocumentNotFound
	}
	return d, nil
}

func (r *VisaDocumentRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete visa document: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrVisaDocumentNotFound
	}
	return nil
}

func (r *VisaDocumentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "reference", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
