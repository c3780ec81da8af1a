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

const collectionUsers = "users"

// excludeSecret strips fields that must never leave this package except
// through FindByEmailWithPassword and FindByResetToken.
var excludeSecret = bson.M{"password": 0, "passwordResetToken": 0}

// UserRepository is the MongoDB implementation of ports.UserRepository.
// Every read except FindByID filters soft-deleted records explicitly at the
// call site; there is no query hook a raw query could bypass.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

// FindByID returns the record regardless of its soft-delete flag: the auth
// gate distinguishes "deleted" from "never existed".
func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var u domain.User
	err := r.col.FindOne(ctx, bson.M{"_id": id}, options.FindOne().SetProjection(excludeSecret)).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) FindActiveByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": id, "isDeleted": bson.M{"$ne": true}}
	var u domain.User
	err := r.col.FindOne(ctx, filter, options.FindOne().SetProjection(excludeSecret)).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find active user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) FindByEmailWithPassword(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"email": email, "isDeleted": bson.M{"$ne": true}}
	var u domain.User
	if err := r.col.FindOne(ctx, filter).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) FindByResetToken(ctx context.Context, tokenHash string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"passwordResetToken": tokenHash, "isDeleted": bson.M{"$ne": true}}
	var u domain.User
	if err := r.col.FindOne(ctx, filter).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by reset token: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	user.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id string, upd ports.ProfileUpdate) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updatedAt": time.Now().UTC()}
	if upd.FirstName != nil {
		set["firstName"] = *upd.FirstName
	}
	if upd.LastName != nil {
		set["lastName"] = *upd.LastName
	}
	if upd.Phone != nil {
		set["phone"] = *upd.Phone
	}
	if upd.Avatar != nil {
		set["avatar"] = *upd.Avatar
	}

	filter := bson.M{"_id": id, "isDeleted": bson.M{"$ne": true}}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(excludeSecret)

	var u domain.User
	err := r.col.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string, changedAt time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"password":          passwordHash,
		"passwordChangedAt": changedAt,
		"updatedAt":         changedAt,
	}}
	return r.updateOne(ctx, id, update)
}

func (r *UserRepository) SetResetToken(ctx context.Context, id, tokenHash string, expires time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"passwordResetToken":   tokenHash,
		"passwordResetExpires": expires,
	}}
	return r.updateOne(ctx, id, update)
}

func (r *UserRepository) ClearResetToken(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$unset": bson.M{
		"passwordResetToken":   "",
		"passwordResetExpires": "",
	}}
	return r.updateOne(ctx, id, update)
}

func (r *UserRepository) SetStatus(ctx context.Context, id string, status domain.UserStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.updateOne(ctx, id, bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}})
}

func (r *UserRepository) SetRole(ctx context.Context, id string, role domain.Role) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.updateOne(ctx, id, bson.M{"$set": bson.M{"role": role, "updatedAt": time.Now().UTC()}})
}

func (r *UserRepository) SoftDelete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.updateOne(ctx, id, bson.M{"$set": bson.M{"isDeleted": true, "updatedAt": time.Now().UTC()}})
}

func (r *UserRepository) RecordLogin(ctx context.Context, id string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.updateOne(ctx, id, bson.M{"$set": bson.M{"lastLoginAt": at}})
}

func (r *UserRepository) updateOne(ctx context.Context, id string, update bson.M) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context, filters ports.UserFilters, opts ports.ListOptions) ([]domain.User, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	conditions := []bson.M{{"isDeleted": bson.M{"$ne": true}}}
	if filters.SearchTerm != "" {
		regex := bson.M{"$regex": filters.SearchTerm, "$options": "i"}
		conditions = append(conditions, bson.M{"$or": []bson.M{
			{"firstName": regex},
			{"lastName": regex},
			{"email": regex},
		}})
	}
	if filters.Role != "" {
		conditions = append(conditions, bson.M{"role": filters.Role})
	}
	if filters.Status != "" {
		conditions = append(conditions, bson.M{"status": filters.Status})
	}
	filter := bson.M{"$and": conditions}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	findOpts := options.Find().
		SetProjection(excludeSecret).
		SetSort(sortDoc(opts)).
		SetSkip(int64(opts.Skip())).
		SetLimit(int64(opts.Limit))

	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	var users []domain.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, 0, fmt.Errorf("decode users: %w", err)
	}
	return users, total, nil
}

// EnsureIndexes creates the unique email index and the query indexes.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "role", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "passwordResetToken", Value: 1}}, Options: options.Index().SetSparse(true)},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// sortDoc maps ListOptions onto a mongo sort document.
func sortDoc(opts ports.ListOptions) bson.D {
	dir := 1
	if opts.SortOrder == "desc" {
		dir = -1
	}
	return bson.D{{Key: opts.SortBy, Value: dir}}
}
