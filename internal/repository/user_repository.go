package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/bhupatisharma/swish/internal/apperrors"
	"github.com/bhupatisharma/swish/internal/models"
)

// UserRepository owns persistence of user documents.
type UserRepository interface {
	Insert(ctx context.Context, user *models.User) (bson.ObjectID, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByIDs(ctx context.Context, ids []bson.ObjectID) (map[bson.ObjectID]models.User, error)
	UpdateFields(ctx context.Context, id bson.ObjectID, set bson.M) error
	Count(ctx context.Context) (int64, error)
}

type MongoUserRepository struct {
	Col *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{Col: db.Collection("users")}
}

func (r *MongoUserRepository) Insert(ctx context.Context, user *models.User) (bson.ObjectID, error) {
	res, err := r.Col.InsertOne(ctx, user)
	if err != nil {
		// unique email index: a racing duplicate registration surfaces as 11000
		var we mongo.WriteException
		if errors.As(err, &we) {
			for _, e := range we.WriteErrors {
				if e.Code == 11000 {
					return bson.NilObjectID, apperrors.ErrDuplicateEmail
				}
			}
		}
		return bson.NilObjectID, err
	}
	id := res.InsertedID.(bson.ObjectID)
	user.ID = id
	return id, nil
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	var user models.User
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.Col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIDs fetches all users in ids with a single $in query, keyed by id.
// Missing ids are simply absent from the map.
func (r *MongoUserRepository) FindByIDs(ctx context.Context, ids []bson.ObjectID) (map[bson.ObjectID]models.User, error) {
	users := make(map[bson.ObjectID]models.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	cur, err := r.Col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var all []models.User
	if err := cur.All(ctx, &all); err != nil {
		return nil, err
	}
	for _, u := range all {
		users[u.ID] = u
	}
	return users, nil
}

// UpdateFields applies a partial $set. MatchedCount (not ModifiedCount) decides
// existence, so setting a field to its current value is not a 404.
func (r *MongoUserRepository) UpdateFields(ctx context.Context, id bson.ObjectID, set bson.M) error {
	res, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

func (r *MongoUserRepository) Count(ctx context.Context) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{})
}
