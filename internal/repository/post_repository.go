package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/bhupatisharma/swish/internal/apperrors"
	"github.com/bhupatisharma/swish/internal/models"
)

// PostRepository owns persistence of post documents, including the embedded
// likes set and comments array. Every mutation is a single atomic document
// update; there is no whole-document read-modify-write anywhere.
type PostRepository interface {
	Insert(ctx context.Context, post *models.Post) (bson.ObjectID, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Post, error)
	ListNewestFirst(ctx context.Context) ([]models.Post, error)
	// AddLike adds userID to the likes set, guarded on it not being present.
	// Returns false when the guard did not match (already liked, or no such post).
	AddLike(ctx context.Context, postID, userID bson.ObjectID) (bool, error)
	// RemoveLike pulls userID from the likes set, guarded on it being present.
	RemoveLike(ctx context.Context, postID, userID bson.ObjectID) (bool, error)
	// AppendComment pushes a comment onto the post's comments array.
	AppendComment(ctx context.Context, postID bson.ObjectID, comment models.Comment) error
	Exists(ctx context.Context, id bson.ObjectID) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type MongoPostRepository struct {
	Col *mongo.Collection
}

func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{Col: db.Collection("posts")}
}

func (r *MongoPostRepository) Insert(ctx context.Context, post *models.Post) (bson.ObjectID, error) {
	res, err := r.Col.InsertOne(ctx, post)
	if err != nil {
		return bson.NilObjectID, err
	}
	id := res.InsertedID.(bson.ObjectID)
	post.ID = id
	return id, nil
}

func (r *MongoPostRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Post, error) {
	var post models.Post
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *MongoPostRepository) ListNewestFirst(ctx context.Context) ([]models.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.Col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var posts []models.Post
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// The membership guard in the filter makes the toggle race-safe: two concurrent
// likes by the same user match the $ne filter at most once, so the set can
// never hold a duplicate and the pull can never go negative.

func (r *MongoPostRepository) AddLike(ctx context.Context, postID, userID bson.ObjectID) (bool, error) {
	res, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": postID, "likes": bson.M{"$ne": userID}},
		bson.M{
			"$addToSet": bson.M{"likes": userID},
			"$set":      bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *MongoPostRepository) RemoveLike(ctx context.Context, postID, userID bson.ObjectID) (bool, error) {
	res, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": postID, "likes": userID},
		bson.M{
			"$pull": bson.M{"likes": userID},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *MongoPostRepository) AppendComment(ctx context.Context, postID bson.ObjectID, comment models.Comment) error {
	res, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{
			"$push": bson.M{"comments": comment},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrPostNotFound
	}
	return nil
}

func (r *MongoPostRepository) Exists(ctx context.Context, id bson.ObjectID) (bool, error) {
	count, err := r.Col.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *MongoPostRepository) Count(ctx context.Context) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{})
}
