package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/bhupatisharma/swish/internal/apperrors"
	"github.com/bhupatisharma/swish/internal/models"
	"github.com/bhupatisharma/swish/internal/repository"
)

// likeToggleAttempts bounds the retry when concurrent toggles by the same user
// race past both guarded updates.
const likeToggleAttempts = 3

// MaxContentLength caps post content.
const MaxContentLength = 5000

// PostService is the post store: create, list, like toggling and comment
// appends. All mutations go through single atomic document updates.
type PostService struct {
	Posts repository.PostRepository
}

func NewPostService(posts repository.PostRepository) *PostService {
	return &PostService{Posts: posts}
}

func (s *PostService) Create(ctx context.Context, authorID bson.ObjectID, content string) (*models.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.ErrEmptyContent
	}
	if len(content) > MaxContentLength {
		return nil, apperrors.NewValidationError("content", "Post content is too long")
	}

	now := time.Now().UTC()
	post := &models.Post{
		Content:   content,
		UserID:    authorID,
		Likes:     []bson.ObjectID{},
		Comments:  []models.Comment{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.Posts.Insert(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	return s.Posts.ListNewestFirst(ctx)
}

// ToggleLike flips userID's membership in the post's likes set. The add is
// guarded on absence and the remove on presence, so a toggle applies exactly
// once no matter how requests interleave; when both guards miss we either lost
// a race with another toggle (retry) or the post does not exist.
func (s *PostService) ToggleLike(ctx context.Context, postID, userID bson.ObjectID) (*models.Post, error) {
	for attempt := 0; attempt < likeToggleAttempts; attempt++ {
		added, err := s.Posts.AddLike(ctx, postID, userID)
		if err != nil {
			return nil, err
		}
		if added {
			return s.Posts.FindByID(ctx, postID)
		}

		removed, err := s.Posts.RemoveLike(ctx, postID, userID)
		if err != nil {
			return nil, err
		}
		if removed {
			return s.Posts.FindByID(ctx, postID)
		}

		exists, err := s.Posts.Exists(ctx, postID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.ErrPostNotFound
		}
	}
	return nil, fmt.Errorf("like toggle contention on post %s", postID.Hex())
}

// AddComment appends a comment carrying the author's display name as supplied;
// the name is a snapshot, never re-resolved on read.
func (s *PostService) AddComment(ctx context.Context, postID, authorID bson.ObjectID, authorName, content string) (*models.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.ErrEmptyComment
	}

	comment := models.Comment{
		Content:   content,
		UserID:    authorID,
		UserName:  authorName,
		Timestamp: time.Now().UTC(),
	}
	if err := s.Posts.AppendComment(ctx, postID, comment); err != nil {
		return nil, err
	}
	return s.Posts.FindByID(ctx, postID)
}
