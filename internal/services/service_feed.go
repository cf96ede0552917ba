package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/bhupatisharma/swish/internal/dto"
	"github.com/bhupatisharma/swish/internal/models"
	"github.com/bhupatisharma/swish/internal/repository"
)

// UnknownUserName stands in for authors that no longer resolve; the feed
// renders regardless.
const UnknownUserName = "Unknown User"

// FeedService assembles the read-model: posts joined with their author's
// public profile. It never mutates either store.
type FeedService struct {
	Users repository.UserRepository
}

func NewFeedService(users repository.UserRepository) *FeedService {
	return &FeedService{Users: users}
}

// Enrich resolves one post's author and builds its view.
func (s *FeedService) Enrich(ctx context.Context, post *models.Post) (dto.PostView, error) {
	user, err := s.Users.FindByID(ctx, post.UserID)
	if err != nil {
		user = nil // missing author degrades to a placeholder, never an error
	}
	return buildPostView(post, user), nil
}

// EnrichAll builds views for every post, resolving all distinct authors with
// one batched lookup instead of one query per post.
func (s *FeedService) EnrichAll(ctx context.Context, posts []models.Post) ([]dto.PostView, error) {
	seen := make(map[bson.ObjectID]struct{}, len(posts))
	ids := make([]bson.ObjectID, 0, len(posts))
	for _, p := range posts {
		if _, ok := seen[p.UserID]; !ok {
			seen[p.UserID] = struct{}{}
			ids = append(ids, p.UserID)
		}
	}

	authors, err := s.Users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]dto.PostView, 0, len(posts))
	for i := range posts {
		var author *models.User
		if u, ok := authors[posts[i].UserID]; ok {
			author = &u
		}
		views = append(views, buildPostView(&posts[i], author))
	}
	return views, nil
}

func buildPostView(post *models.Post, author *models.User) dto.PostView {
	likes := make([]string, 0, len(post.Likes))
	for _, id := range post.Likes {
		likes = append(likes, id.Hex())
	}

	comments := make([]dto.CommentView, 0, len(post.Comments))
	for _, c := range post.Comments {
		comments = append(comments, dto.CommentView{
			Content:   c.Content,
			UserID:    c.UserID.Hex(),
			UserName:  c.UserName,
			Timestamp: c.Timestamp,
		})
	}

	view := dto.PostView{
		ID:        post.ID.Hex(),
		Content:   post.Content,
		ImageURL:  post.ImageURL,
		Likes:     likes,
		Comments:  comments,
		CreatedAt: post.CreatedAt,
		User:      dto.PostAuthor{Name: UnknownUserName},
	}
	if author != nil {
		view.User = dto.PostAuthor{
			ID:           author.ID.Hex(),
			Name:         author.Name,
			ProfilePhoto: author.ProfilePhoto,
			Role:         string(author.Role),
			Department:   author.Department(),
		}
	}
	return view
}
