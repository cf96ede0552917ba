package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/bhupatisharma/swish/internal/apperrors"
	"github.com/bhupatisharma/swish/internal/dto"
	"github.com/bhupatisharma/swish/internal/middleware"
	"github.com/bhupatisharma/swish/internal/services"
)

// CreatePostHandler godoc
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        data  body      dto.CreatePostRequest  true  "Post payload"
// @Success      201   {object}  dto.PostView
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /posts [post]
func CreatePostHandler(posts *services.PostService, feed *services.FeedService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authorID, err := bson.ObjectIDFromHex(middleware.UserID(c))
		if err != nil {
			return fail(c, apperrors.ErrInvalidToken)
		}

		var req dto.CreatePostRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		post, err := posts.Create(c.Context(), authorID, req.Content)
		if err != nil {
			return fail(c, err)
		}

		view, err := feed.Enrich(c.Context(), post)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(view)
	}
}

// GetPostsHandler godoc
// @Summary      List the feed
// @Description  All posts, newest first, each joined with its author's public profile
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.PostView
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /posts [get]
func GetPostsHandler(posts *services.PostService, feed *services.FeedService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		all, err := posts.List(c.Context())
		if err != nil {
			return fail(c, err)
		}

		views, err := feed.EnrichAll(c.Context(), all)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(views)
	}
}

// LikePostHandler godoc
// @Summary      Toggle a like
// @Description  Adds the like when absent, removes it when present
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        postId  path      string          true  "Post id"
// @Param        data    body      dto.LikeRequest true  "Liking user"
// @Success      200     {object}  dto.PostView
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /posts/{postId}/like [post]
func LikePostHandler(posts *services.PostService, feed *services.FeedService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		postID, err := bson.ObjectIDFromHex(c.Params("postId"))
		if err != nil {
			return fail(c, apperrors.ErrPostNotFound)
		}

		var req dto.LikeRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid body"})
		}
		userID, err := bson.ObjectIDFromHex(req.UserID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid userId"})
		}

		post, err := posts.ToggleLike(c.Context(), postID, userID)
		if err != nil {
			return fail(c, err)
		}

		view, err := feed.Enrich(c.Context(), post)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(view)
	}
}

// CommentPostHandler godoc
// @Summary      Comment on a post
// @Description  Appends a comment; the author name is snapshotted as sent
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        postId  path      string             true  "Post id"
// @Param        data    body      dto.CommentRequest true  "Comment payload"
// @Success      200     {object}  dto.CommentResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /posts/{postId}/comment [post]
func CommentPostHandler(posts *services.PostService, feed *services.FeedService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		postID, err := bson.ObjectIDFromHex(c.Params("postId"))
		if err != nil {
			return fail(c, apperrors.ErrPostNotFound)
		}

		var req dto.CommentRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid body"})
		}
		userID, err := bson.ObjectIDFromHex(req.UserID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid userId"})
		}

		post, err := posts.AddComment(c.Context(), postID, userID, req.UserName, req.Content)
		if err != nil {
			return fail(c, err)
		}

		view, err := feed.Enrich(c.Context(), post)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(dto.CommentResponse{
			Message: "Comment added successfully",
			Post:    view,
		})
	}
}
