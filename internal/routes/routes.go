package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bhupatisharma/swish/internal/handlers"
	"github.com/bhupatisharma/swish/internal/middleware"
	"github.com/bhupatisharma/swish/internal/repository"
	"github.com/bhupatisharma/swish/internal/services"
	"github.com/bhupatisharma/swish/internal/token"
	"github.com/bhupatisharma/swish/internal/uploads"
)

type Deps struct {
	Auth    *services.AuthService
	Posts   *services.PostService
	Feed    *services.FeedService
	Tokens  *token.Service
	Storage uploads.Storage
	Users   repository.UserRepository
	PostsDB repository.PostRepository
	Campus  string
}

// Register mounts the whole API under /api. Every post and profile-mutation
// route sits behind the auth gate.
func Register(app *fiber.App, d Deps) {
	app.Get("/", handlers.RootHandler(d.Campus))

	api := app.Group("/api")
	api.Get("/test", handlers.TestHandler(d.Users, d.PostsDB, d.Campus))

	auth := api.Group("/auth")
	auth.Post("/register", handlers.RegisterHandler(d.Auth, d.Tokens, d.Storage))
	auth.Post("/login", handlers.LoginHandler(d.Auth, d.Tokens))
	auth.Put("/profile", middleware.RequireAuth(d.Tokens), handlers.UpdateProfileHandler(d.Auth))

	posts := api.Group("/posts", middleware.RequireAuth(d.Tokens))
	posts.Post("/", handlers.CreatePostHandler(d.Posts, d.Feed))
	posts.Get("/", handlers.GetPostsHandler(d.Posts, d.Feed))
	posts.Post("/:postId/like", handlers.LikePostHandler(d.Posts, d.Feed))
	posts.Post("/:postId/comment", handlers.CommentPostHandler(d.Posts, d.Feed))
}
