package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	_ "github.com/bhupatisharma/swish/docs"

	"github.com/bhupatisharma/swish/bootstrap"
	"github.com/bhupatisharma/swish/config"
	"github.com/bhupatisharma/swish/database"
	"github.com/bhupatisharma/swish/internal/repository"
	"github.com/bhupatisharma/swish/internal/routes"
	"github.com/bhupatisharma/swish/internal/services"
	"github.com/bhupatisharma/swish/internal/token"
	"github.com/bhupatisharma/swish/internal/uploads"
)

// @title        Swish Campus API
// @version      1.0
// @description  Campus social network: auth, feed, likes and comments.
// @BasePath     /api
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	client := database.ConnectMongo(cfg.MongoURI)
	defer database.DisconnectMongo(client)
	db := client.Database(cfg.MongoDB)

	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	userRepo := repository.NewMongoUserRepository(db)
	postRepo := repository.NewMongoPostRepository(db)

	tokens := token.NewService(cfg.JWTSecret)
	storage := uploads.NewCloudinary(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/docs/*", swagger.HandlerDefault)

	routes.Register(app, routes.Deps{
		Auth:    services.NewAuthService(userRepo, cfg.AdminCode, cfg.Campus),
		Posts:   services.NewPostService(postRepo),
		Feed:    services.NewFeedService(userRepo),
		Tokens:  tokens,
		Storage: storage,
		Users:   userRepo,
		PostsDB: postRepo,
		Campus:  cfg.Campus,
	})

	log.Printf("listening at http://localhost:%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
