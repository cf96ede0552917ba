package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bhupatisharma/swish/internal/repository"
)

// RootHandler is the service banner.
func RootHandler(campus string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Swish Backend API is running",
			"version": "1.0",
			"campus":  campus,
		})
	}
}

// TestHandler reports collection counts, handy for smoke-checking a deployment.
func TestHandler(users repository.UserRepository, posts repository.PostRepository, campus string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userCount, err := users.Count(c.Context())
		if err != nil {
			return fail(c, err)
		}
		postCount, err := posts.Count(c.Context())
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{
			"message": "API is working!",
			"users":   userCount,
			"posts":   postCount,
			"campus":  campus,
		})
	}
}
