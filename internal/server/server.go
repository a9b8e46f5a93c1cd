// Package server assembles the HTTP application from its collaborators.
package server

import (
	"context"
	"time"

	"todo/internal/auth"
	"todo/internal/handlers"
	"todo/internal/middleware"
	"todo/internal/repositories"
	"todo/internal/services"
	"todo/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Deps are the injected collaborators of the HTTP application.
type Deps struct {
	Users     repositories.UserRepository
	Items     repositories.ItemRepository
	Hasher    services.PasswordHasher
	Tokens    *auth.TokenManager
	Publisher services.EventPublisher // nil disables activity events
	// Ping reports store health for /health; nil means always healthy.
	Ping func(ctx context.Context) error
}

// Options tune the HTTP layer.
type Options struct {
	FrontendURL string
	// DisableRequestLog turns off the per-request access log.
	DisableRequestLog bool
}

// New builds the Fiber application with all routes registered.
func New(deps Deps, opts Options) *fiber.App {
	validate := validation.New()

	authService := services.NewAuthService(deps.Users, deps.Hasher, deps.Tokens, deps.Publisher)
	itemService := services.NewItemService(deps.Items, deps.Publisher)

	authHandler := handlers.NewAuthHandler(authService, validate)
	itemHandler := handlers.NewItemHandler(itemService, validate)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})

	// --- Middleware ---
	app.Use(recover.New())
	if !opts.DisableRequestLog {
		app.Use(logger.New())
	}
	if opts.FrontendURL != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     opts.FrontendURL,
			AllowCredentials: true,
			AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		}))
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello from your backend!")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		if deps.Ping != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := deps.Ping(ctx); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"status": "unhealthy",
					"time":   time.Now().Format(time.RFC3339),
				})
			}
		}
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Authentication routes (public)
	authHandler.RegisterRoutes(app)

	// Protected routes (require a valid session token)
	itemRoutes := app.Group("/items", middleware.AuthRequired(deps.Tokens))
	itemHandler.RegisterRoutes(itemRoutes)

	return app
}
