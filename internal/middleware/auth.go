package middleware

import (
	"log"
	"strings"

	"todo/internal/auth"

	"github.com/gofiber/fiber/v2"
)

// TokenVerifier validates session tokens.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// AuthRequired is a Fiber middleware that admits only requests carrying a
// valid bearer token. The verified identity is attached to the request's user
// context; see auth.IdentityFrom.
func AuthRequired(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Expected format: "Bearer <token>"
		parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return unauthorized(c)
		}

		claims, err := verifier.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			log.Printf("Token verification failed for %s %s: %v", c.Method(), c.Path(), err)
			return unauthorized(c)
		}

		c.SetUserContext(auth.WithIdentity(c.UserContext(), claims.Identity()))
		return c.Next()
	}
}

// unauthorized does not say why, so expired and forged tokens look alike.
func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Unauthorized",
	})
}
