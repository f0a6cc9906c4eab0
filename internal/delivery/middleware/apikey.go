package middleware

import (
	"github.com/gofiber/fiber/v2"

	authuc "github.com/riolentius/customer-accounts/internal/usecase/auth"
)

const APIKeyHeader = "X-Api-Key"

type APIKeyConfig struct {
	// Hash is a bcrypt hash of a static key.
	Hash string
	// Secret verifies HS256 signed keys.
	Secret string
}

// RequireAPIKey accepts a request whose X-Api-Key matches the static hash or
// verifies as a signed key. With neither configured every request passes.
func RequireAPIKey(cfg APIKeyConfig) fiber.Handler {
	if cfg.Hash == "" && cfg.Secret == "" {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	return func(c *fiber.Ctx) error {
		key := c.Get(APIKeyHeader)
		if key == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing "+APIKeyHeader+" header")
		}

		if cfg.Hash != "" && authuc.MatchAPIKey(cfg.Hash, key) {
			c.Locals("api_key_subject", "static")
			return c.Next()
		}
		if cfg.Secret != "" {
			if sub, err := authuc.VerifyAPIKey(cfg.Secret, key); err == nil {
				c.Locals("api_key_subject", sub)
				return c.Next()
			}
		}

		return fiber.NewError(fiber.StatusUnauthorized, "invalid api key")
	}
}
