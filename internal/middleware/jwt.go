package middleware

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/dukapos/dukapos/internal/auth"
	"github.com/dukapos/dukapos/internal/config"
)

// Locals keys populated by JWTGuard for downstream handlers.
const (
	ClaimsKey = "claims"
	UserIDKey = "user_id"
)

// JWTGuard validates bearer access tokens on protected routes. A request
// without any token is a client omission (403); a token that fails signature
// or expiry checks is a 401; an absent signing secret is a server fault (500).
func JWTGuard(cfg config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return fiber.NewError(http.StatusForbidden, "No token provided")
		}

		if cfg.JWTSecret == "" {
			return fiber.NewError(http.StatusInternalServerError, "Internal server error")
		}

		claims, err := auth.VerifyToken(header, []byte(cfg.JWTSecret))
		if err != nil {
			return fiber.NewError(http.StatusUnauthorized, "Failed to authenticate token")
		}

		c.Locals(ClaimsKey, claims)
		c.Locals(UserIDKey, claims.Public.ID)
		return c.Next()
	}
}
