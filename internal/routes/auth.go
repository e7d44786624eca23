package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dukapos/dukapos/internal/auth"
)

// RegisterAuthRoutes wires the login endpoint behind the login rate limiter.
func RegisterAuthRoutes(r fiber.Router, h *auth.Handler, rateLimiter fiber.Handler) {
	r.Post("/auth/login", rateLimiter, h.Login)
}
