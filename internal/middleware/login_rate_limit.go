package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// LoginRateLimit caps login attempts per identifier (or client IP when the
// body names none) using Redis. Without a cache it is a no-op, and cache
// errors fail open: a degraded Redis must not lock everyone out.
func LoginRateLimit(cache *redis.Client, maxPerMin int) fiber.Handler {
	if maxPerMin <= 0 {
		maxPerMin = 5
	}
	return func(c *fiber.Ctx) error {
		if cache == nil {
			return c.Next()
		}

		var req struct {
			Email    string `json:"email"`
			Username string `json:"username"`
		}
		_ = c.BodyParser(&req)

		ident := strings.TrimSpace(req.Email)
		if ident == "" {
			ident = strings.TrimSpace(req.Username)
		}
		if ident == "" {
			ident = c.IP()
		}

		key := "rl:login:" + ident
		cnt, err := cache.Incr(c.UserContext(), key).Result()
		if err != nil {
			return c.Next()
		}
		if cnt == 1 {
			cache.Expire(c.UserContext(), key, time.Minute)
		}
		if cnt > int64(maxPerMin) {
			return fiber.NewError(http.StatusTooManyRequests, "Too many login attempts, try again later")
		}
		return c.Next()
	}
}
