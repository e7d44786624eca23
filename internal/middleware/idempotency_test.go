package middleware

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/dukapos/dukapos/internal/logging"
)

func setupIdempotentApp(t *testing.T) (*fiber.App, func()) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}

	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	app := fiber.New()
	app.Use(Idempotency(cache, time.Minute, logging.Discard()))

	calls := 0
	app.Post("/resource", func(c *fiber.Ctx) error {
		calls++
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"call": calls})
	})

	return app, func() {
		cache.Close()
		mr.Close()
	}
}

func TestIdempotencyHeaderIsOptional(t *testing.T) {
	app, cleanup := setupIdempotentApp(t)
	defer cleanup()

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(fiber.MethodPost, "/resource", strings.NewReader("{}"))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != fiber.StatusCreated {
			t.Fatalf("expected %d, got %d", fiber.StatusCreated, resp.StatusCode)
		}
	}
}

func TestIdempotencyReplaysStoredResponse(t *testing.T) {
	app, cleanup := setupIdempotentApp(t)
	defer cleanup()

	do := func() (int, string) {
		req := httptest.NewRequest(fiber.MethodPost, "/resource", strings.NewReader("{}"))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		req.Header.Set(idempotencyKeyHeader, "abc123")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		payload, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatalf("read body: %v", err)
		}
		resp.Body.Close()
		return resp.StatusCode, string(payload)
	}

	status1, body1 := do()
	if status1 != fiber.StatusCreated {
		t.Fatalf("expected %d, got %d", fiber.StatusCreated, status1)
	}

	status2, body2 := do()
	if status2 != fiber.StatusCreated {
		t.Fatalf("expected cached status %d, got %d", fiber.StatusCreated, status2)
	}
	if body1 != body2 {
		t.Fatalf("expected replayed body %s, got %s", body1, body2)
	}
}
