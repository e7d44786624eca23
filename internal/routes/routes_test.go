package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dukapos/dukapos/internal/auth"
	"github.com/dukapos/dukapos/internal/config"
	"github.com/dukapos/dukapos/internal/identity"
	"github.com/dukapos/dukapos/internal/logging"
	"github.com/dukapos/dukapos/internal/web"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: web.ErrorHandler})
	cfg := config.Config{
		AppName:        "DukaPOS",
		AppEnv:         "development",
		JWTSecret:      "test-secret",
		AccessTokenTTL: time.Hour,
	}
	if err := Setup(app, Deps{Cfg: cfg, Logger: logging.Discard()}); err != nil {
		t.Fatalf("setup routes: %v", err)
	}
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test %s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var decoded map[string]any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("decode %s: %v", string(raw), err)
		}
	}
	return resp.StatusCode, decoded
}

func registerUser(t *testing.T, app *fiber.App) map[string]any {
	t.Helper()
	status, body := doJSON(t, app, fiber.MethodPost, "/api/v1/users", "", fiber.Map{
		"email":    "jane@duka.shop",
		"username": "jane",
		"password": "s3cret",
		"phone":    "+254700000001",
	})
	if status != fiber.StatusCreated {
		t.Fatalf("register: expected 201, got %d (%v)", status, body)
	}
	return body
}

func login(t *testing.T, app *fiber.App) string {
	t.Helper()
	status, body := doJSON(t, app, fiber.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"email":    "jane@duka.shop",
		"password": "s3cret",
	})
	if status != fiber.StatusOK {
		t.Fatalf("login: expected 200, got %d (%v)", status, body)
	}
	data, _ := body["data"].(map[string]any)
	token, _ := data["accessToken"].(string)
	if token == "" {
		t.Fatalf("login response has no accessToken: %v", body)
	}
	return token
}

func TestRegisterDoesNotLeakPassword(t *testing.T) {
	app := newTestApp(t)
	body := registerUser(t, app)

	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data envelope, got %v", body)
	}
	for _, key := range []string{"password", "passwordHash"} {
		if _, present := data[key]; present {
			t.Fatalf("response leaks %s: %v", key, data)
		}
	}
	if data["email"] != "jane@duka.shop" {
		t.Fatalf("unexpected user payload: %v", data)
	}
}

func TestLoginReturnsSessionEnvelope(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app)
	token := login(t, app)

	claims, err := auth.VerifyToken(token, []byte("test-secret"))
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if claims.Email != "jane@duka.shop" {
		t.Fatalf("unexpected claims %+v", claims.Public)
	}
}

func TestLoginWrongCredentials(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app)

	for _, creds := range []fiber.Map{
		{"email": "jane@duka.shop", "password": "wrong"},
		{"email": "ghost@duka.shop", "password": "s3cret"},
	} {
		status, body := doJSON(t, app, fiber.MethodPost, "/api/v1/auth/login", "", creds)
		if status != fiber.StatusForbidden {
			t.Fatalf("expected 403, got %d (%v)", status, body)
		}
		if body["error"] != "Wrong credentials" {
			t.Fatalf("expected generic message, got %v", body)
		}
		if body["data"] != nil {
			t.Fatalf("expected null data, got %v", body)
		}
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app)

	status, body := doJSON(t, app, fiber.MethodGet, "/api/v1/users", "", nil)
	if status != fiber.StatusForbidden {
		t.Fatalf("expected 403 without token, got %d", status)
	}
	if body["error"] != "No token provided" {
		t.Fatalf("unexpected error %v", body)
	}

	expired, err := auth.IssueToken(identity.Public{ID: "u-1"}, []byte("test-secret"), auth.SignOptions{ExpiresIn: -time.Minute})
	if err != nil {
		t.Fatalf("issue expired token: %v", err)
	}
	status, body = doJSON(t, app, fiber.MethodGet, "/api/v1/users", expired, nil)
	if status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 with expired token, got %d", status)
	}
	if body["error"] != "Failed to authenticate token" {
		t.Fatalf("unexpected error %v", body)
	}
}

func TestAuthorizedCrudFlow(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app)
	token := login(t, app)

	status, body := doJSON(t, app, fiber.MethodGet, "/api/v1/users", token, nil)
	if status != fiber.StatusOK {
		t.Fatalf("list users: expected 200, got %d (%v)", status, body)
	}

	status, body = doJSON(t, app, fiber.MethodPost, "/api/v1/brands", token, fiber.Map{
		"name": "Acme", "slug": "acme",
	})
	if status != fiber.StatusCreated {
		t.Fatalf("create brand: expected 201, got %d (%v)", status, body)
	}

	status, body = doJSON(t, app, fiber.MethodPost, "/api/v1/brands", token, fiber.Map{
		"name": "Acme", "slug": "acme",
	})
	if status != fiber.StatusConflict {
		t.Fatalf("duplicate brand: expected 409, got %d (%v)", status, body)
	}
	if body["error"] != "Brand Acme already exists" {
		t.Fatalf("unexpected conflict message %v", body)
	}

	// Empty product list answers 404, empty shop list answers 200.
	status, _ = doJSON(t, app, fiber.MethodGet, "/api/v1/products", token, nil)
	if status != fiber.StatusNotFound {
		t.Fatalf("empty products: expected 404, got %d", status)
	}
	status, body = doJSON(t, app, fiber.MethodGet, "/api/v1/shops", token, nil)
	if status != fiber.StatusOK {
		t.Fatalf("empty shops: expected 200, got %d", status)
	}
	if data, ok := body["data"].([]any); !ok || len(data) != 0 {
		t.Fatalf("expected empty shop array, got %v", body)
	}
}

func TestHealthEndpointIsPublic(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/healthz", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}
