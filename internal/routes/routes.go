package routes

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/dukapos/dukapos/internal/auth"
	"github.com/dukapos/dukapos/internal/catalog"
	"github.com/dukapos/dukapos/internal/config"
	"github.com/dukapos/dukapos/internal/customer"
	"github.com/dukapos/dukapos/internal/identity"
	"github.com/dukapos/dukapos/internal/middleware"
	"github.com/dukapos/dukapos/internal/product"
	"github.com/dukapos/dukapos/internal/shop"
	"github.com/dukapos/dukapos/internal/supplier"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes. With a nil DB the
// in-memory repositories are used, which keeps development and tests free of
// external services.
func Setup(app *fiber.App, d Deps) error {
	// Enforce DB/Redis presence outside of dev, even though main also checks.
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	RegisterHealthRoutes(app, d)

	// Repositories
	var (
		userRepo     identity.Repository
		shopRepo     shop.Repository
		customerRepo customer.Repository
		supplierRepo supplier.Repository
		productRepo  product.Repository
		catalogRepo  catalog.Repository
	)
	if d.DB != nil {
		userRepo = identity.NewPostgresRepository(d.DB)
		shopRepo = shop.NewPostgresRepository(d.DB)
		customerRepo = customer.NewPostgresRepository(d.DB)
		supplierRepo = supplier.NewPostgresRepository(d.DB)
		productRepo = product.NewPostgresRepository(d.DB)
		catalogRepo = catalog.NewPostgresRepository(d.DB)
	} else {
		userRepo = identity.NewMemoryRepository()
		shopRepo = shop.NewMemoryRepository()
		customerRepo = customer.NewMemoryRepository()
		supplierRepo = supplier.NewMemoryRepository()
		productRepo = product.NewMemoryRepository()
		catalogRepo = catalog.NewMemoryRepository()
	}

	// Services and handlers
	userSvc := identity.NewService(userRepo)
	authSvc := auth.NewService(d.Cfg, userRepo)
	shopSvc := shop.NewService(shopRepo, userSvc)
	customerSvc := customer.NewService(customerRepo)
	supplierSvc := supplier.NewService(supplierRepo)
	productSvc := product.NewService(productRepo)
	catalogSvc := catalog.NewService(catalogRepo)

	userHandler := identity.NewHandler(userSvc)
	authHandler := auth.NewHandler(authSvc)
	shopHandler := shop.NewHandler(shopSvc)
	customerHandler := customer.NewHandler(customerSvc)
	supplierHandler := supplier.NewHandler(supplierSvc)
	productHandler := product.NewHandler(productSvc)

	api := app.Group("/api/v1")

	// Public routes: login and user registration.
	rateLimiter := middleware.LoginRateLimit(d.Cache, 5)
	RegisterAuthRoutes(api, authHandler, rateLimiter)
	api.Post("/users", userHandler.Create)

	// Everything else requires a valid token.
	protected := api.Group("", middleware.JWTGuard(d.Cfg))
	RegisterUserRoutes(protected, userHandler)
	RegisterShopRoutes(protected, shopHandler)
	RegisterCustomerRoutes(protected, customerHandler)
	RegisterSupplierRoutes(protected, supplierHandler)
	RegisterProductRoutes(protected, productHandler)
	RegisterCatalogRoutes(protected, catalogSvc)

	return nil
}
