package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dukapos/dukapos/internal/product"
)

// RegisterProductRoutes wires the product endpoints.
func RegisterProductRoutes(r fiber.Router, h *product.Handler) {
	r.Post("/products", h.Create)
	r.Get("/products", h.List)
	r.Get("/products/:id", h.Get)
	r.Put("/products/:id", h.Update)
	r.Delete("/products/:id", h.Delete)
}
