package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dukapos/dukapos/internal/shop"
)

// RegisterShopRoutes wires the shop endpoints, including the attendants-by-shop
// projection.
func RegisterShopRoutes(r fiber.Router, h *shop.Handler) {
	r.Post("/shops", h.Create)
	r.Get("/shops", h.List)
	r.Get("/shops/:id", h.Get)
	r.Get("/attendants/shop/:id", h.Attendants)
}
