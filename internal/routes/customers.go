package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dukapos/dukapos/internal/customer"
)

// RegisterCustomerRoutes wires the customer endpoints.
func RegisterCustomerRoutes(r fiber.Router, h *customer.Handler) {
	r.Post("/customers", h.Create)
	r.Get("/customers", h.List)
	r.Get("/customers/:id", h.Get)
	r.Put("/customers/:id", h.Update)
	r.Delete("/customers/:id", h.Delete)
}
