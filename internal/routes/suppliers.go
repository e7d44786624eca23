package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dukapos/dukapos/internal/supplier"
)

// RegisterSupplierRoutes wires the supplier endpoints.
func RegisterSupplierRoutes(r fiber.Router, h *supplier.Handler) {
	r.Post("/suppliers", h.Create)
	r.Get("/suppliers", h.List)
	r.Get("/suppliers/:id", h.Get)
	r.Put("/suppliers/:id", h.Update)
	r.Delete("/suppliers/:id", h.Delete)
}
