package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dukapos/dukapos/internal/identity"
)

// RegisterUserRoutes wires the protected user endpoints. User creation stays
// public and is registered separately.
func RegisterUserRoutes(r fiber.Router, h *identity.Handler) {
	r.Get("/users", h.List)
	r.Get("/users/:id", h.Get)
	r.Put("/users/:id", h.Update)
	r.Put("/users/:id/password", h.UpdatePassword)
	r.Delete("/users/:id", h.Delete)
	r.Get("/attendants", h.Attendants)
}
