package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dukapos/dukapos/internal/catalog"
)

// RegisterCatalogRoutes wires the brand, category and unit endpoints. One
// handler type serves all three collections, bound per kind.
func RegisterCatalogRoutes(r fiber.Router, svc *catalog.Service) {
	register := func(prefix string, kind catalog.Kind) {
		h := catalog.NewHandler(svc, kind)
		r.Post(prefix, h.Create)
		r.Get(prefix, h.List)
		r.Get(prefix+"/:id", h.Get)
		r.Put(prefix+"/:id", h.Update)
		r.Delete(prefix+"/:id", h.Delete)
	}
	register("/brands", catalog.KindBrand)
	register("/categories", catalog.KindCategory)
	register("/units", catalog.KindUnit)
}
