package catalog

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/dukapos/dukapos/internal/web"
)

// Handler exposes CRUD endpoints for one reference collection. The same
// handler type serves /brands, /categories and /units, bound to its kind at
// construction.
type Handler struct {
	svc  *Service
	kind Kind
}

// NewHandler builds a handler bound to the given kind.
func NewHandler(svc *Service, kind Kind) *Handler {
	return &Handler{svc: svc, kind: kind}
}

type createEntryRequest struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Slug         string `json:"slug"`
}

type updateEntryRequest struct {
	Name         *string `json:"name"`
	Abbreviation *string `json:"abbreviation"`
	Slug         *string `json:"slug"`
}

// Create adds a new entry.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req createEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	entry, err := h.svc.Create(c.UserContext(), h.kind, CreateInput{
		Name:         req.Name,
		Abbreviation: req.Abbreviation,
		Slug:         req.Slug,
	})
	if err != nil {
		return h.httpError(err)
	}
	return web.JSON(c, http.StatusCreated, entry)
}

// List returns every entry of the collection, newest first.
func (h *Handler) List(c *fiber.Ctx) error {
	entries, err := h.svc.List(c.UserContext(), h.kind)
	if err != nil {
		return h.httpError(err)
	}
	return web.JSON(c, http.StatusOK, entries)
}

// Get returns a single entry by id.
func (h *Handler) Get(c *fiber.Ctx) error {
	entry, err := h.svc.Get(c.UserContext(), h.kind, c.Params("id"))
	if err != nil {
		return h.httpError(err)
	}
	return web.JSON(c, http.StatusOK, entry)
}

// Update applies a partial update to an entry.
func (h *Handler) Update(c *fiber.Ctx) error {
	var req updateEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	entry, err := h.svc.Update(c.UserContext(), h.kind, c.Params("id"), UpdateInput{
		Name:         req.Name,
		Abbreviation: req.Abbreviation,
		Slug:         req.Slug,
	})
	if err != nil {
		return h.httpError(err)
	}
	return web.JSON(c, http.StatusOK, entry)
}

// Delete removes an entry.
func (h *Handler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.UserContext(), h.kind, c.Params("id")); err != nil {
		return h.httpError(err)
	}
	return web.JSON(c, http.StatusOK, nil)
}

func (h *Handler) httpError(err error) error {
	var ce *ConflictError
	switch {
	case errors.Is(err, ErrNotFound):
		return fiber.NewError(http.StatusNotFound, fmt.Sprintf("%s not found", h.kind.Label()))
	case errors.As(err, &ce):
		return fiber.NewError(http.StatusConflict, ce.Message)
	default:
		return fiber.NewError(http.StatusInternalServerError, "Internal server error")
	}
}
