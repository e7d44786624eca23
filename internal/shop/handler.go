package shop

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/dukapos/dukapos/internal/web"
)

// Handler exposes shop HTTP endpoints.
type Handler struct {
	svc *Service
}

// NewHandler builds a shop HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type createShopRequest struct {
	Name         string   `json:"name"`
	Slug         string   `json:"slug"`
	Location     string   `json:"location"`
	AdminID      string   `json:"adminId"`
	AttendantIDs []string `json:"attendantIds"`
}

// Create opens a new shop.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req createShopRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	shop, err := h.svc.Create(c.UserContext(), CreateInput{
		Name:         req.Name,
		Slug:         req.Slug,
		Location:     req.Location,
		AdminID:      req.AdminID,
		AttendantIDs: req.AttendantIDs,
	})
	if err != nil {
		return httpError(err, "")
	}
	return web.JSON(c, http.StatusCreated, shop)
}

// List returns every shop, newest first.
func (h *Handler) List(c *fiber.Ctx) error {
	shops, err := h.svc.List(c.UserContext())
	if err != nil {
		return httpError(err, "")
	}
	return web.JSON(c, http.StatusOK, shops)
}

// Get returns a single shop by id.
func (h *Handler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	shop, err := h.svc.Get(c.UserContext(), id)
	if err != nil {
		return httpError(err, id)
	}
	return web.JSON(c, http.StatusOK, shop)
}

// Attendants lists the contacts of the users attending the shop.
func (h *Handler) Attendants(c *fiber.Ctx) error {
	id := c.Params("id")
	contacts, err := h.svc.Attendants(c.UserContext(), id)
	if err != nil {
		return httpError(err, id)
	}
	return web.JSON(c, http.StatusOK, contacts)
}

func httpError(err error, id string) error {
	var ce *ConflictError
	switch {
	case errors.Is(err, ErrNotFound):
		return fiber.NewError(http.StatusNotFound, fmt.Sprintf("Shop of ID %s not found", id))
	case errors.As(err, &ce):
		return fiber.NewError(http.StatusConflict, ce.Message)
	default:
		return fiber.NewError(http.StatusInternalServerError, "Internal server error")
	}
}
