package identity

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dukapos/dukapos/internal/web"
)

// Handler exposes user CRUD endpoints.
type Handler struct {
	svc *Service
}

// NewHandler builds a user HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type createUserRequest struct {
	Email     string     `json:"email"`
	Username  string     `json:"username"`
	Password  string     `json:"password"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Phone     string     `json:"phone"`
	DOB       *time.Time `json:"dob"`
	Gender    string     `json:"gender"`
	Image     string     `json:"image"`
	Role      Role       `json:"role"`
}

type updateUserRequest struct {
	Email     *string    `json:"email"`
	Username  *string    `json:"username"`
	Password  *string    `json:"password"`
	FirstName *string    `json:"firstName"`
	LastName  *string    `json:"lastName"`
	Phone     *string    `json:"phone"`
	DOB       *time.Time `json:"dob"`
	Gender    *string    `json:"gender"`
	Image     *string    `json:"image"`
	Role      *Role      `json:"role"`
}

// Create registers a new user.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	user, err := h.svc.Create(c.UserContext(), CreateInput{
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		DOB:       req.DOB,
		Gender:    req.Gender,
		Image:     req.Image,
		Role:      req.Role,
	})
	if err != nil {
		return httpError(err)
	}
	return web.JSON(c, http.StatusCreated, user)
}

// List returns every user, newest first.
func (h *Handler) List(c *fiber.Ctx) error {
	users, err := h.svc.List(c.UserContext())
	if err != nil {
		return httpError(err)
	}
	if len(users) == 0 {
		return fiber.NewError(http.StatusNotFound, "No users found")
	}
	return web.JSON(c, http.StatusOK, users)
}

// Get returns a single user by id.
func (h *Handler) Get(c *fiber.Ctx) error {
	user, err := h.svc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return httpError(err)
	}
	return web.JSON(c, http.StatusOK, user)
}

// Update applies a partial update to a user.
func (h *Handler) Update(c *fiber.Ctx) error {
	var req updateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	user, err := h.svc.Update(c.UserContext(), c.Params("id"), UpdateInput{
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		DOB:       req.DOB,
		Gender:    req.Gender,
		Image:     req.Image,
		Role:      req.Role,
	})
	if err != nil {
		return httpError(err)
	}
	return web.JSON(c, http.StatusOK, user)
}

// UpdatePassword replaces a user's password.
func (h *Handler) UpdatePassword(c *fiber.Ctx) error {
	var req struct {
		NewPassword string `json:"newPassword"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	user, err := h.svc.UpdatePassword(c.UserContext(), c.Params("id"), req.NewPassword)
	if err != nil {
		return httpError(err)
	}
	return web.JSON(c, http.StatusOK, user)
}

// Delete removes a user.
func (h *Handler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return httpError(err)
	}
	return web.JSON(c, http.StatusOK, nil)
}

// Attendants lists users holding the attendant role.
func (h *Handler) Attendants(c *fiber.Ctx) error {
	users, err := h.svc.Attendants(c.UserContext())
	if err != nil {
		return httpError(err)
	}
	if len(users) == 0 {
		return fiber.NewError(http.StatusNotFound, "No attendants found")
	}
	return web.JSON(c, http.StatusOK, users)
}

func httpError(err error) error {
	var ce *ConflictError
	switch {
	case errors.Is(err, ErrNotFound):
		return fiber.NewError(http.StatusNotFound, "User not found")
	case errors.As(err, &ce):
		return fiber.NewError(http.StatusConflict, ce.Message)
	default:
		return fiber.NewError(http.StatusInternalServerError, "Internal server error")
	}
}
