package auth

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/dukapos/dukapos/internal/web"
)

// Handler exposes the login endpoint.
type Handler struct {
	svc *Service
}

// NewHandler builds an auth HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type loginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates a user and returns the stripped record with its access
// token. Unknown identifiers and wrong passwords share one response.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	session, err := h.svc.Authenticate(c.UserContext(), Credentials{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, ErrWrongCredentials) {
			return fiber.NewError(http.StatusForbidden, "Wrong credentials")
		}
		return fiber.NewError(http.StatusInternalServerError, "Internal server error")
	}

	return web.JSON(c, http.StatusOK, session)
}
