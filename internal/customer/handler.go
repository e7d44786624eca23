package customer

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dukapos/dukapos/internal/web"
)

// Handler exposes customer CRUD endpoints.
type Handler struct {
	svc *Service
}

// NewHandler builds a customer HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type createCustomerRequest struct {
	CustomerType   string     `json:"customerType"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Phone          string     `json:"phone"`
	Gender         string     `json:"gender"`
	MaxCreditLimit float64    `json:"maxCreditLimit"`
	MaxCreditDays  int        `json:"maxCreditDays"`
	TaxPin         string     `json:"taxPin"`
	DOB            *time.Time `json:"dob"`
	Email          string     `json:"email"`
	NationalID     string     `json:"nationalID"`
	Country        string     `json:"country"`
	Location       string     `json:"location"`
}

type updateCustomerRequest struct {
	CustomerType   *string    `json:"customerType"`
	FirstName      *string    `json:"firstName"`
	LastName       *string    `json:"lastName"`
	Phone          *string    `json:"phone"`
	Gender         *string    `json:"gender"`
	MaxCreditLimit *float64   `json:"maxCreditLimit"`
	MaxCreditDays  *int       `json:"maxCreditDays"`
	TaxPin         *string    `json:"taxPin"`
	DOB            *time.Time `json:"dob"`
	Email          *string    `json:"email"`
	NationalID     *string    `json:"nationalID"`
	Country        *string    `json:"country"`
	Location       *string    `json:"location"`
}

// Create registers a new customer.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req createCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	customer, err := h.svc.Create(c.UserContext(), CreateInput{
		CustomerType:   req.CustomerType,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		Gender:         req.Gender,
		MaxCreditLimit: req.MaxCreditLimit,
		MaxCreditDays:  req.MaxCreditDays,
		TaxPin:         req.TaxPin,
		DOB:            req.DOB,
		Email:          req.Email,
		NationalID:     req.NationalID,
		Country:        req.Country,
		Location:       req.Location,
	})
	if err != nil {
		return httpError(err)
	}
	return web.JSON(c, http.StatusCreated, customer)
}

// List returns every customer, newest first.
func (h *Handler) List(c *fiber.Ctx) error {
	customers, err := h.svc.List(c.UserContext())
	if err != nil {
		return httpError(err)
	}
	if len(customers) == 0 {
		return fiber.NewError(http.StatusNotFound, "No customers found")
	}
	return web.JSON(c, http.StatusOK, customers)
}

// Get returns a single customer by id.
func (h *Handler) Get(c *fiber.Ctx) error {
	customer, err := h.svc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return httpError(err)
	}
	return web.JSON(c, http.StatusOK, customer)
}

// Update applies a partial update to a customer.
func (h *Handler) Update(c *fiber.Ctx) error {
	var req updateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	customer, err := h.svc.Update(c.UserContext(), c.Params("id"), UpdateInput{
		CustomerType:   req.CustomerType,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		Gender:         req.Gender,
		MaxCreditLimit: req.MaxCreditLimit,
		MaxCreditDays:  req.MaxCreditDays,
		TaxPin:         req.TaxPin,
		DOB:            req.DOB,
		Email:          req.Email,
		NationalID:     req.NationalID,
		Country:        req.Country,
		Location:       req.Location,
	})
	if err != nil {
		return httpError(err)
	}
	return web.JSON(c, http.StatusOK, customer)
}

// Delete removes a customer.
func (h *Handler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return httpError(err)
	}
	return web.JSON(c, http.StatusOK, nil)
}

func httpError(err error) error {
	var ce *ConflictError
	switch {
	case errors.Is(err, ErrNotFound):
		return fiber.NewError(http.StatusNotFound, "Customer not found")
	case errors.As(err, &ce):
		return fiber.NewError(http.StatusConflict, ce.Message)
	default:
		return fiber.NewError(http.StatusInternalServerError, "Internal server error")
	}
}
