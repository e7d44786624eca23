package supplier

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/dukapos/dukapos/internal/web"
)

// Handler exposes supplier CRUD endpoints.
type Handler struct {
	svc *Service
}

// NewHandler builds a supplier HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type createSupplierRequest struct {
	SupplierType       string  `json:"supplierType"`
	Name               string  `json:"name"`
	ContactPerson      string  `json:"contactPerson"`
	Phone              string  `json:"phone"`
	Email              string  `json:"email"`
	Location           string  `json:"location"`
	Country            string  `json:"country"`
	Website            string  `json:"website"`
	TaxPin             string  `json:"taxPin"`
	RegistrationNumber string  `json:"registrationNumber"`
	BankAccountNumber  string  `json:"bankAccountNumber"`
	BankName           string  `json:"bankName"`
	PaymentTerms       string  `json:"paymentTerms"`
	Logo               string  `json:"logo"`
	Rating             float64 `json:"rating"`
	Notes              string  `json:"notes"`
}

type updateSupplierRequest struct {
	SupplierType       *string  `json:"supplierType"`
	Name               *string  `json:"name"`
	ContactPerson      *string  `json:"contactPerson"`
	Phone              *string  `json:"phone"`
	Email              *string  `json:"email"`
	Location           *string  `json:"location"`
	Country            *string  `json:"country"`
	Website            *string  `json:"website"`
	TaxPin             *string  `json:"taxPin"`
	RegistrationNumber *string  `json:"registrationNumber"`
	BankAccountNumber  *string  `json:"bankAccountNumber"`
	BankName           *string  `json:"bankName"`
	PaymentTerms       *string  `json:"paymentTerms"`
	Logo               *string  `json:"logo"`
	Rating             *float64 `json:"rating"`
	Notes              *string  `json:"notes"`
}

// Create registers a new supplier.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req createSupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	supplier, err := h.svc.Create(c.UserContext(), CreateInput{
		SupplierType:       req.SupplierType,
		Name:               req.Name,
		ContactPerson:      req.ContactPerson,
		Phone:              req.Phone,
		Email:              req.Email,
		Location:           req.Location,
		Country:            req.Country,
		Website:            req.Website,
		TaxPin:             req.TaxPin,
		RegistrationNumber: req.RegistrationNumber,
		BankAccountNumber:  req.BankAccountNumber,
		BankName:           req.BankName,
		PaymentTerms:       req.PaymentTerms,
		Logo:               req.Logo,
		Rating:             req.Rating,
		Notes:              req.Notes,
	})
	if err != nil {
		return httpError(err)
	}
	return web.JSON(c, http.StatusCreated, supplier)
}

// List returns every supplier, newest first.
func (h *Handler) List(c *fiber.Ctx) error {
	suppliers, err := h.svc.List(c.UserContext())
	if err != nil {
		return httpError(err)
	}
	if len(suppliers) == 0 {
		return fiber.NewError(http.StatusNotFound, "No suppliers found")
	}
	return web.JSON(c, http.StatusOK, suppliers)
}

// Get returns a single supplier by id.
func (h *Handler) Get(c *fiber.Ctx) error {
	supplier, err := h.svc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return httpError(err)
	}
	return web.JSON(c, http.StatusOK, supplier)
}

// Update applies a partial update to a supplier.
func (h *Handler) Update(c *fiber.Ctx) error {
	var req updateSupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	supplier, err := h.svc.Update(c.UserContext(), c.Params("id"), UpdateInput{
		SupplierType:       req.SupplierType,
		Name:               req.Name,
		ContactPerson:      req.ContactPerson,
		Phone:              req.Phone,
		Email:              req.Email,
		Location:           req.Location,
		Country:            req.Country,
		Website:            req.Website,
		TaxPin:             req.TaxPin,
		RegistrationNumber: req.RegistrationNumber,
		BankAccountNumber:  req.BankAccountNumber,
		BankName:           req.BankName,
		PaymentTerms:       req.PaymentTerms,
		Logo:               req.Logo,
		Rating:             req.Rating,
		Notes:              req.Notes,
	})
	if err != nil {
		return httpError(err)
	}
	return web.JSON(c, http.StatusOK, supplier)
}

// Delete removes a supplier.
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
		return fiber.NewError(http.StatusNotFound, "Supplier not found")
	case errors.As(err, &ce):
		return fiber.NewError(http.StatusConflict, ce.Message)
	default:
		return fiber.NewError(http.StatusInternalServerError, "Internal server error")
	}
}
