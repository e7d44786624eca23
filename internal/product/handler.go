package product

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dukapos/dukapos/internal/web"
)

// Handler exposes the product endpoints.
type Handler struct {
	svc *Service
}

// NewHandler builds a product handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type createProductRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	BatchNumber string     `json:"batchNumber"`
	BarCode     string     `json:"barCode"`
	Image       string     `json:"image"`
	Tax         float64    `json:"tax"`
	AlertQty    int        `json:"alertQty"`
	StockQty    int        `json:"stockQty"`
	Price       float64    `json:"price"`
	BuyingPrice float64    `json:"buyingPrice"`
	SKU         string     `json:"sku"`
	ProductCode string     `json:"productCode"`
	Slug        string     `json:"slug"`
	SupplierID  string     `json:"supplierId"`
	UnitID      string     `json:"unitId"`
	BrandID     string     `json:"brandId"`
	CategoryID  string     `json:"categoryId"`
	ExpiryDate  *time.Time `json:"expiryDate"`
}

type updateProductRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	BatchNumber *string    `json:"batchNumber"`
	BarCode     *string    `json:"barCode"`
	Image       *string    `json:"image"`
	Tax         *float64   `json:"tax"`
	AlertQty    *int       `json:"alertQty"`
	StockQty    *int       `json:"stockQty"`
	Price       *float64   `json:"price"`
	BuyingPrice *float64   `json:"buyingPrice"`
	SKU         *string    `json:"sku"`
	ProductCode *string    `json:"productCode"`
	Slug        *string    `json:"slug"`
	SupplierID  *string    `json:"supplierId"`
	UnitID      *string    `json:"unitId"`
	BrandID     *string    `json:"brandId"`
	CategoryID  *string    `json:"categoryId"`
	ExpiryDate  *time.Time `json:"expiryDate"`
}

// Create registers a new product.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req createProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	product, err := h.svc.Create(c.UserContext(), CreateInput{
		Name:        req.Name,
		Description: req.Description,
		BatchNumber: req.BatchNumber,
		BarCode:     req.BarCode,
		Image:       req.Image,
		Tax:         req.Tax,
		AlertQty:    req.AlertQty,
		StockQty:    req.StockQty,
		Price:       req.Price,
		BuyingPrice: req.BuyingPrice,
		SKU:         req.SKU,
		ProductCode: req.ProductCode,
		Slug:        req.Slug,
		SupplierID:  req.SupplierID,
		UnitID:      req.UnitID,
		BrandID:     req.BrandID,
		CategoryID:  req.CategoryID,
		ExpiryDate:  req.ExpiryDate,
	})
	if err != nil {
		return httpError(err)
	}
	return web.JSON(c, http.StatusCreated, product)
}

// List returns all products, newest first.
func (h *Handler) List(c *fiber.Ctx) error {
	products, err := h.svc.List(c.UserContext())
	if err != nil {
		return httpError(err)
	}
	if len(products) == 0 {
		return fiber.NewError(http.StatusNotFound, "No Products found")
	}
	return web.JSON(c, http.StatusOK, products)
}

// Get returns a single product by id.
func (h *Handler) Get(c *fiber.Ctx) error {
	product, err := h.svc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return httpError(err)
	}
	return web.JSON(c, http.StatusOK, product)
}

// Update applies a partial update to a product.
func (h *Handler) Update(c *fiber.Ctx) error {
	var req updateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	product, err := h.svc.Update(c.UserContext(), c.Params("id"), UpdateInput{
		Name:        req.Name,
		Description: req.Description,
		BatchNumber: req.BatchNumber,
		BarCode:     req.BarCode,
		Image:       req.Image,
		Tax:         req.Tax,
		AlertQty:    req.AlertQty,
		StockQty:    req.StockQty,
		Price:       req.Price,
		BuyingPrice: req.BuyingPrice,
		SKU:         req.SKU,
		ProductCode: req.ProductCode,
		Slug:        req.Slug,
		SupplierID:  req.SupplierID,
		UnitID:      req.UnitID,
		BrandID:     req.BrandID,
		CategoryID:  req.CategoryID,
		ExpiryDate:  req.ExpiryDate,
	})
	if err != nil {
		return httpError(err)
	}
	return web.JSON(c, http.StatusOK, product)
}

// Delete removes a product.
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
		return fiber.NewError(http.StatusNotFound, "Product not found")
	case errors.As(err, &ce):
		return fiber.NewError(http.StatusConflict, ce.Message)
	default:
		return fiber.NewError(http.StatusInternalServerError, "Internal server error")
	}
}
