package product

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ConflictError reports a uniqueness violation on a product field.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func conflictf(format string, args ...any) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// Service manages the product lifecycle.
type Service struct {
	repo Repository
}

// NewService creates a new product service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput captures the data required to register a product.
type CreateInput struct {
	Name        string
	Description string
	BatchNumber string
	BarCode     string
	Image       string
	Tax         float64
	AlertQty    int
	StockQty    int
	Price       float64
	BuyingPrice float64
	SKU         string
	ProductCode string
	Slug        string
	SupplierID  string
	UnitID      string
	BrandID     string
	CategoryID  string
	ExpiryDate  *time.Time
}

// UpdateInput carries the optional fields of a product update.
type UpdateInput struct {
	Name        *string
	Description *string
	BatchNumber *string
	BarCode     *string
	Image       *string
	Tax         *float64
	AlertQty    *int
	StockQty    *int
	Price       *float64
	BuyingPrice *float64
	SKU         *string
	ProductCode *string
	Slug        *string
	SupplierID  *string
	UnitID      *string
	BrandID     *string
	CategoryID  *string
	ExpiryDate  *time.Time
}

// Create registers a product after checking slug, SKU, product code and, when
// provided, bar code uniqueness.
func (s *Service) Create(ctx context.Context, in CreateInput) (Product, error) {
	if err := s.ensureFree(ctx, in.Slug, in.SKU, in.ProductCode, in.BarCode, ""); err != nil {
		return Product{}, err
	}

	now := time.Now().UTC()
	product := Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		BatchNumber: in.BatchNumber,
		BarCode:     in.BarCode,
		Image:       in.Image,
		Tax:         in.Tax,
		AlertQty:    in.AlertQty,
		StockQty:    in.StockQty,
		Price:       in.Price,
		BuyingPrice: in.BuyingPrice,
		SKU:         in.SKU,
		ProductCode: in.ProductCode,
		Slug:        in.Slug,
		SupplierID:  in.SupplierID,
		UnitID:      in.UnitID,
		BrandID:     in.BrandID,
		CategoryID:  in.CategoryID,
		ExpiryDate:  in.ExpiryDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return Product{}, err
	}
	return product, nil
}

// Get fetches a single product.
func (s *Service) Get(ctx context.Context, id string) (Product, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns all products, newest first.
func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

// Update applies the provided fields, re-checking uniqueness for any
// identifier that actually changes.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Product{}, err
	}

	var slug, sku, code, barCode string
	if in.Slug != nil && *in.Slug != product.Slug {
		slug = *in.Slug
	}
	if in.SKU != nil && *in.SKU != product.SKU {
		sku = *in.SKU
	}
	if in.ProductCode != nil && *in.ProductCode != product.ProductCode {
		code = *in.ProductCode
	}
	if in.BarCode != nil && *in.BarCode != product.BarCode {
		barCode = *in.BarCode
	}
	if err := s.ensureFree(ctx, slug, sku, code, barCode, product.ID); err != nil {
		return Product{}, err
	}

	if slug != "" {
		product.Slug = slug
	}
	if sku != "" {
		product.SKU = sku
	}
	if code != "" {
		product.ProductCode = code
	}
	if in.BarCode != nil {
		product.BarCode = *in.BarCode
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.BatchNumber != nil {
		product.BatchNumber = *in.BatchNumber
	}
	if in.Image != nil {
		product.Image = *in.Image
	}
	if in.Tax != nil {
		product.Tax = *in.Tax
	}
	if in.AlertQty != nil {
		product.AlertQty = *in.AlertQty
	}
	if in.StockQty != nil {
		product.StockQty = *in.StockQty
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.BuyingPrice != nil {
		product.BuyingPrice = *in.BuyingPrice
	}
	if in.SupplierID != nil {
		product.SupplierID = *in.SupplierID
	}
	if in.UnitID != nil {
		product.UnitID = *in.UnitID
	}
	if in.BrandID != nil {
		product.BrandID = *in.BrandID
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.ExpiryDate != nil {
		product.ExpiryDate = in.ExpiryDate
	}
	product.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, product); err != nil {
		return Product{}, err
	}
	return product, nil
}

// Delete removes a product.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) ensureFree(ctx context.Context, slug, sku, code, barCode, exceptID string) error {
	if slug != "" {
		if other, err := s.repo.FindBySlug(ctx, slug); err == nil && other.ID != exceptID {
			return conflictf("Product with slug %s already exists", slug)
		} else if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
	}
	if sku != "" {
		if other, err := s.repo.FindBySKU(ctx, sku); err == nil && other.ID != exceptID {
			return conflictf("Product with SKU %s already exists", sku)
		} else if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
	}
	if code != "" {
		if other, err := s.repo.FindByProductCode(ctx, code); err == nil && other.ID != exceptID {
			return conflictf("Product with product code %s already exists", code)
		} else if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
	}
	if barCode != "" {
		if other, err := s.repo.FindByBarCode(ctx, barCode); err == nil && other.ID != exceptID {
			return conflictf("Product with bar code %s already exists", barCode)
		} else if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
	}
	return nil
}
