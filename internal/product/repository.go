package product

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when no product matches the lookup.
var ErrNotFound = errors.New("product not found")

// Repository persists products.
type Repository interface {
	Create(ctx context.Context, product Product) error
	FindByID(ctx context.Context, id string) (Product, error)
	FindBySlug(ctx context.Context, slug string) (Product, error)
	FindBySKU(ctx context.Context, sku string) (Product, error)
	FindByProductCode(ctx context.Context, code string) (Product, error)
	FindByBarCode(ctx context.Context, barCode string) (Product, error)
	List(ctx context.Context) ([]Product, error)
	Update(ctx context.Context, product Product) error
	Delete(ctx context.Context, id string) error
}

const productColumns = `id, name, description, batch_number, bar_code, image, tax, alert_qty,
    stock_qty, price, buying_price, sku, product_code, slug, supplier_id, unit_id, brand_id,
    category_id, expiry_date, created_at, updated_at`

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed product repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new product. Empty bar codes and reference ids are stored
// as NULL so the bar_code uniqueness constraint does not collide.
func (r *PostgresRepository) Create(ctx context.Context, product Product) error {
	productID, err := uuid.Parse(product.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO products (`+productColumns+`)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`,
		productID, product.Name, product.Description, product.BatchNumber, nullable(product.BarCode),
		product.Image, product.Tax, product.AlertQty, product.StockQty, product.Price,
		product.BuyingPrice, product.SKU, product.ProductCode, product.Slug,
		nullableID(product.SupplierID), nullableID(product.UnitID), nullableID(product.BrandID),
		nullableID(product.CategoryID), product.ExpiryDate, product.CreatedAt.UTC(), product.UpdatedAt.UTC())
	return err
}

// FindByID fetches a product by identifier.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (Product, error) {
	productID, err := uuid.Parse(id)
	if err != nil {
		return Product{}, ErrNotFound
	}
	return r.findOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, productID)
}

// FindBySlug fetches a product by slug.
func (r *PostgresRepository) FindBySlug(ctx context.Context, slug string) (Product, error) {
	return r.findOne(ctx, `SELECT `+productColumns+` FROM products WHERE slug = $1`, slug)
}

// FindBySKU fetches a product by stock keeping unit.
func (r *PostgresRepository) FindBySKU(ctx context.Context, sku string) (Product, error) {
	return r.findOne(ctx, `SELECT `+productColumns+` FROM products WHERE sku = $1`, sku)
}

// FindByProductCode fetches a product by product code.
func (r *PostgresRepository) FindByProductCode(ctx context.Context, code string) (Product, error) {
	return r.findOne(ctx, `SELECT `+productColumns+` FROM products WHERE product_code = $1`, code)
}

// FindByBarCode fetches a product by bar code.
func (r *PostgresRepository) FindByBarCode(ctx context.Context, barCode string) (Product, error) {
	return r.findOne(ctx, `SELECT `+productColumns+` FROM products WHERE bar_code = $1`, barCode)
}

// List returns all products, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]Product, error) {
	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

// Update replaces all mutable fields of the product.
func (r *PostgresRepository) Update(ctx context.Context, product Product) error {
	productID, err := uuid.Parse(product.ID)
	if err != nil {
		return err
	}
	cmd, err := r.db.Exec(ctx, `UPDATE products SET name = $1, description = $2, batch_number = $3,
        bar_code = $4, image = $5, tax = $6, alert_qty = $7, stock_qty = $8, price = $9,
        buying_price = $10, sku = $11, product_code = $12, slug = $13, supplier_id = $14,
        unit_id = $15, brand_id = $16, category_id = $17, expiry_date = $18, updated_at = $19
        WHERE id = $20`,
		product.Name, product.Description, product.BatchNumber, nullable(product.BarCode),
		product.Image, product.Tax, product.AlertQty, product.StockQty, product.Price,
		product.BuyingPrice, product.SKU, product.ProductCode, product.Slug,
		nullableID(product.SupplierID), nullableID(product.UnitID), nullableID(product.BrandID),
		nullableID(product.CategoryID), product.ExpiryDate, product.UpdatedAt.UTC(), productID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the product record.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	productID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	cmd, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, productID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) findOne(ctx context.Context, query string, args ...any) (Product, error) {
	product, err := scanProduct(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, ErrNotFound
	}
	return product, err
}

func scanProduct(row pgx.Row) (Product, error) {
	var (
		id         uuid.UUID
		barCode    *string
		supplierID *uuid.UUID
		unitID     *uuid.UUID
		brandID    *uuid.UUID
		categoryID *uuid.UUID
		createdAt  time.Time
		updatedAt  time.Time
		product    Product
	)
	if err := row.Scan(&id, &product.Name, &product.Description, &product.BatchNumber, &barCode,
		&product.Image, &product.Tax, &product.AlertQty, &product.StockQty, &product.Price,
		&product.BuyingPrice, &product.SKU, &product.ProductCode, &product.Slug,
		&supplierID, &unitID, &brandID, &categoryID, &product.ExpiryDate,
		&createdAt, &updatedAt); err != nil {
		return Product{}, err
	}
	product.ID = id.String()
	if barCode != nil {
		product.BarCode = *barCode
	}
	if supplierID != nil {
		product.SupplierID = supplierID.String()
	}
	if unitID != nil {
		product.UnitID = unitID.String()
	}
	if brandID != nil {
		product.BrandID = brandID.String()
	}
	if categoryID != nil {
		product.CategoryID = categoryID.String()
	}
	product.CreatedAt = createdAt.UTC()
	product.UpdatedAt = updatedAt.UTC()
	return product, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullableID(s string) any {
	if s == "" {
		return nil
	}
	if id, err := uuid.Parse(s); err == nil {
		return id
	}
	return s
}
