package supplier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when no supplier matches the lookup.
var ErrNotFound = errors.New("supplier not found")

// Repository persists suppliers.
type Repository interface {
	Create(ctx context.Context, supplier Supplier) error
	FindByID(ctx context.Context, id string) (Supplier, error)
	FindByPhone(ctx context.Context, phone string) (Supplier, error)
	FindByEmail(ctx context.Context, email string) (Supplier, error)
	FindByRegistrationNumber(ctx context.Context, registrationNumber string) (Supplier, error)
	List(ctx context.Context) ([]Supplier, error)
	Update(ctx context.Context, supplier Supplier) error
	Delete(ctx context.Context, id string) error
}

const supplierColumns = `id, supplier_type, name, contact_person, phone, email, location, country,
    website, tax_pin, registration_number, bank_account_number, bank_name, payment_terms, logo,
    rating, notes, created_at, updated_at`

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed supplier repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new supplier. Optional unique fields are stored as NULL
// when empty so the partial uniqueness constraints do not collide.
func (r *PostgresRepository) Create(ctx context.Context, supplier Supplier) error {
	supplierID, err := uuid.Parse(supplier.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO suppliers (`+supplierColumns+`)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		supplierID, supplier.SupplierType, supplier.Name, supplier.ContactPerson, supplier.Phone,
		nullable(supplier.Email), supplier.Location, supplier.Country, supplier.Website, supplier.TaxPin,
		nullable(supplier.RegistrationNumber), supplier.BankAccountNumber, supplier.BankName,
		supplier.PaymentTerms, supplier.Logo, supplier.Rating, supplier.Notes,
		supplier.CreatedAt.UTC(), supplier.UpdatedAt.UTC())
	return err
}

// FindByID fetches a supplier by identifier.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (Supplier, error) {
	supplierID, err := uuid.Parse(id)
	if err != nil {
		return Supplier{}, ErrNotFound
	}
	return r.findOne(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, supplierID)
}

// FindByPhone fetches a supplier by phone number.
func (r *PostgresRepository) FindByPhone(ctx context.Context, phone string) (Supplier, error) {
	return r.findOne(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE phone = $1`, phone)
}

// FindByEmail fetches a supplier by email.
func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (Supplier, error) {
	return r.findOne(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE email = $1`, email)
}

// FindByRegistrationNumber fetches a supplier by registration number.
func (r *PostgresRepository) FindByRegistrationNumber(ctx context.Context, registrationNumber string) (Supplier, error) {
	return r.findOne(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE registration_number = $1`, registrationNumber)
}

// List returns all suppliers, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]Supplier, error) {
	rows, err := r.db.Query(ctx, `SELECT `+supplierColumns+` FROM suppliers ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []Supplier
	for rows.Next() {
		supplier, err := scanSupplier(rows)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, supplier)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate suppliers: %w", err)
	}
	return suppliers, nil
}

// Update replaces all mutable fields of the supplier.
func (r *PostgresRepository) Update(ctx context.Context, supplier Supplier) error {
	supplierID, err := uuid.Parse(supplier.ID)
	if err != nil {
		return err
	}
	cmd, err := r.db.Exec(ctx, `UPDATE suppliers SET supplier_type = $1, name = $2, contact_person = $3,
        phone = $4, email = $5, location = $6, country = $7, website = $8, tax_pin = $9,
        registration_number = $10, bank_account_number = $11, bank_name = $12, payment_terms = $13,
        logo = $14, rating = $15, notes = $16, updated_at = $17 WHERE id = $18`,
		supplier.SupplierType, supplier.Name, supplier.ContactPerson, supplier.Phone,
		nullable(supplier.Email), supplier.Location, supplier.Country, supplier.Website, supplier.TaxPin,
		nullable(supplier.RegistrationNumber), supplier.BankAccountNumber, supplier.BankName,
		supplier.PaymentTerms, supplier.Logo, supplier.Rating, supplier.Notes,
		supplier.UpdatedAt.UTC(), supplierID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the supplier record.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	supplierID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	cmd, err := r.db.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, supplierID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) findOne(ctx context.Context, query string, args ...any) (Supplier, error) {
	supplier, err := scanSupplier(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return Supplier{}, ErrNotFound
	}
	return supplier, err
}

func scanSupplier(row pgx.Row) (Supplier, error) {
	var (
		id                 uuid.UUID
		email              *string
		registrationNumber *string
		createdAt          time.Time
		updatedAt          time.Time
		supplier           Supplier
	)
	if err := row.Scan(&id, &supplier.SupplierType, &supplier.Name, &supplier.ContactPerson,
		&supplier.Phone, &email, &supplier.Location, &supplier.Country, &supplier.Website,
		&supplier.TaxPin, &registrationNumber, &supplier.BankAccountNumber, &supplier.BankName,
		&supplier.PaymentTerms, &supplier.Logo, &supplier.Rating, &supplier.Notes,
		&createdAt, &updatedAt); err != nil {
		return Supplier{}, err
	}
	supplier.ID = id.String()
	if email != nil {
		supplier.Email = *email
	}
	if registrationNumber != nil {
		supplier.RegistrationNumber = *registrationNumber
	}
	supplier.CreatedAt = createdAt.UTC()
	supplier.UpdatedAt = updatedAt.UTC()
	return supplier, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
