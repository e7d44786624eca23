package customer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when no customer matches the lookup.
var ErrNotFound = errors.New("customer not found")

// Repository persists customers.
type Repository interface {
	Create(ctx context.Context, customer Customer) error
	FindByID(ctx context.Context, id string) (Customer, error)
	FindByPhone(ctx context.Context, phone string) (Customer, error)
	FindByEmail(ctx context.Context, email string) (Customer, error)
	FindByNationalID(ctx context.Context, nationalID string) (Customer, error)
	List(ctx context.Context) ([]Customer, error)
	Update(ctx context.Context, customer Customer) error
	Delete(ctx context.Context, id string) error
}

const customerColumns = `id, customer_type, first_name, last_name, phone, gender, max_credit_limit,
    max_credit_days, tax_pin, dob, email, national_id, country, location, created_at, updated_at`

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed customer repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new customer. Optional unique fields are stored as NULL
// when empty so the partial uniqueness constraints do not collide.
func (r *PostgresRepository) Create(ctx context.Context, customer Customer) error {
	customerID, err := uuid.Parse(customer.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO customers (`+customerColumns+`)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		customerID, customer.CustomerType, customer.FirstName, customer.LastName, customer.Phone,
		customer.Gender, customer.MaxCreditLimit, customer.MaxCreditDays, customer.TaxPin, customer.DOB,
		nullable(customer.Email), nullable(customer.NationalID), customer.Country, customer.Location,
		customer.CreatedAt.UTC(), customer.UpdatedAt.UTC())
	return err
}

// FindByID fetches a customer by identifier.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (Customer, error) {
	customerID, err := uuid.Parse(id)
	if err != nil {
		return Customer{}, ErrNotFound
	}
	return r.findOne(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, customerID)
}

// FindByPhone fetches a customer by phone number.
func (r *PostgresRepository) FindByPhone(ctx context.Context, phone string) (Customer, error) {
	return r.findOne(ctx, `SELECT `+customerColumns+` FROM customers WHERE phone = $1`, phone)
}

// FindByEmail fetches a customer by email.
func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (Customer, error) {
	return r.findOne(ctx, `SELECT `+customerColumns+` FROM customers WHERE email = $1`, email)
}

// FindByNationalID fetches a customer by national ID.
func (r *PostgresRepository) FindByNationalID(ctx context.Context, nationalID string) (Customer, error) {
	return r.findOne(ctx, `SELECT `+customerColumns+` FROM customers WHERE national_id = $1`, nationalID)
}

// List returns all customers, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]Customer, error) {
	rows, err := r.db.Query(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []Customer
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customers: %w", err)
	}
	return customers, nil
}

// Update replaces all mutable fields of the customer.
func (r *PostgresRepository) Update(ctx context.Context, customer Customer) error {
	customerID, err := uuid.Parse(customer.ID)
	if err != nil {
		return err
	}
	cmd, err := r.db.Exec(ctx, `UPDATE customers SET customer_type = $1, first_name = $2, last_name = $3,
        phone = $4, gender = $5, max_credit_limit = $6, max_credit_days = $7, tax_pin = $8, dob = $9,
        email = $10, national_id = $11, country = $12, location = $13, updated_at = $14 WHERE id = $15`,
		customer.CustomerType, customer.FirstName, customer.LastName, customer.Phone, customer.Gender,
		customer.MaxCreditLimit, customer.MaxCreditDays, customer.TaxPin, customer.DOB,
		nullable(customer.Email), nullable(customer.NationalID), customer.Country, customer.Location,
		customer.UpdatedAt.UTC(), customerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the customer record.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	customerID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	cmd, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, customerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) findOne(ctx context.Context, query string, args ...any) (Customer, error) {
	customer, err := scanCustomer(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return Customer{}, ErrNotFound
	}
	return customer, err
}

func scanCustomer(row pgx.Row) (Customer, error) {
	var (
		id         uuid.UUID
		email      *string
		nationalID *string
		createdAt  time.Time
		updatedAt  time.Time
		customer   Customer
	)
	if err := row.Scan(&id, &customer.CustomerType, &customer.FirstName, &customer.LastName,
		&customer.Phone, &customer.Gender, &customer.MaxCreditLimit, &customer.MaxCreditDays,
		&customer.TaxPin, &customer.DOB, &email, &nationalID, &customer.Country, &customer.Location,
		&createdAt, &updatedAt); err != nil {
		return Customer{}, err
	}
	customer.ID = id.String()
	if email != nil {
		customer.Email = *email
	}
	if nationalID != nil {
		customer.NationalID = *nationalID
	}
	customer.CreatedAt = createdAt.UTC()
	customer.UpdatedAt = updatedAt.UTC()
	return customer, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
