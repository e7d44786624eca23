package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when no user matches the lookup.
var ErrNotFound = errors.New("user not found")

// Repository persists users.
type Repository interface {
	Create(ctx context.Context, user User) error
	FindByID(ctx context.Context, id string) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByUsername(ctx context.Context, username string) (User, error)
	FindByPhone(ctx context.Context, phone string) (User, error)
	List(ctx context.Context) ([]User, error)
	ListByRole(ctx context.Context, role Role) ([]User, error)
	ListByIDs(ctx context.Context, ids []string) ([]User, error)
	Update(ctx context.Context, user User) error
	Delete(ctx context.Context, id string) error
}

const userColumns = `id, email, username, password, first_name, last_name, phone, dob, gender, image, role, created_at, updated_at`

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed user repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new user.
func (r *PostgresRepository) Create(ctx context.Context, user User) error {
	userID, err := uuid.Parse(user.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO users (`+userColumns+`)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		userID, user.Email, user.Username, string(user.PasswordHash), user.FirstName, user.LastName,
		user.Phone, user.DOB, user.Gender, user.Image, string(user.Role), user.CreatedAt.UTC(), user.UpdatedAt.UTC())
	return err
}

// FindByID fetches a user by identifier.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return User{}, ErrNotFound
	}
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, userID)
}

// FindByEmail fetches a user by email.
func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

// FindByUsername fetches a user by username.
func (r *PostgresRepository) FindByUsername(ctx context.Context, username string) (User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

// FindByPhone fetches a user by phone number.
func (r *PostgresRepository) FindByPhone(ctx context.Context, phone string) (User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE phone = $1`, phone)
}

// List returns all users, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]User, error) {
	return r.findMany(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
}

// ListByRole returns users holding the given role, newest first.
func (r *PostgresRepository) ListByRole(ctx context.Context, role Role) ([]User, error) {
	return r.findMany(ctx, `SELECT `+userColumns+` FROM users WHERE role = $1 ORDER BY created_at DESC`, string(role))
}

// ListByIDs returns the users whose identifiers appear in ids.
func (r *PostgresRepository) ListByIDs(ctx context.Context, ids []string) ([]User, error) {
	uuids := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		userID, err := uuid.Parse(id)
		if err != nil {
			continue
		}
		uuids = append(uuids, userID)
	}
	return r.findMany(ctx, `SELECT `+userColumns+` FROM users WHERE id = ANY($1) ORDER BY created_at DESC`, uuids)
}

// Update replaces all mutable fields of the user.
func (r *PostgresRepository) Update(ctx context.Context, user User) error {
	userID, err := uuid.Parse(user.ID)
	if err != nil {
		return err
	}
	cmd, err := r.db.Exec(ctx, `UPDATE users SET email = $1, username = $2, password = $3,
        first_name = $4, last_name = $5, phone = $6, dob = $7, gender = $8, image = $9,
        role = $10, updated_at = $11 WHERE id = $12`,
		user.Email, user.Username, string(user.PasswordHash), user.FirstName, user.LastName,
		user.Phone, user.DOB, user.Gender, user.Image, string(user.Role), user.UpdatedAt.UTC(), userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the user record.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	cmd, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) findOne(ctx context.Context, query string, args ...any) (User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrNotFound
	}
	return user, err
}

func (r *PostgresRepository) findMany(ctx context.Context, query string, args ...any) ([]User, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

func scanUser(row pgx.Row) (User, error) {
	var (
		id       uuid.UUID
		password string
		role     string
		user     User
	)
	var createdAt, updatedAt time.Time
	if err := row.Scan(&id, &user.Email, &user.Username, &password, &user.FirstName, &user.LastName,
		&user.Phone, &user.DOB, &user.Gender, &user.Image, &role, &createdAt, &updatedAt); err != nil {
		return User{}, err
	}
	user.ID = id.String()
	user.PasswordHash = []byte(password)
	user.Role = Role(role)
	user.CreatedAt = createdAt.UTC()
	user.UpdatedAt = updatedAt.UTC()
	return user, nil
}
