package shop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when no shop matches the lookup.
var ErrNotFound = errors.New("shop not found")

// Repository persists shops.
type Repository interface {
	Create(ctx context.Context, shop Shop) error
	FindByID(ctx context.Context, id string) (Shop, error)
	FindBySlug(ctx context.Context, slug string) (Shop, error)
	List(ctx context.Context) ([]Shop, error)
}

const shopColumns = `id, name, slug, location, admin_id, attendant_ids, created_at, updated_at`

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed shop repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new shop.
func (r *PostgresRepository) Create(ctx context.Context, shop Shop) error {
	shopID, err := uuid.Parse(shop.ID)
	if err != nil {
		return err
	}
	var adminID any
	if shop.AdminID != "" {
		parsed, err := uuid.Parse(shop.AdminID)
		if err != nil {
			return err
		}
		adminID = parsed
	}
	_, err = r.db.Exec(ctx, `INSERT INTO shops (`+shopColumns+`)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		shopID, shop.Name, shop.Slug, shop.Location, adminID, shop.AttendantIDs,
		shop.CreatedAt.UTC(), shop.UpdatedAt.UTC())
	return err
}

// FindByID fetches a shop by identifier.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (Shop, error) {
	shopID, err := uuid.Parse(id)
	if err != nil {
		return Shop{}, ErrNotFound
	}
	return r.findOne(ctx, `SELECT `+shopColumns+` FROM shops WHERE id = $1`, shopID)
}

// FindBySlug fetches a shop by slug.
func (r *PostgresRepository) FindBySlug(ctx context.Context, slug string) (Shop, error) {
	return r.findOne(ctx, `SELECT `+shopColumns+` FROM shops WHERE slug = $1`, slug)
}

// List returns all shops, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]Shop, error) {
	rows, err := r.db.Query(ctx, `SELECT `+shopColumns+` FROM shops ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shops := []Shop{}
	for rows.Next() {
		shop, err := scanShop(rows)
		if err != nil {
			return nil, err
		}
		shops = append(shops, shop)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shops: %w", err)
	}
	return shops, nil
}

func (r *PostgresRepository) findOne(ctx context.Context, query string, args ...any) (Shop, error) {
	shop, err := scanShop(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return Shop{}, ErrNotFound
	}
	return shop, err
}

func scanShop(row pgx.Row) (Shop, error) {
	var (
		id        uuid.UUID
		adminID   *uuid.UUID
		createdAt time.Time
		updatedAt time.Time
		shop      Shop
	)
	if err := row.Scan(&id, &shop.Name, &shop.Slug, &shop.Location, &adminID,
		&shop.AttendantIDs, &createdAt, &updatedAt); err != nil {
		return Shop{}, err
	}
	shop.ID = id.String()
	if adminID != nil {
		shop.AdminID = adminID.String()
	}
	shop.CreatedAt = createdAt.UTC()
	shop.UpdatedAt = updatedAt.UTC()
	return shop, nil
}
