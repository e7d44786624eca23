package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when no entry matches the lookup.
var ErrNotFound = errors.New("entry not found")

// Repository persists reference entries, parameterized by kind.
type Repository interface {
	Create(ctx context.Context, kind Kind, entry Entry) error
	FindByID(ctx context.Context, kind Kind, id string) (Entry, error)
	FindBySlug(ctx context.Context, kind Kind, slug string) (Entry, error)
	List(ctx context.Context, kind Kind) ([]Entry, error)
	Update(ctx context.Context, kind Kind, entry Entry) error
	Delete(ctx context.Context, kind Kind, id string) error
}

const entryColumns = `id, name, abbreviation, slug, created_at, updated_at`

// PostgresRepository implements Repository using PostgreSQL. The table name
// comes from Kind.Table, never from request input.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed reference repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new entry into the kind's table.
func (r *PostgresRepository) Create(ctx context.Context, kind Kind, entry Entry) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}
	entryID, err := uuid.Parse(entry.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO `+table+` (`+entryColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		entryID, entry.Name, entry.Abbreviation, entry.Slug, entry.CreatedAt.UTC(), entry.UpdatedAt.UTC())
	return err
}

// FindByID fetches an entry by identifier.
func (r *PostgresRepository) FindByID(ctx context.Context, kind Kind, id string) (Entry, error) {
	table, err := tableFor(kind)
	if err != nil {
		return Entry{}, err
	}
	entryID, err := uuid.Parse(id)
	if err != nil {
		return Entry{}, ErrNotFound
	}
	return r.findOne(ctx, `SELECT `+entryColumns+` FROM `+table+` WHERE id = $1`, entryID)
}

// FindBySlug fetches an entry by slug.
func (r *PostgresRepository) FindBySlug(ctx context.Context, kind Kind, slug string) (Entry, error) {
	table, err := tableFor(kind)
	if err != nil {
		return Entry{}, err
	}
	return r.findOne(ctx, `SELECT `+entryColumns+` FROM `+table+` WHERE slug = $1`, slug)
}

// List returns all entries of the kind, newest first.
func (r *PostgresRepository) List(ctx context.Context, kind Kind) ([]Entry, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, `SELECT `+entryColumns+` FROM `+table+` ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", table, err)
	}
	return entries, nil
}

// Update replaces the entry's mutable fields.
func (r *PostgresRepository) Update(ctx context.Context, kind Kind, entry Entry) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}
	entryID, err := uuid.Parse(entry.ID)
	if err != nil {
		return err
	}
	cmd, err := r.db.Exec(ctx, `UPDATE `+table+` SET name = $1, abbreviation = $2, slug = $3, updated_at = $4 WHERE id = $5`,
		entry.Name, entry.Abbreviation, entry.Slug, entry.UpdatedAt.UTC(), entryID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the entry.
func (r *PostgresRepository) Delete(ctx context.Context, kind Kind, id string) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}
	entryID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	cmd, err := r.db.Exec(ctx, `DELETE FROM `+table+` WHERE id = $1`, entryID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) findOne(ctx context.Context, query string, args ...any) (Entry, error) {
	entry, err := scanEntry(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return Entry{}, ErrNotFound
	}
	return entry, err
}

func scanEntry(row pgx.Row) (Entry, error) {
	var (
		id        uuid.UUID
		createdAt time.Time
		updatedAt time.Time
		entry     Entry
	)
	if err := row.Scan(&id, &entry.Name, &entry.Abbreviation, &entry.Slug, &createdAt, &updatedAt); err != nil {
		return Entry{}, err
	}
	entry.ID = id.String()
	entry.CreatedAt = createdAt.UTC()
	entry.UpdatedAt = updatedAt.UTC()
	return entry, nil
}

func tableFor(kind Kind) (string, error) {
	table := kind.Table()
	if table == "" {
		return "", fmt.Errorf("unknown catalog kind %q", kind)
	}
	return table, nil
}
