package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ConflictError reports a slug collision inside one reference collection.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// Service manages the reference collections.
type Service struct {
	repo Repository
}

// NewService creates a new catalog service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput captures the data required to add a reference entry.
type CreateInput struct {
	Name         string
	Abbreviation string
	Slug         string
}

// UpdateInput carries the optional fields of an entry update.
type UpdateInput struct {
	Name         *string
	Abbreviation *string
	Slug         *string
}

// Create adds an entry after checking slug uniqueness within the kind.
func (s *Service) Create(ctx context.Context, kind Kind, in CreateInput) (Entry, error) {
	if _, err := s.repo.FindBySlug(ctx, kind, in.Slug); err == nil {
		return Entry{}, &ConflictError{Message: fmt.Sprintf("%s %s already exists", kind.Label(), in.Name)}
	} else if !errors.Is(err, ErrNotFound) {
		return Entry{}, err
	}

	now := time.Now().UTC()
	entry := Entry{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Abbreviation: in.Abbreviation,
		Slug:         in.Slug,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, kind, entry); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// Get fetches a single entry.
func (s *Service) Get(ctx context.Context, kind Kind, id string) (Entry, error) {
	return s.repo.FindByID(ctx, kind, id)
}

// List returns all entries of the kind, newest first.
func (s *Service) List(ctx context.Context, kind Kind) ([]Entry, error) {
	return s.repo.List(ctx, kind)
}

// Update applies the provided fields, re-checking slug uniqueness when the
// slug actually changes.
func (s *Service) Update(ctx context.Context, kind Kind, id string, in UpdateInput) (Entry, error) {
	entry, err := s.repo.FindByID(ctx, kind, id)
	if err != nil {
		return Entry{}, err
	}

	if in.Slug != nil && *in.Slug != entry.Slug {
		if other, err := s.repo.FindBySlug(ctx, kind, *in.Slug); err == nil && other.ID != entry.ID {
			return Entry{}, &ConflictError{Message: fmt.Sprintf("%s with slug %s already exists", kind.Label(), *in.Slug)}
		} else if err != nil && !errors.Is(err, ErrNotFound) {
			return Entry{}, err
		}
		entry.Slug = *in.Slug
	}
	if in.Name != nil {
		entry.Name = *in.Name
	}
	if in.Abbreviation != nil {
		entry.Abbreviation = *in.Abbreviation
	}
	entry.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, kind, entry); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// Delete removes an entry.
func (s *Service) Delete(ctx context.Context, kind Kind, id string) error {
	if _, err := s.repo.FindByID(ctx, kind, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, kind, id)
}
