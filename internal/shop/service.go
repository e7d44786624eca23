package shop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dukapos/dukapos/internal/identity"
)

// ConflictError reports a uniqueness violation on a shop field.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// Service manages shops and resolves their attendants from the user store.
type Service struct {
	repo  Repository
	users *identity.Service
}

// NewService creates a new shop service.
func NewService(repo Repository, users *identity.Service) *Service {
	return &Service{repo: repo, users: users}
}

// CreateInput captures the data required to open a shop.
type CreateInput struct {
	Name         string
	Slug         string
	Location     string
	AdminID      string
	AttendantIDs []string
}

// Create opens a shop after checking slug uniqueness.
func (s *Service) Create(ctx context.Context, in CreateInput) (Shop, error) {
	if _, err := s.repo.FindBySlug(ctx, in.Slug); err == nil {
		return Shop{}, &ConflictError{Message: fmt.Sprintf("Shop %s already exists", in.Name)}
	} else if !errors.Is(err, ErrNotFound) {
		return Shop{}, err
	}

	now := time.Now().UTC()
	shop := Shop{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Slug:         in.Slug,
		Location:     in.Location,
		AdminID:      in.AdminID,
		AttendantIDs: in.AttendantIDs,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if shop.AttendantIDs == nil {
		shop.AttendantIDs = []string{}
	}

	if err := s.repo.Create(ctx, shop); err != nil {
		return Shop{}, err
	}
	return shop, nil
}

// Get fetches a single shop.
func (s *Service) Get(ctx context.Context, id string) (Shop, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns all shops, newest first.
func (s *Service) List(ctx context.Context) ([]Shop, error) {
	return s.repo.List(ctx)
}

// Attendants resolves the shop's attendant IDs into user contacts.
func (s *Service) Attendants(ctx context.Context, shopID string) ([]identity.Contact, error) {
	shop, err := s.repo.FindByID(ctx, shopID)
	if err != nil {
		return nil, err
	}
	return s.users.Contacts(ctx, shop.AttendantIDs)
}
