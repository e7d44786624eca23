package customer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ConflictError reports a uniqueness violation on a customer field.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func conflictf(format string, args ...any) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// Service manages the customer lifecycle.
type Service struct {
	repo Repository
}

// NewService creates a new customer service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput captures the data required to register a customer.
type CreateInput struct {
	CustomerType   string
	FirstName      string
	LastName       string
	Phone          string
	Gender         string
	MaxCreditLimit float64
	MaxCreditDays  int
	TaxPin         string
	DOB            *time.Time
	Email          string
	NationalID     string
	Country        string
	Location       string
}

// UpdateInput carries the optional fields of a customer update.
type UpdateInput struct {
	CustomerType   *string
	FirstName      *string
	LastName       *string
	Phone          *string
	Gender         *string
	MaxCreditLimit *float64
	MaxCreditDays  *int
	TaxPin         *string
	DOB            *time.Time
	Email          *string
	NationalID     *string
	Country        *string
	Location       *string
}

// Create registers a customer after checking phone and, when provided, email
// and national ID uniqueness.
func (s *Service) Create(ctx context.Context, in CreateInput) (Customer, error) {
	if err := s.ensureFree(ctx, in.Phone, in.Email, in.NationalID, ""); err != nil {
		return Customer{}, err
	}

	now := time.Now().UTC()
	customer := Customer{
		ID:             uuid.New().String(),
		CustomerType:   in.CustomerType,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Phone:          in.Phone,
		Gender:         in.Gender,
		MaxCreditLimit: in.MaxCreditLimit,
		MaxCreditDays:  in.MaxCreditDays,
		TaxPin:         in.TaxPin,
		DOB:            in.DOB,
		Email:          in.Email,
		NationalID:     in.NationalID,
		Country:        in.Country,
		Location:       in.Location,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		return Customer{}, err
	}
	return customer, nil
}

// Get fetches a single customer.
func (s *Service) Get(ctx context.Context, id string) (Customer, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns all customers, newest first.
func (s *Service) List(ctx context.Context) ([]Customer, error) {
	return s.repo.List(ctx)
}

// Update applies the provided fields, re-checking uniqueness for any
// identifier that actually changes.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Customer{}, err
	}

	var phone, email, nationalID string
	if in.Phone != nil && *in.Phone != customer.Phone {
		phone = *in.Phone
	}
	if in.Email != nil && *in.Email != customer.Email {
		email = *in.Email
	}
	if in.NationalID != nil && *in.NationalID != customer.NationalID {
		nationalID = *in.NationalID
	}
	if err := s.ensureFree(ctx, phone, email, nationalID, customer.ID); err != nil {
		return Customer{}, err
	}

	if phone != "" {
		customer.Phone = phone
	}
	if email != "" {
		customer.Email = email
	}
	if nationalID != "" {
		customer.NationalID = nationalID
	}
	if in.CustomerType != nil {
		customer.CustomerType = *in.CustomerType
	}
	if in.FirstName != nil {
		customer.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		customer.LastName = *in.LastName
	}
	if in.Gender != nil {
		customer.Gender = *in.Gender
	}
	if in.MaxCreditLimit != nil {
		customer.MaxCreditLimit = *in.MaxCreditLimit
	}
	if in.MaxCreditDays != nil {
		customer.MaxCreditDays = *in.MaxCreditDays
	}
	if in.TaxPin != nil {
		customer.TaxPin = *in.TaxPin
	}
	if in.DOB != nil {
		customer.DOB = in.DOB
	}
	if in.Country != nil {
		customer.Country = *in.Country
	}
	if in.Location != nil {
		customer.Location = *in.Location
	}
	customer.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, customer); err != nil {
		return Customer{}, err
	}
	return customer, nil
}

// Delete removes a customer.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) ensureFree(ctx context.Context, phone, email, nationalID, exceptID string) error {
	if phone != "" {
		if other, err := s.repo.FindByPhone(ctx, phone); err == nil && other.ID != exceptID {
			return conflictf("Customer with phone number %s already exists", phone)
		} else if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
	}
	if email != "" {
		if other, err := s.repo.FindByEmail(ctx, email); err == nil && other.ID != exceptID {
			return conflictf("Customer with email %s already exists", email)
		} else if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
	}
	if nationalID != "" {
		if other, err := s.repo.FindByNationalID(ctx, nationalID); err == nil && other.ID != exceptID {
			return conflictf("Customer with national ID %s already exists", nationalID)
		} else if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
	}
	return nil
}
