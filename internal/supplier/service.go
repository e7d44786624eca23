package supplier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ConflictError reports a uniqueness violation on a supplier field.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func conflictf(format string, args ...any) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// Service manages the supplier lifecycle.
type Service struct {
	repo Repository
}

// NewService creates a new supplier service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput captures the data required to register a supplier.
type CreateInput struct {
	SupplierType       string
	Name               string
	ContactPerson      string
	Phone              string
	Email              string
	Location           string
	Country            string
	Website            string
	TaxPin             string
	RegistrationNumber string
	BankAccountNumber  string
	BankName           string
	PaymentTerms       string
	Logo               string
	Rating             float64
	Notes              string
}

// UpdateInput carries the optional fields of a supplier update.
type UpdateInput struct {
	SupplierType       *string
	Name               *string
	ContactPerson      *string
	Phone              *string
	Email              *string
	Location           *string
	Country            *string
	Website            *string
	TaxPin             *string
	RegistrationNumber *string
	BankAccountNumber  *string
	BankName           *string
	PaymentTerms       *string
	Logo               *string
	Rating             *float64
	Notes              *string
}

// Create registers a supplier after checking phone and, when provided, email
// and registration number uniqueness.
func (s *Service) Create(ctx context.Context, in CreateInput) (Supplier, error) {
	if err := s.ensureFree(ctx, in.Phone, in.Email, in.RegistrationNumber, ""); err != nil {
		return Supplier{}, err
	}

	now := time.Now().UTC()
	supplier := Supplier{
		ID:                 uuid.New().String(),
		SupplierType:       in.SupplierType,
		Name:               in.Name,
		ContactPerson:      in.ContactPerson,
		Phone:              in.Phone,
		Email:              in.Email,
		Location:           in.Location,
		Country:            in.Country,
		Website:            in.Website,
		TaxPin:             in.TaxPin,
		RegistrationNumber: in.RegistrationNumber,
		BankAccountNumber:  in.BankAccountNumber,
		BankName:           in.BankName,
		PaymentTerms:       in.PaymentTerms,
		Logo:               in.Logo,
		Rating:             in.Rating,
		Notes:              in.Notes,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.Create(ctx, supplier); err != nil {
		return Supplier{}, err
	}
	return supplier, nil
}

// Get fetches a single supplier.
func (s *Service) Get(ctx context.Context, id string) (Supplier, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns all suppliers, newest first.
func (s *Service) List(ctx context.Context) ([]Supplier, error) {
	return s.repo.List(ctx)
}

// Update applies the provided fields, re-checking uniqueness for any
// identifier that actually changes.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Supplier, error) {
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Supplier{}, err
	}

	var phone, email, registrationNumber string
	if in.Phone != nil && *in.Phone != supplier.Phone {
		phone = *in.Phone
	}
	if in.Email != nil && *in.Email != supplier.Email {
		email = *in.Email
	}
	if in.RegistrationNumber != nil && *in.RegistrationNumber != supplier.RegistrationNumber {
		registrationNumber = *in.RegistrationNumber
	}
	if err := s.ensureFree(ctx, phone, email, registrationNumber, supplier.ID); err != nil {
		return Supplier{}, err
	}

	if phone != "" {
		supplier.Phone = phone
	}
	if email != "" {
		supplier.Email = email
	}
	if registrationNumber != "" {
		supplier.RegistrationNumber = registrationNumber
	}
	if in.SupplierType != nil {
		supplier.SupplierType = *in.SupplierType
	}
	if in.Name != nil {
		supplier.Name = *in.Name
	}
	if in.ContactPerson != nil {
		supplier.ContactPerson = *in.ContactPerson
	}
	if in.Location != nil {
		supplier.Location = *in.Location
	}
	if in.Country != nil {
		supplier.Country = *in.Country
	}
	if in.Website != nil {
		supplier.Website = *in.Website
	}
	if in.TaxPin != nil {
		supplier.TaxPin = *in.TaxPin
	}
	if in.BankAccountNumber != nil {
		supplier.BankAccountNumber = *in.BankAccountNumber
	}
	if in.BankName != nil {
		supplier.BankName = *in.BankName
	}
	if in.PaymentTerms != nil {
		supplier.PaymentTerms = *in.PaymentTerms
	}
	if in.Logo != nil {
		supplier.Logo = *in.Logo
	}
	if in.Rating != nil {
		supplier.Rating = *in.Rating
	}
	if in.Notes != nil {
		supplier.Notes = *in.Notes
	}
	supplier.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, supplier); err != nil {
		return Supplier{}, err
	}
	return supplier, nil
}

// Delete removes a supplier.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) ensureFree(ctx context.Context, phone, email, registrationNumber, exceptID string) error {
	if phone != "" {
		if other, err := s.repo.FindByPhone(ctx, phone); err == nil && other.ID != exceptID {
			return conflictf("Supplier with phone number %s already exists", phone)
		} else if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
	}
	if email != "" {
		if other, err := s.repo.FindByEmail(ctx, email); err == nil && other.ID != exceptID {
			return conflictf("Supplier with email %s already exists", email)
		} else if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
	}
	if registrationNumber != "" {
		if other, err := s.repo.FindByRegistrationNumber(ctx, registrationNumber); err == nil && other.ID != exceptID {
			return conflictf("Supplier with registration number %s already exists", registrationNumber)
		} else if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
	}
	return nil
}
