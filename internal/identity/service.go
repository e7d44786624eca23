package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// defaultImage is assigned when a user is created without a profile picture.
const defaultImage = "https://tyl6h7aevo.ufs.sh/f/vntTK41Y2gFOvHh7UX1Y2gFOc0Let1BdUmi8k7xpDlEyPrQ9"

// ConflictError reports a uniqueness violation on a user field.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func conflictf(format string, args ...any) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// Service manages the user lifecycle.
type Service struct {
	repo Repository
}

// NewService creates a new identity service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput captures the data required to register a user.
type CreateInput struct {
	Email     string
	Username  string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	DOB       *time.Time
	Gender    string
	Image     string
	Role      Role
}

// UpdateInput carries the optional fields of a user update. Nil fields are
// left untouched.
type UpdateInput struct {
	Email     *string
	Username  *string
	Password  *string
	FirstName *string
	LastName  *string
	Phone     *string
	DOB       *time.Time
	Gender    *string
	Image     *string
	Role      *Role
}

// Create registers a user after checking email, phone and username
// uniqueness, storing only a bcrypt hash of the password.
func (s *Service) Create(ctx context.Context, in CreateInput) (Public, error) {
	if err := s.ensureFree(ctx, in.Email, in.Phone, in.Username, ""); err != nil {
		return Public{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return Public{}, err
	}

	now := time.Now().UTC()
	user := User{
		Public: Public{
			ID:        uuid.New().String(),
			Email:     in.Email,
			Username:  in.Username,
			FirstName: in.FirstName,
			LastName:  in.LastName,
			Phone:     in.Phone,
			DOB:       in.DOB,
			Gender:    in.Gender,
			Image:     in.Image,
			Role:      in.Role,
			CreatedAt: now,
			UpdatedAt: now,
		},
		PasswordHash: hash,
	}
	if user.Image == "" {
		user.Image = defaultImage
	}
	if user.Role == "" {
		user.Role = RoleAttendant
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return Public{}, err
	}

	return user.Public, nil
}

// Get returns the public projection of a single user.
func (s *Service) Get(ctx context.Context, id string) (Public, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Public{}, err
	}
	return user.Public, nil
}

// List returns all users, newest first.
func (s *Service) List(ctx context.Context) ([]Public, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return publics(users), nil
}

// Attendants returns all users holding the attendant role.
func (s *Service) Attendants(ctx context.Context) ([]Public, error) {
	users, err := s.repo.ListByRole(ctx, RoleAttendant)
	if err != nil {
		return nil, err
	}
	return publics(users), nil
}

// Contacts returns the reduced projection of the users with the given IDs.
func (s *Service) Contacts(ctx context.Context, ids []string) ([]Contact, error) {
	users, err := s.repo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	contacts := make([]Contact, 0, len(users))
	for _, user := range users {
		contacts = append(contacts, user.Contact())
	}
	return contacts, nil
}

// Update applies the provided fields to a user, re-checking uniqueness for
// any identifier that actually changes and re-hashing a changed password.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Public, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Public{}, err
	}

	var email, phone, username string
	if in.Email != nil && *in.Email != user.Email {
		email = *in.Email
	}
	if in.Phone != nil && *in.Phone != user.Phone {
		phone = *in.Phone
	}
	if in.Username != nil && *in.Username != user.Username {
		username = *in.Username
	}
	if err := s.ensureFree(ctx, email, phone, username, user.ID); err != nil {
		return Public{}, err
	}

	if email != "" {
		user.Email = email
	}
	if phone != "" {
		user.Phone = phone
	}
	if username != "" {
		user.Username = username
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.DOB != nil {
		user.DOB = in.DOB
	}
	if in.Gender != nil {
		user.Gender = *in.Gender
	}
	if in.Image != nil {
		user.Image = *in.Image
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return Public{}, err
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return Public{}, err
	}
	return user.Public, nil
}

// UpdatePassword replaces the user's password hash.
func (s *Service) UpdatePassword(ctx context.Context, id, newPassword string) (Public, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Public{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return Public{}, err
	}
	user.PasswordHash = hash
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return Public{}, err
	}
	return user.Public, nil
}

// Delete removes a user.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ensureFree fails with a ConflictError when any of the non-empty identifiers
// is already taken by a user other than exceptID.
func (s *Service) ensureFree(ctx context.Context, email, phone, username, exceptID string) error {
	if email != "" {
		if other, err := s.repo.FindByEmail(ctx, email); err == nil && other.ID != exceptID {
			return conflictf("Email %s already exists", email)
		} else if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
	}
	if phone != "" {
		if other, err := s.repo.FindByPhone(ctx, phone); err == nil && other.ID != exceptID {
			return conflictf("Phone %s already exists", phone)
		} else if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
	}
	if username != "" {
		if other, err := s.repo.FindByUsername(ctx, username); err == nil && other.ID != exceptID {
			return conflictf("Username %s already exists", username)
		} else if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
	}
	return nil
}

func publics(users []User) []Public {
	out := make([]Public, 0, len(users))
	for _, user := range users {
		out = append(out, user.Public)
	}
	return out
}
