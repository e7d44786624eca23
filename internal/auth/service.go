package auth

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dukapos/dukapos/internal/config"
	"github.com/dukapos/dukapos/internal/identity"
)

// Service verifies credentials against the user store and issues tokens.
type Service struct {
	users  identity.Repository
	secret []byte
	ttl    time.Duration
}

// NewService creates the credential verifier from process configuration.
func NewService(cfg config.Config, users identity.Repository) *Service {
	return &Service{users: users, secret: []byte(cfg.JWTSecret), ttl: cfg.AccessTokenTTL}
}

// Credentials is a login attempt. Email takes precedence when both
// identifiers are present.
type Credentials struct {
	Email    string
	Username string
	Password string
}

// Session is the login result: the stripped user record plus its token.
type Session struct {
	identity.Public
	AccessToken string `json:"accessToken"`
}

// Authenticate looks up the credential record by email or username, compares
// the candidate password against the stored bcrypt hash and, on success,
// issues a signed access token over the public user fields.
func (s *Service) Authenticate(ctx context.Context, creds Credentials) (Session, error) {
	var (
		user identity.User
		err  error
	)
	switch {
	case creds.Email != "":
		user, err = s.users.FindByEmail(ctx, creds.Email)
	case creds.Username != "":
		user, err = s.users.FindByUsername(ctx, creds.Username)
	default:
		return Session{}, ErrWrongCredentials
	}
	if err != nil {
		if errors.Is(err, identity.ErrNotFound) {
			// An unknown identifier answers exactly like a wrong password.
			return Session{}, ErrWrongCredentials
		}
		return Session{}, err
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(creds.Password)) != nil {
		return Session{}, ErrWrongCredentials
	}

	token, err := IssueToken(user.Public, s.secret, SignOptions{ExpiresIn: s.ttl})
	if err != nil {
		return Session{}, err
	}

	return Session{Public: user.Public, AccessToken: token}, nil
}
