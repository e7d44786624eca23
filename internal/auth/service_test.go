package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/dukapos/dukapos/internal/config"
	"github.com/dukapos/dukapos/internal/identity"
)

func newTestAuth(t *testing.T) (*Service, *identity.Service) {
	t.Helper()
	repo := identity.NewMemoryRepository()
	users := identity.NewService(repo)
	cfg := config.Config{JWTSecret: "test-secret", AccessTokenTTL: DefaultTokenTTL}
	return NewService(cfg, repo), users
}

func TestAuthenticateIssuesToken(t *testing.T) {
	svc, users := newTestAuth(t)
	ctx := context.Background()

	created, err := users.Create(ctx, identity.CreateInput{
		Email: "jane@duka.shop", Username: "jane", Password: "s3cret", Phone: "+254700000001",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	session, err := svc.Authenticate(ctx, Credentials{Email: "jane@duka.shop", Password: "s3cret"})
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if session.AccessToken == "" {
		t.Fatalf("expected an access token")
	}

	claims, err := VerifyToken(session.AccessToken, []byte("test-secret"))
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Public.ID != created.ID || claims.Email != created.Email {
		t.Fatalf("token claims do not match the user: %+v", claims.Public)
	}
}

func TestAuthenticateByUsername(t *testing.T) {
	svc, users := newTestAuth(t)
	ctx := context.Background()

	if _, err := users.Create(ctx, identity.CreateInput{
		Email: "jane@duka.shop", Username: "jane", Password: "s3cret", Phone: "+254700000001",
	}); err != nil {
		t.Fatalf("create user: %v", err)
	}

	if _, err := svc.Authenticate(ctx, Credentials{Username: "jane", Password: "s3cret"}); err != nil {
		t.Fatalf("authenticate by username: %v", err)
	}
}

func TestEmailTakesPrecedenceOverUsername(t *testing.T) {
	svc, users := newTestAuth(t)
	ctx := context.Background()

	if _, err := users.Create(ctx, identity.CreateInput{
		Email: "jane@duka.shop", Username: "jane", Password: "s3cret", Phone: "+254700000001",
	}); err != nil {
		t.Fatalf("create user: %v", err)
	}

	// A valid username cannot rescue a login that names an unknown email.
	_, err := svc.Authenticate(ctx, Credentials{Email: "ghost@duka.shop", Username: "jane", Password: "s3cret"})
	if !errors.Is(err, ErrWrongCredentials) {
		t.Fatalf("expected ErrWrongCredentials, got %v", err)
	}
}

func TestUnknownUserAndWrongPasswordAreIndistinguishable(t *testing.T) {
	svc, users := newTestAuth(t)
	ctx := context.Background()

	if _, err := users.Create(ctx, identity.CreateInput{
		Email: "jane@duka.shop", Username: "jane", Password: "s3cret", Phone: "+254700000001",
	}); err != nil {
		t.Fatalf("create user: %v", err)
	}

	_, unknownErr := svc.Authenticate(ctx, Credentials{Email: "ghost@duka.shop", Password: "s3cret"})
	_, wrongErr := svc.Authenticate(ctx, Credentials{Email: "jane@duka.shop", Password: "wrong"})

	if !errors.Is(unknownErr, ErrWrongCredentials) || !errors.Is(wrongErr, ErrWrongCredentials) {
		t.Fatalf("expected ErrWrongCredentials for both, got %v and %v", unknownErr, wrongErr)
	}
}

func TestAuthenticateWithoutIdentifierFails(t *testing.T) {
	svc, _ := newTestAuth(t)

	if _, err := svc.Authenticate(context.Background(), Credentials{Password: "s3cret"}); !errors.Is(err, ErrWrongCredentials) {
		t.Fatalf("expected ErrWrongCredentials, got %v", err)
	}
}
