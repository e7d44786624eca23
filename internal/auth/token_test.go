package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dukapos/dukapos/internal/identity"
)

var testSecret = []byte("test-secret")

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	user := identity.Public{ID: "u-1", Email: "jane@duka.shop", Username: "jane", Role: identity.RoleAdmin}

	token, err := IssueToken(user, testSecret, SignOptions{})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := VerifyToken(token, testSecret)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Public.ID != user.ID || claims.Email != user.Email || claims.Role != user.Role {
		t.Fatalf("claims do not match issued user: %+v", claims.Public)
	}

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != DefaultTokenTTL {
		t.Fatalf("expected default ttl %s, got %s", DefaultTokenTTL, ttl)
	}
}

func TestVerifyStripsBearerPrefix(t *testing.T) {
	token, err := IssueToken(identity.Public{ID: "u-1"}, testSecret, SignOptions{})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := VerifyToken("Bearer "+token, testSecret); err != nil {
		t.Fatalf("verify with prefix: %v", err)
	}
}

func TestNegativeExpiryIsNotReplacedWithDefault(t *testing.T) {
	token, err := IssueToken(identity.Public{ID: "u-1"}, testSecret, SignOptions{ExpiresIn: -time.Minute})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims := &Claims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return testSecret, nil
	}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !claims.ExpiresAt.Before(time.Now()) {
		t.Fatalf("expected an already-expired token, expiry %s", claims.ExpiresAt)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	token, err := IssueToken(identity.Public{ID: "u-1"}, testSecret, SignOptions{ExpiresIn: -time.Minute})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := VerifyToken(token, testSecret); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := IssueToken(identity.Public{ID: "u-1"}, testSecret, SignOptions{})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := VerifyToken(token, []byte("other-secret")); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	if _, err := VerifyToken("not-a-token", testSecret); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestIssueWithoutSecretFails(t *testing.T) {
	if _, err := IssueToken(identity.Public{ID: "u-1"}, nil, SignOptions{}); !errors.Is(err, ErrNoSecret) {
		t.Fatalf("expected ErrNoSecret, got %v", err)
	}
}
