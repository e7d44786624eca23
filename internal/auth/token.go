package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dukapos/dukapos/internal/identity"
)

// DefaultTokenTTL is how long an access token stays valid unless configured
// otherwise.
const DefaultTokenTTL = time.Hour

var (
	// ErrWrongCredentials covers both an unknown identifier and a password
	// mismatch, so responses never reveal which accounts exist.
	ErrWrongCredentials = errors.New("wrong credentials")
	// ErrMissingToken means no token was presented at all.
	ErrMissingToken = errors.New("no token provided")
	// ErrInvalidToken covers signature mismatch and elapsed expiry alike.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrNoSecret means the signing secret is absent, a server-side fault.
	ErrNoSecret = errors.New("signing secret is not configured")
)

// Claims is the token payload: the public user fields plus the standard
// temporal claims. Tokens are stateless, so a claim set is everything the
// server knows about a session.
type Claims struct {
	identity.Public
	jwt.RegisteredClaims
}

// SignOptions control token issuance. Zero values fall back to a one hour
// expiry signed with HS256.
type SignOptions struct {
	ExpiresIn time.Duration
	Method    jwt.SigningMethod
}

// IssueToken signs the user's public fields into a compact access token.
func IssueToken(user identity.Public, secret []byte, opts SignOptions) (string, error) {
	if len(secret) == 0 {
		return "", ErrNoSecret
	}
	// Only the zero value means "unset"; a negative duration yields an
	// already-expired token.
	if opts.ExpiresIn == 0 {
		opts.ExpiresIn = DefaultTokenTTL
	}
	if opts.Method == nil {
		opts.Method = jwt.SigningMethodHS256
	}

	now := time.Now()
	claims := Claims{
		Public: user,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(opts.ExpiresIn)),
		},
	}

	return jwt.NewWithClaims(opts.Method, claims).SignedString(secret)
}

// VerifyToken checks signature and expiry against the secret and returns the
// decoded claims. A bearer-style prefix is stripped before verification.
func VerifyToken(raw string, secret []byte) (*Claims, error) {
	if len(secret) == 0 {
		return nil, ErrNoSecret
	}

	raw = strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
