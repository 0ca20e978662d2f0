// Package auth verifies the externally-issued JWT that gates every
// authentication RPC. Tokens are minted by the account API, not by this
// server; we only check the signature, expiry, and issuer.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Sentinel errors returned by Verify. Callers map these to gRPC status codes.
var (
	// ErrTokenMissing indicates an empty or whitespace-only token.
	ErrTokenMissing = errors.New("auth: token missing")
	// ErrTokenMalformed indicates the token is not a structurally valid JWT.
	ErrTokenMalformed = errors.New("auth: token malformed")
	// ErrTokenExpired indicates the token's exp claim is in the past.
	ErrTokenExpired = errors.New("auth: token expired")
	// ErrTokenSignature indicates the signature does not match the shared secret.
	ErrTokenSignature = errors.New("auth: token signature invalid")
	// ErrTokenIssuer indicates the iss claim does not match the configured issuer.
	ErrTokenIssuer = errors.New("auth: token issuer mismatch")
)

// Claims captures the validated claims of an access token.
type Claims struct {
	UserName string
	UserRole string
	Type     string
	Issuer   string
	Expires  time.Time
}

// tokenClaims is the internal claims type used for JWT parsing.
type tokenClaims struct {
	jwt.RegisteredClaims
	UserName string `json:"userName"`
	UserRole string `json:"userRole"`
	Type     string `json:"type"`
}

// Verifier checks HMAC-SHA256 signed access tokens.
type Verifier struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewVerifier creates a Verifier for the given shared secret. If issuer is
// non-empty, the token's iss claim must match it exactly.
//
// Precondition: secret must be non-empty.
func NewVerifier(secret, issuer string) *Verifier {
	return &Verifier{
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
	}
}

// Verify parses and validates the given token string.
//
// Postcondition: Returns the validated claims, or one of the package
// sentinel errors wrapped with detail.
func (v *Verifier) Verify(token string) (Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Claims{}, ErrTokenMissing
	}

	var parsed tokenClaims
	_, err := jwt.ParseWithClaims(token, &parsed, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		return Claims{}, mapJWTError(err)
	}

	if v.issuer != "" && parsed.Issuer != v.issuer {
		return Claims{}, fmt.Errorf("%w: got %q", ErrTokenIssuer, parsed.Issuer)
	}

	claims := Claims{
		UserName: parsed.UserName,
		UserRole: parsed.UserRole,
		Type:     parsed.Type,
		Issuer:   parsed.Issuer,
	}
	if parsed.ExpiresAt != nil {
		claims.Expires = parsed.ExpiresAt.Time.UTC()
	}
	return claims, nil
}

// mapJWTError translates jwt library errors to package sentinel errors.
func mapJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrTokenSignature
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	default:
		return fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}
}
