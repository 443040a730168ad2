// Package jwtx wraps golang-jwt with the symmetric HS256 signing scheme used
// by this service. One process-wide key, loaded from configuration at start,
// signs and verifies every token. There is no kid selection or rotation.
package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed    = errors.New("jwtx: malformed token")
	ErrInvalidSig   = errors.New("jwtx: invalid signature")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)

// Signer is our interface for anything that can sign access tokens.
type Signer interface {
	Sign(Claims) (string, error)
}

// Verifier validates a token and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// HS256 signs and verifies tokens with a single shared HMAC-SHA256 key.
// Verification is a pure computation over the token, the key and the clock,
// so one instance is safe for concurrent use without coordination.
type HS256 struct {
	Key []byte

	// Now overrides the clock, for tests. Nil means time.Now.
	Now func() time.Time
}

// NewHS256 constructs a signer/verifier around the shared key.
func NewHS256(key []byte) (*HS256, error) {
	if len(key) == 0 {
		return nil, errors.New("jwtx: signing key must not be empty")
	}
	return &HS256{Key: key}, nil
}

// Sign serializes and signs the claims. HMAC is deterministic: the output is
// a pure function of the key and the claims.
func (h *HS256) Sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.Key)
}

// Verify checks the signature and temporal validity of a serialized token
// and returns its claims. Failures map to the package sentinel errors; the
// caller decides how much of that distinction to surface.
func (h *HS256) Verify(raw string) (Claims, error) {
	var claims Claims

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(h.now),
	)

	_, err := parser.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return h.Key, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return Claims{}, ErrNotYetValid
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrInvalidSig
		default:
			return Claims{}, ErrMalformed
		}
	}

	if claims.Subject == "" {
		return Claims{}, ErrInvalidClaim
	}

	return claims, nil
}

func (h *HS256) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}
