// Package cryptox provides credential generation and hashing for API clients.
package cryptox

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const (
	// ClientIDPrefix marks public client identifiers (safe to share).
	ClientIDPrefix = "CL_"
	// ClientKeyPrefix marks secret client keys (shown exactly once).
	ClientKeyPrefix = "CK_"

	clientIDLength  = 12
	clientKeyLength = 32

	clientIDCharset  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	clientKeyCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// DefaultHashCost is the bcrypt cost used when the caller doesn't tune it.
	// Verification should land in the tens of milliseconds on current hardware.
	DefaultHashCost = 12
)

// GenerateClientID produces a public client identifier: "CL_" plus 12
// random uppercase alphanumerics. Uniqueness against existing records is the
// store's responsibility (unique index re-checks on insert).
func GenerateClientID() (string, error) {
	suffix, err := randomString(clientIDCharset, clientIDLength)
	if err != nil {
		return "", fmt.Errorf("cryptox: generate client id: %w", err)
	}
	return ClientIDPrefix + suffix, nil
}

// GenerateClientKey produces a plaintext client secret: "CK_" plus 32 random
// mixed-case alphanumerics from a cryptographically secure source.
func GenerateClientKey() (string, error) {
	suffix, err := randomString(clientKeyCharset, clientKeyLength)
	if err != nil {
		return "", fmt.Errorf("cryptox: generate client key: %w", err)
	}
	return ClientKeyPrefix + suffix, nil
}

// HashKey derives a salted bcrypt hash of a plaintext client key. The
// returned string is self-contained: algorithm, cost and salt are embedded,
// so nothing else needs storing alongside it.
func HashKey(plaintext string, cost int) (string, error) {
	if cost == 0 {
		cost = DefaultHashCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("cryptox: hash client key: %w", err)
	}
	return string(hash), nil
}

// VerifyKey compares a plaintext client key against its stored hash.
// The comparison is delegated to bcrypt, which is constant-time.
func VerifyKey(plaintext, encodedHash string) error {
	return bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(plaintext))
}

func randomString(charset string, length int) (string, error) {
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		out[i] = charset[n.Int64()]
	}
	return string(out), nil
}
