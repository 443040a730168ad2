package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func TestNewHS256_EmptyKey(t *testing.T) {
	_, err := NewHS256(nil)
	require.Error(t, err)
}

func TestSignVerify_RoundTrip(t *testing.T) {
	h, err := NewHS256(testKey)
	require.NoError(t, err)

	now := time.Now()
	claims := NewAccessClaims("CL_ABC123", "menu-api", DefaultAccessTokenTTL, now)

	token, err := h.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	decoded, err := h.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "CL_ABC123", decoded.Subject)
	require.Equal(t, "menu-api", decoded.Issuer)
	require.WithinDuration(t, now.Add(DefaultAccessTokenTTL), decoded.ExpiresAt.Time, time.Second)
}

func TestVerify_Expired(t *testing.T) {
	h, err := NewHS256(testKey)
	require.NoError(t, err)

	issued := time.Now().Add(-48 * time.Hour)
	claims := NewAccessClaims("CL_ABC123", "menu-api", time.Hour, issued)

	token, err := h.Sign(claims)
	require.NoError(t, err)

	_, err = h.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerify_ExpiryBoundary(t *testing.T) {
	h, err := NewHS256(testKey)
	require.NoError(t, err)

	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	claims := NewAccessClaims("CL_ABC123", "menu-api", time.Hour, issued)
	token, err := h.Sign(claims)
	require.NoError(t, err)

	// Still valid just before expiry.
	h.Now = func() time.Time { return issued.Add(time.Hour - time.Second) }
	_, err = h.Verify(token)
	require.NoError(t, err)

	// Expired just after.
	h.Now = func() time.Time { return issued.Add(time.Hour + time.Second) }
	_, err = h.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerify_WrongKey(t *testing.T) {
	signer, err := NewHS256(testKey)
	require.NoError(t, err)
	verifier, err := NewHS256([]byte("a-completely-different-signing-k"))
	require.NoError(t, err)

	token, err := signer.Sign(NewAccessClaims("CL_ABC123", "menu-api", time.Hour, time.Now()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestVerify_TamperedToken(t *testing.T) {
	h, err := NewHS256(testKey)
	require.NoError(t, err)

	token, err := h.Sign(NewAccessClaims("CL_ABC123", "menu-api", time.Hour, time.Now()))
	require.NoError(t, err)

	tampered := token[:len(token)-4] + "AAAA"
	_, err = h.Verify(tampered)
	require.Error(t, err)
}

func TestVerify_Malformed(t *testing.T) {
	h, err := NewHS256(testKey)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-jwt"},
		{"two segments", "aaaa.bbbb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.Verify(tt.token)
			require.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestVerify_MissingSubject(t *testing.T) {
	h, err := NewHS256(testKey)
	require.NoError(t, err)

	token, err := h.Sign(NewAccessClaims("", "menu-api", time.Hour, time.Now()))
	require.NoError(t, err)

	_, err = h.Verify(token)
	require.ErrorIs(t, err, ErrInvalidClaim)
}

func TestSign_Deterministic(t *testing.T) {
	h, err := NewHS256(testKey)
	require.NoError(t, err)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	claims := NewAccessClaims("CL_ABC123", "menu-api", time.Hour, now)

	// HMAC output is a pure function of key and claims.
	a, err := h.Sign(claims)
	require.NoError(t, err)
	b, err := h.Sign(claims)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestClaims_ValidateExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	claims := NewAccessClaims("CL_ABC123", "menu-api", time.Hour, now)

	require.NoError(t, claims.ValidateExpiry(now.Add(30*time.Minute)))
	require.ErrorIs(t, claims.ValidateExpiry(now.Add(2*time.Hour)), ErrExpired)
	require.ErrorIs(t, claims.ValidateExpiry(now.Add(-time.Minute)), ErrNotYetValid)
}
