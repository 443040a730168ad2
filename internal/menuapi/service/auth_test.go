package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/d3r-restaurant/menu-api/internal/menuapi/domain"
	"github.com/d3r-restaurant/menu-api/internal/menuapi/store"
	"github.com/d3r-restaurant/menu-api/pkg/cryptox"
	"github.com/d3r-restaurant/menu-api/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

// fakeClients is an in-memory store.Clients for service tests.
type fakeClients struct {
	clients   map[string]domain.Client // keyed by client_id
	createErr error
}

func newFakeClients() *fakeClients {
	return &fakeClients{clients: map[string]domain.Client{}}
}

func (f *fakeClients) CreateClient(_ context.Context, c domain.Client) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.clients {
		if existing.Email == c.Email || existing.ClientID == c.ClientID {
			return store.ErrAlreadyExists
		}
	}
	f.clients[c.ClientID] = c
	return nil
}

func (f *fakeClients) GetClientByClientID(_ context.Context, clientID string) (domain.Client, error) {
	if c, ok := f.clients[clientID]; ok {
		return c, nil
	}
	return domain.Client{}, store.ErrNotFound
}

func (f *fakeClients) GetClientByEmail(_ context.Context, email string) (domain.Client, error) {
	for _, c := range f.clients {
		if c.Email == email {
			return c, nil
		}
	}
	return domain.Client{}, store.ErrNotFound
}

func (f *fakeClients) ListClients(_ context.Context) ([]domain.Client, error) {
	out := make([]domain.Client, 0, len(f.clients))
	for _, c := range f.clients {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeClients) SetClientActive(_ context.Context, clientID string, active bool) error {
	c, ok := f.clients[clientID]
	if !ok {
		return store.ErrNotFound
	}
	c.IsActive = active
	f.clients[clientID] = c
	return nil
}

func newAuthService(t *testing.T, clients *fakeClients) *AuthService {
	t.Helper()

	codec, err := jwtx.NewHS256([]byte("test-signing-key-32-bytes-long!!"))
	require.NoError(t, err)

	return &AuthService{
		Clients:  clients,
		Tokens:   codec,
		Issuer:   "menu-api-test",
		TokenTTL: jwtx.DefaultAccessTokenTTL,
		HashCost: 4, // keep bcrypt fast in tests
	}
}

func TestRegister(t *testing.T) {
	clients := newFakeClients()
	svc := newAuthService(t, clients)
	ctx := context.Background()

	client, key, err := svc.Register(ctx, "a@x.com", "A")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(client.ClientID, "CL_"))
	require.True(t, strings.HasPrefix(key, "CK_"))
	require.Equal(t, "a@x.com", client.Email)
	require.Equal(t, "A", client.Name)
	require.True(t, client.IsActive)
	require.False(t, client.ID == "")

	// Only the hash is persisted, and it verifies against the plaintext.
	stored := clients.clients[client.ClientID]
	require.NotEqual(t, key, stored.KeyHash)
	require.NotContains(t, stored.KeyHash, key)
	require.NoError(t, cryptox.VerifyKey(key, stored.KeyHash))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	clients := newFakeClients()
	svc := newAuthService(t, clients)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "a@x.com", "A")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "a@x.com", "Other")
	require.ErrorIs(t, err, ErrEmailTaken)

	// No second record was created.
	all, err := clients.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestRegister_InsertRace(t *testing.T) {
	clients := newFakeClients()
	svc := newAuthService(t, clients)

	// A concurrent registration can slip between the duplicate check and the
	// insert; the unique index rejection maps back to the same outcome.
	clients.createErr = store.ErrAlreadyExists
	_, _, err := svc.Register(context.Background(), "race@x.com", "R")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	clients := newFakeClients()
	svc := newAuthService(t, clients)
	ctx := context.Background()

	client, key, err := svc.Register(ctx, "a@x.com", "A")
	require.NoError(t, err)

	token, err := svc.Login(ctx, client.ClientID, key)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Tokens.Verify(token)
	require.NoError(t, err)
	require.Equal(t, client.ClientID, claims.Subject)
	require.WithinDuration(t,
		time.Now().Add(jwtx.DefaultAccessTokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	clients := newFakeClients()
	svc := newAuthService(t, clients)
	ctx := context.Background()

	client, _, err := svc.Register(ctx, "a@x.com", "A")
	require.NoError(t, err)

	// Unknown client_id and wrong key collapse to the same sentinel.
	_, unknownErr := svc.Login(ctx, "CL_DOESNOTEXIST", "CK_whatever")
	require.ErrorIs(t, unknownErr, ErrInvalidCredentials)

	_, wrongKeyErr := svc.Login(ctx, client.ClientID, "CK_definitelywrong0000000000000000")
	require.ErrorIs(t, wrongKeyErr, ErrInvalidCredentials)

	require.Equal(t, unknownErr, wrongKeyErr)
}

func TestLogin_InactiveClient(t *testing.T) {
	clients := newFakeClients()
	svc := newAuthService(t, clients)
	ctx := context.Background()

	client, key, err := svc.Register(ctx, "a@x.com", "A")
	require.NoError(t, err)
	require.NoError(t, clients.SetClientActive(ctx, client.ClientID, false))

	_, err = svc.Login(ctx, client.ClientID, key)
	require.ErrorIs(t, err, ErrAccountDisabled)
}

func TestAuthenticate(t *testing.T) {
	clients := newFakeClients()
	svc := newAuthService(t, clients)
	ctx := context.Background()

	client, key, err := svc.Register(ctx, "a@x.com", "A")
	require.NoError(t, err)
	token, err := svc.Login(ctx, client.ClientID, key)
	require.NoError(t, err)

	got, err := svc.Authenticate(ctx, token)
	require.NoError(t, err)
	require.Equal(t, client.ClientID, got.ClientID)
	require.Equal(t, "a@x.com", got.Email)
}

func TestAuthenticate_BadTokens(t *testing.T) {
	clients := newFakeClients()
	svc := newAuthService(t, clients)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "a@x.com", "A")
	require.NoError(t, err)

	forged, err := jwtx.NewHS256([]byte("another-key-entirely-32-bytes!!!"))
	require.NoError(t, err)
	forgedToken, err := forged.Sign(jwtx.NewAccessClaims("CL_FORGED", "menu-api-test", time.Hour, time.Now()))
	require.NoError(t, err)

	expiredToken, err := svc.Tokens.Sign(
		jwtx.NewAccessClaims("CL_FORGED", "menu-api-test", time.Hour, time.Now().Add(-2*time.Hour)))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"empty", ""},
		{"forged signature", forgedToken},
		{"expired", expiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Authenticate(ctx, tt.token)
			require.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestAuthenticate_UnknownSubject(t *testing.T) {
	clients := newFakeClients()
	svc := newAuthService(t, clients)

	// Structurally valid token whose subject has no client record: same
	// outcome as an invalid token.
	token, err := svc.Tokens.Sign(jwtx.NewAccessClaims("CL_VANISHED0000", "menu-api-test", time.Hour, time.Now()))
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), token)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_DeactivationIsImmediate(t *testing.T) {
	clients := newFakeClients()
	svc := newAuthService(t, clients)
	ctx := context.Background()

	client, key, err := svc.Register(ctx, "a@x.com", "A")
	require.NoError(t, err)
	token, err := svc.Login(ctx, client.ClientID, key)
	require.NoError(t, err)

	// The token is valid for 30 days, but the active flag is re-checked on
	// every request.
	require.NoError(t, clients.SetClientActive(ctx, client.ClientID, false))

	_, err = svc.Authenticate(ctx, token)
	require.ErrorIs(t, err, ErrAccountDisabled)
}
