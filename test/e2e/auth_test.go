package e2e_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/d3r-restaurant/menu-api/pkg/apisdk"
	"github.com/stretchr/testify/require"
)

func TestAuth_RegisterLoginClientInfo(t *testing.T) {
	env := newTestServer(t)
	ctx := context.Background()

	reg, err := env.SDK.Register(ctx, "owner@restaurant.test", "Front of House")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(reg.ClientID, "CL_"), "client_id %q", reg.ClientID)
	require.True(t, strings.HasPrefix(reg.ClientKey, "CK_"), "client_key %q", reg.ClientKey)
	require.Equal(t, "owner@restaurant.test", reg.Email)
	require.Equal(t, "Front of House", reg.Name)
	require.NotEmpty(t, reg.Message)

	token, err := env.SDK.Login(ctx, reg.ClientID, reg.ClientKey)
	require.NoError(t, err)
	require.NotEmpty(t, token.AccessToken)
	require.Equal(t, "bearer", token.TokenType)

	env.SDK.SetToken(token.AccessToken)

	info, err := env.SDK.ClientInfo(ctx)
	require.NoError(t, err)
	require.Equal(t, reg.ClientID, info.ClientID)
	require.Equal(t, "owner@restaurant.test", info.Email)
	require.True(t, info.IsActive)
	require.NotEmpty(t, info.CreatedAt)
}

func TestAuth_DuplicateEmail(t *testing.T) {
	env := newTestServer(t)
	ctx := context.Background()

	_, err := env.SDK.Register(ctx, "dup@restaurant.test", "First")
	require.NoError(t, err)

	_, err = env.SDK.Register(ctx, "dup@restaurant.test", "Second")
	requireAPIError(t, err, http.StatusBadRequest, apisdk.ErrorCodeValidationError)
}

func TestAuth_InvalidRegistrations(t *testing.T) {
	env := newTestServer(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		email string
		owner string
	}{
		{"missing email", "", "Someone"},
		{"missing name", "a@restaurant.test", ""},
		{"not an email", "not-an-email", "Someone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.SDK.Register(ctx, tt.email, tt.owner)
			requireAPIError(t, err, http.StatusBadRequest, apisdk.ErrorCodeInvalidRequest)
		})
	}
}

func TestAuth_LoginFailuresAreGeneric(t *testing.T) {
	env := newTestServer(t)
	ctx := context.Background()

	reg, err := env.SDK.Register(ctx, "generic@restaurant.test", "G")
	require.NoError(t, err)

	// Wrong key and unknown client_id produce byte-identical error bodies.
	wrongKey := requireAPIError(t,
		errFromLogin(ctx, env.SDK, reg.ClientID, "CK_wrong00000000000000000000000000"),
		http.StatusUnauthorized, apisdk.ErrorCodeInvalidCredentials)

	unknownID := requireAPIError(t,
		errFromLogin(ctx, env.SDK, "CL_UNKNOWN00000", reg.ClientKey),
		http.StatusUnauthorized, apisdk.ErrorCodeInvalidCredentials)

	require.Equal(t, wrongKey.Description, unknownID.Description)
}

func TestAuth_DisabledAccount(t *testing.T) {
	env := newTestServer(t)
	ctx := context.Background()

	reg := registerAndLogin(t, env.SDK, "disabled@restaurant.test", "D")

	// Deactivate while a 30-day token is still outstanding.
	require.NoError(t, env.Store.Clients().SetClientActive(ctx, reg.ClientID, false))

	_, err := env.SDK.ClientInfo(ctx)
	requireAPIError(t, err, http.StatusForbidden, apisdk.ErrorCodeAccountDisabled)

	// A fresh login is refused too, with the distinct disabled error.
	_, err = env.SDK.Login(ctx, reg.ClientID, reg.ClientKey)
	requireAPIError(t, err, http.StatusForbidden, apisdk.ErrorCodeAccountDisabled)
}

func TestAuth_ProtectedRoutesRequireToken(t *testing.T) {
	env := newTestServer(t)
	ctx := context.Background()

	_, err := env.SDK.ClientInfo(ctx)
	requireAPIError(t, err, http.StatusUnauthorized, apisdk.ErrorCodeInvalidCredentials)

	env.SDK.SetToken("not.a.valid.token")
	_, err = env.SDK.ClientInfo(ctx)
	requireAPIError(t, err, http.StatusUnauthorized, apisdk.ErrorCodeInvalidCredentials)
}

func TestAuth_ListClients(t *testing.T) {
	env := newTestServer(t)
	ctx := context.Background()

	_, err := env.SDK.Register(ctx, "one@restaurant.test", "One")
	require.NoError(t, err)
	registerAndLogin(t, env.SDK, "two@restaurant.test", "Two")

	list, err := env.SDK.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, list.Clients, 2)

	for _, c := range list.Clients {
		require.True(t, strings.HasPrefix(c.ClientID, "CL_"))
	}
}

func errFromLogin(ctx context.Context, sdk *apisdk.Client, clientID, clientKey string) error {
	_, err := sdk.Login(ctx, clientID, clientKey)
	return err
}
