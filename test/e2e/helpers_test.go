package e2e_test

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"

	httpapi "github.com/d3r-restaurant/menu-api/internal/menuapi/http"
	"github.com/d3r-restaurant/menu-api/internal/menuapi/service"
	"github.com/d3r-restaurant/menu-api/internal/menuapi/store/drivers/sqlite"
	"github.com/d3r-restaurant/menu-api/pkg/apisdk"
	"github.com/d3r-restaurant/menu-api/pkg/jwtx"
	"github.com/d3r-restaurant/menu-api/pkg/slogx"
	"github.com/stretchr/testify/require"
)

/*
 * Common helpers for the menu API end-to-end tests. The full application
 * stack (router, services, SQLite store) runs in-process behind an
 * httptest.Server and is exercised through the apisdk client.
 */

const (
	testSigningKey = "e2e-signing-key-32-bytes-long!!!"
	testIssuer     = "menu-api-e2e"
)

// testEnv is one running service instance plus direct store access for
// fixtures the API deliberately has no endpoint for (e.g. deactivation).
type testEnv struct {
	SDK   *apisdk.Client
	Store *sqlite.Store
}

// newTestServer boots a complete service instance on a fresh database and
// returns an SDK client pointed at it.
func newTestServer(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore("file:" + filepath.Join(t.TempDir(), "e2e.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	codec, err := jwtx.NewHS256([]byte(testSigningKey))
	require.NoError(t, err)

	logger := slogx.New(slogx.Config{
		Service: "menu-api",
		Version: "e2e",
		Env:     "test",
		Level:   "error",
		Format:  "text",
	})

	router := httpapi.NewRouter("e2e", []string{"*"}, st, logger)
	router.AuthService = &service.AuthService{
		Clients:  st.Clients(),
		Tokens:   codec,
		Issuer:   testIssuer,
		TokenTTL: jwtx.DefaultAccessTokenTTL,
		HashCost: 4, // keep bcrypt fast in tests
	}
	router.MenuService = &service.MenuService{Items: st.MenuItems()}
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testEnv{
		SDK:   apisdk.NewClient(server.URL),
		Store: st,
	}
}

// registerAndLogin registers a fresh client and attaches its bearer token to
// the SDK client.
func registerAndLogin(t *testing.T, sdk *apisdk.Client, email, name string) *apisdk.RegisterResponse {
	t.Helper()
	ctx := context.Background()

	reg, err := sdk.Register(ctx, email, name)
	require.NoError(t, err)

	token, err := sdk.Login(ctx, reg.ClientID, reg.ClientKey)
	require.NoError(t, err)
	sdk.SetToken(token.AccessToken)

	return reg
}

// requireAPIError asserts that err is an *apisdk.APIError with the given
// status and code.
func requireAPIError(t *testing.T, err error, status int, code string) *apisdk.APIError {
	t.Helper()

	apiErr := &apisdk.APIError{}
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
	return apiErr
}
