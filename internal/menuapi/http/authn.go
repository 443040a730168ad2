package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/d3r-restaurant/menu-api/internal/menuapi/domain"
	"github.com/d3r-restaurant/menu-api/internal/menuapi/service"
	"github.com/d3r-restaurant/menu-api/pkg/apisdk"
	"github.com/d3r-restaurant/menu-api/pkg/httpx"
	"github.com/d3r-restaurant/menu-api/pkg/slogx"
)

type clientContextKey struct{}

// ClientFromContext returns the authenticated client stored by
// AuthnMiddleware. The second return is false on unauthenticated requests.
func ClientFromContext(ctx context.Context) (domain.Client, bool) {
	c, ok := ctx.Value(clientContextKey{}).(domain.Client)
	return c, ok
}

// AuthnMiddleware authenticates the bearer token and stores the resolved
// client on the request context. Requests that fail authentication never
// reach the wrapped handler.
//
// Every token-shaped failure maps to the same 401 response; only a
// deactivated account is reported distinctly, with a 403.
func AuthnMiddleware(auth *service.AuthService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			token, ok := bearerToken(r)
			if !ok {
				w.Header().Set("WWW-Authenticate", `Bearer realm="menu-api"`)
				apisdk.ErrInvalidCredentials.WriteError(w)
				return
			}

			client, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				switch {
				case errors.Is(err, service.ErrInvalidCredentials):
					w.Header().Set("WWW-Authenticate", `Bearer realm="menu-api", error="invalid_token"`)
					apisdk.ErrInvalidCredentials.WriteError(w)
				case errors.Is(err, service.ErrAccountDisabled):
					apisdk.ErrAccountDisabled.WriteError(w)
				default:
					log.Error("authentication failed", "err", err)
					apisdk.ErrServerError.WriteError(w)
				}
				return
			}

			ctx := context.WithValue(r.Context(), clientContextKey{}, client)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer ..." header.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
