package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/d3r-restaurant/menu-api/internal/menuapi/service"
	"github.com/d3r-restaurant/menu-api/internal/menuapi/store"
	"github.com/d3r-restaurant/menu-api/pkg/httpx"
	"github.com/d3r-restaurant/menu-api/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store       store.Store
	AuthService *service.AuthService
	MenuService *service.MenuService
}

func NewRouter(
	buildVersion string,
	corsOrigins []string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(corsOrigins),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerMenu()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// POST /register - strict rate limit by IP (credential issuance)
	registerHandler := &RegisterHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /api/auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /login - strict rate limit by IP (brute force prevention)
	loginHandler := &LoginHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET /client-info - authenticated, lenient rate limit
	r.Mux.Handle("GET /api/auth/client-info",
		httpx.Chain(&ClientInfoHandler{},
			AuthnMiddleware(r.AuthService),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// GET /clients - authenticated, lenient rate limit
	r.Mux.Handle("GET /api/auth/clients",
		httpx.Chain(&ClientsHandler{AuthService: r.AuthService},
			AuthnMiddleware(r.AuthService),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerMenu() {
	h := &MenuHandler{MenuService: r.MenuService}

	// Catalog reads are public
	r.Mux.Handle("GET /api/menu/{$}",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /api/menu/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// Mutations require a valid bearer token
	r.Mux.Handle("POST /api/menu/{$}",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			AuthnMiddleware(r.AuthService),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PUT /api/menu/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			AuthnMiddleware(r.AuthService),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("DELETE /api/menu/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			AuthnMiddleware(r.AuthService),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /{$}",
		httpx.Chain(WelcomeHandler(),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
