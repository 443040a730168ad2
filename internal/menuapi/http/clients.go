package http

import (
	"net/http"
	"time"

	"github.com/d3r-restaurant/menu-api/internal/menuapi/domain"
	"github.com/d3r-restaurant/menu-api/internal/menuapi/service"
	"github.com/d3r-restaurant/menu-api/pkg/apisdk"
	"github.com/d3r-restaurant/menu-api/pkg/httpx"
	"github.com/d3r-restaurant/menu-api/pkg/slogx"
)

// ClientInfoHandler serves GET /api/auth/client-info, returning the profile
// of the authenticated caller.
type ClientInfoHandler struct{}

func (h *ClientInfoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	client, ok := ClientFromContext(r.Context())
	if !ok {
		apisdk.ErrInvalidCredentials.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toClientInfo(client))
}

// ClientsHandler serves GET /api/auth/clients.
type ClientsHandler struct {
	AuthService *service.AuthService
}

func (h *ClientsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	clients, err := h.AuthService.ListClients(ctx)
	if err != nil {
		log.Error("listing clients failed", "err", err)
		apisdk.ErrServerError.WriteError(w)
		return
	}

	infos := make([]apisdk.ClientInfo, 0, len(clients))
	for _, c := range clients {
		infos = append(infos, toClientInfo(c))
	}

	httpx.WriteJSON(w, http.StatusOK, apisdk.ListClientsResponse{Clients: infos})
}

// toClientInfo maps a client record to its wire shape. The key hash never
// leaves the server.
func toClientInfo(c domain.Client) apisdk.ClientInfo {
	return apisdk.ClientInfo{
		ClientID:  c.ClientID,
		Email:     c.Email,
		Name:      c.Name,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
	}
}
