package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/d3r-restaurant/menu-api/internal/menuapi/service"
	"github.com/d3r-restaurant/menu-api/pkg/apisdk"
	"github.com/d3r-restaurant/menu-api/pkg/httpx"
	"github.com/d3r-restaurant/menu-api/pkg/slogx"
)

// LoginHandler serves POST /api/auth/login.
type LoginHandler struct {
	AuthService *service.AuthService
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req apisdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apisdk.ErrInvalidRequest.WriteError(w)
		return
	}

	clientID := strings.TrimSpace(req.ClientID)
	if clientID == "" || req.ClientKey == "" {
		apisdk.ErrInvalidRequest.WriteError(w)
		return
	}

	token, err := h.AuthService.Login(ctx, clientID, req.ClientKey)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			apisdk.ErrInvalidCredentials.WriteError(w)
		case errors.Is(err, service.ErrAccountDisabled):
			apisdk.ErrAccountDisabled.WriteError(w)
		default:
			log.Error("login failed", "err", err)
			apisdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, apisdk.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
