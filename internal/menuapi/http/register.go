package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"github.com/d3r-restaurant/menu-api/internal/menuapi/service"
	"github.com/d3r-restaurant/menu-api/pkg/apisdk"
	"github.com/d3r-restaurant/menu-api/pkg/httpx"
	"github.com/d3r-restaurant/menu-api/pkg/slogx"
)

// registerMessage accompanies the one-time plaintext key in the response.
const registerMessage = "Save your client_key securely. It cannot be retrieved later."

// RegisterHandler serves POST /api/auth/register.
type RegisterHandler struct {
	AuthService *service.AuthService
}

func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req apisdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apisdk.ErrInvalidRequest.WriteError(w)
		return
	}

	email := strings.TrimSpace(req.Email)
	name := strings.TrimSpace(req.Name)
	if email == "" || name == "" {
		apisdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if _, err := mail.ParseAddress(email); err != nil {
		apisdk.ErrInvalidRequest.WriteError(w)
		return
	}

	client, clientKey, err := h.AuthService.Register(ctx, email, name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			apisdk.ErrEmailTaken.WriteError(w)
		default:
			log.Error("registration failed", "err", err)
			apisdk.ErrServerError.WriteError(w)
		}
		return
	}

	// The plaintext key appears in this response and nowhere else.
	httpx.WriteJSON(w, http.StatusCreated, apisdk.RegisterResponse{
		ClientID:  client.ClientID,
		ClientKey: clientKey,
		Email:     client.Email,
		Name:      client.Name,
		Message:   registerMessage,
	})
}
