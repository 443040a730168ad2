package service

import (
	"context"
	"errors"
	"time"

	"github.com/d3r-restaurant/menu-api/internal/menuapi/domain"
	"github.com/d3r-restaurant/menu-api/internal/menuapi/store"
	"github.com/d3r-restaurant/menu-api/pkg/cryptox"
	"github.com/d3r-restaurant/menu-api/pkg/idx"
	"github.com/d3r-restaurant/menu-api/pkg/jwtx"
	"github.com/d3r-restaurant/menu-api/pkg/slogx"
)

var (
	// ErrEmailTaken is returned when registering with an email that already
	// has a client. Safe to surface with a specific message.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials collapses every credential-shaped failure:
	// unknown client_id, wrong client_key, malformed/expired/forged token,
	// and token subjects that resolve to no client. Callers must not learn
	// which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountDisabled is returned when the credential is structurally
	// valid but the client account is deactivated.
	ErrAccountDisabled = errors.New("account disabled")
)

// TokenCodec signs and verifies access tokens.
type TokenCodec interface {
	jwtx.Signer
	jwtx.Verifier
}

// AuthService owns the credential issuance and token authentication flows.
// The client store is injected as a narrow lookup/create capability rather
// than reached through any global connection.
type AuthService struct {
	Clients  store.Clients
	Tokens   TokenCodec
	Issuer   string
	TokenTTL time.Duration
	HashCost int
}

// Register issues credentials for a new client and persists the hashed key.
// The returned plaintext key exists only here and in the registration
// response; afterwards the system retains no means of recovering it.
func (s *AuthService) Register(ctx context.Context, email, name string) (domain.Client, string, error) {
	l := slogx.FromContext(ctx)

	// Reject duplicates up front for a specific validation message.
	_, err := s.Clients.GetClientByEmail(ctx, email)
	switch {
	case err == nil:
		return domain.Client{}, "", ErrEmailTaken
	case !errors.Is(err, store.ErrNotFound):
		return domain.Client{}, "", err
	}

	clientID, err := cryptox.GenerateClientID()
	if err != nil {
		return domain.Client{}, "", err
	}
	clientKey, err := cryptox.GenerateClientKey()
	if err != nil {
		return domain.Client{}, "", err
	}
	keyHash, err := cryptox.HashKey(clientKey, s.HashCost)
	if err != nil {
		return domain.Client{}, "", err
	}

	client := domain.Client{
		ID:        idx.New().String(),
		ClientID:  clientID,
		KeyHash:   keyHash,
		Email:     email,
		Name:      name,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Clients.CreateClient(ctx, client); err != nil {
		// The unique indexes re-check both email (a registration race) and
		// client_id (the astronomically unlikely generator collision).
		if errors.Is(err, store.ErrAlreadyExists) {
			l.Warn("client insert rejected by unique index", "email", email)
			return domain.Client{}, "", ErrEmailTaken
		}
		return domain.Client{}, "", err
	}

	l.Info("client registered", "client_id", clientID)
	return client, clientKey, nil
}

// Login verifies an id/key pair and issues a signed bearer token. Unknown
// identifiers and wrong keys are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, clientID, clientKey string) (string, error) {
	l := slogx.FromContext(ctx)

	client, err := s.Clients.GetClientByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Info("login failed: unknown client_id")
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := cryptox.VerifyKey(clientKey, client.KeyHash); err != nil {
		l.Info("login failed: key verification failed", "client_id", clientID)
		return "", ErrInvalidCredentials
	}

	if !client.IsActive {
		l.Info("login rejected: client inactive", "client_id", clientID)
		return "", ErrAccountDisabled
	}

	claims := jwtx.NewAccessClaims(client.ClientID, s.Issuer, s.TokenTTL, time.Now())
	token, err := s.Tokens.Sign(claims)
	if err != nil {
		return "", err
	}

	l.Info("token issued", "client_id", clientID)
	return token, nil
}

// Authenticate resolves a bearer token to the calling client. The active
// flag is re-read from the store on every call, so deactivation takes effect
// immediately regardless of the token's remaining lifetime.
func (s *AuthService) Authenticate(ctx context.Context, token string) (domain.Client, error) {
	l := slogx.FromContext(ctx)

	claims, err := s.Tokens.Verify(token)
	if err != nil {
		// The distinction stays in the logs only.
		l.Warn("token verification failed", "err", err)
		return domain.Client{}, ErrInvalidCredentials
	}

	client, err := s.Clients.GetClientByClientID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Warn("token subject resolves to no client")
			return domain.Client{}, ErrInvalidCredentials
		}
		return domain.Client{}, err
	}

	if !client.IsActive {
		l.Info("request rejected: client inactive", "client_id", client.ClientID)
		return domain.Client{}, ErrAccountDisabled
	}

	return client, nil
}

// ListClients returns every registered client.
func (s *AuthService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.Clients.ListClients(ctx)
}
