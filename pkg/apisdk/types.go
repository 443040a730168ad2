// Package apisdk holds the request and response types of the menu API, shared
// between the HTTP handlers and client code (including the e2e tests).
package apisdk

// ErrorResponse is the JSON shape of every error body.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g., "invalid_credentials")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// RegisterRequest is the body for POST /api/auth/register.
type RegisterRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// RegisterResponse returns the freshly issued credentials. The plaintext
// ClientKey appears here exactly once; only its hash is retained server-side.
type RegisterResponse struct {
	ClientID  string `json:"client_id"`
	ClientKey string `json:"client_key"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Message   string `json:"message"`
}

// LoginRequest is the body for POST /api/auth/login.
type LoginRequest struct {
	ClientID  string `json:"client_id"`
	ClientKey string `json:"client_key"`
}

// TokenResponse is returned from a successful login.
type TokenResponse struct {
	// AccessToken is the signed JWT presented on authenticated requests
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer"
	TokenType string `json:"token_type"`
}

// ClientInfo describes a registered client. The key hash is never exposed.
type ClientInfo struct {
	ClientID  string `json:"client_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

// ListClientsResponse is returned from GET /api/auth/clients.
type ListClientsResponse struct {
	Clients []ClientInfo `json:"clients"`
}

// MenuItem is the wire representation of a catalog entry.
type MenuItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image,omitempty"`
	Popular     bool    `json:"popular"`
	CreatedAt   string  `json:"created_at"`
}

// CreateMenuItemRequest is the body for POST /api/menu/.
type CreateMenuItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image,omitempty"`
	Popular     bool    `json:"popular"`
}

// UpdateMenuItemRequest is the body for PUT /api/menu/{id}. Fields left out
// of the JSON stay untouched; present fields are merged one by one into the
// stored record.
type UpdateMenuItemRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Popular     *bool    `json:"popular,omitempty"`
}

// WelcomeResponse is returned from GET /.
type WelcomeResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned from the health endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports per-dependency status in readiness probes.
type HealthChecks struct {
	Database string `json:"database"`
}
