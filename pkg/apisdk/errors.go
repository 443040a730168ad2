package apisdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/d3r-restaurant/menu-api/pkg/httpx"
)

// Error codes returned by the API.
const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeValidationError    = "validation_error"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeAccountDisabled    = "account_disabled"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeServerError        = "server_error"
)

// APIError represents an error response body. It implements the error
// interface and is used both by the server (to write HTTP responses) and by
// the SDK client (to represent errors).
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code (e.g., "invalid_credentials")
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

var (
	// ErrInvalidRequest is returned when the request body is malformed or
	// missing required fields.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	// ErrEmailTaken is returned when registration is attempted with an email
	// that already has a client. Recoverable: pick a different email.
	ErrEmailTaken = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeValidationError,
		Description: "email already registered",
	}

	// ErrInvalidCredentials covers every credential-shaped failure: unknown
	// client_id, wrong client_key, malformed/expired/forged token. The
	// message is deliberately generic so callers can't probe which check
	// failed.
	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredentials,
		Description: "invalid client_id or client_key",
	}

	// ErrAccountDisabled is returned when credentials are structurally valid
	// but the client account has been deactivated. Distinct from
	// ErrInvalidCredentials: this is not a secret-guessing signal.
	ErrAccountDisabled = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeAccountDisabled,
		Description: "client account is inactive",
	}

	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "resource not found",
	}

	// ErrServerError is returned for unexpected internal failures.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)
