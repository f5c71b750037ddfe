package types

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is the flat error object this service speaks on the wire:
// {"error": "<message>"}.
type APIError struct {
	Error string `json:"error"`
}

// NewAPIError creates a new API error.
func NewAPIError(message string) *APIError {
	return &APIError{Error: message}
}

// WriteError writes an API error to the response writer.
func WriteError(w http.ResponseWriter, statusCode int, err *APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(err)
}

// Common error constructors

// ErrNotFound creates the unknown-route error.
func ErrNotFound() *APIError {
	return NewAPIError("Endpoint not found")
}

// ErrMissingCredential creates the missing-server-credential error for a
// provider. The message names the missing configuration so operators can
// tell which key to set.
func ErrMissingCredential(providerName string) *APIError {
	return NewAPIError(fmt.Sprintf("%s API key not configured on server", providerName))
}

// ErrServer wraps a caught error into the generic server error payload.
func ErrServer(err error) *APIError {
	return NewAPIError(fmt.Sprintf("Server error: %s", err.Error()))
}
