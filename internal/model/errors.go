package model

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is the JSON error body returned by the API. The auth failure
// bodies are part of the frontend contract and use fixed generic messages:
// a 401 never reveals whether the token was missing, expired, or had a bad
// signature.
type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("[%d] %s", e.Status, e.Message)
}

// WriteJSON writes the error as a JSON response
func (e *APIError) WriteJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	_ = json.NewEncoder(w).Encode(e)
}

// Common error constructors

func NewUnauthorizedError() *APIError {
	return &APIError{
		Status:  http.StatusUnauthorized,
		Message: "Unauthorized access",
	}
}

func NewForbiddenError() *APIError {
	return &APIError{
		Status:  http.StatusForbidden,
		Message: "Forbidden access",
	}
}

func NewBadRequestError(detail string) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Message: detail,
	}
}

func NewNotFoundError(resource string) *APIError {
	return &APIError{
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func NewInternalError(detail string) *APIError {
	if detail == "" {
		detail = "An unexpected error occurred"
	}
	return &APIError{
		Status:  http.StatusInternalServerError,
		Message: detail,
	}
}
