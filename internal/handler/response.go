package handler

import (
	"encoding/json"
	"net/http"

	"github.com/nexthire/api/internal/model"
)

// InsertResult is the wire shape returned by the insert endpoints.
type InsertResult struct {
	InsertedID   string `json:"insertedId"`
	Acknowledged bool   `json:"acknowledged"`
}

// WriteJSON writes a JSON response with the given status code.
// Documents and collections are written as-is, without an envelope:
// the frontend consumes raw arrays and objects.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteError writes an error response
func WriteError(w http.ResponseWriter, err *model.APIError) {
	err.WriteJSON(w)
}

// DecodeJSON decodes a JSON request body into the given value. Unknown
// fields are allowed: job and application bodies are open documents.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
