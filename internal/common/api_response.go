package common

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the JSON error body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondJSON writes data as the response body with the given status code.
// Success bodies are the entity or record list itself, no envelope.
func RespondJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("JSON encode failed: %v", err)
	}
}

// RespondError writes a standardized {"error": message} body.
func RespondError(w http.ResponseWriter, code int, message string) {
	RespondJSON(w, code, ErrorResponse{Error: message})
}
