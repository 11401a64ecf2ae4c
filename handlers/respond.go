package handlers

import (
	"encoding/json"
	"net/http"
)

// errorResponse is the API's error envelope. Details carries upstream
// diagnostics; stack traces never reach the client.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

func respondError(w http.ResponseWriter, status int, message, details string) {
	respondJSON(w, status, errorResponse{Error: message, Details: details})
}
