package handler

import (
	"encoding/json"
	"net/http"
)

// Handler holds cross-cutting HTTP concerns (CORS, health).
type Handler struct {
	frontendURL string
}

// New creates a Handler allowing the given frontend origin.
func New(frontendURL string) *Handler {
	return &Handler{frontendURL: frontendURL}
}

// CORS allows the configured frontend origin and answers preflights.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.frontendURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// apiResponse is the uniform JSON envelope for contact endpoints.
type apiResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
	ID         string `json:"id,omitempty"`
	RetryAfter int    `json:"retryAfter,omitempty"`
}

// writeJSON encodes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
