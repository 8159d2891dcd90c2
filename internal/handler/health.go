package handler

import "net/http"

type pingResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// Ping handles GET /api/ping.
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, pingResponse{OK: true, Message: "pong"})
}
