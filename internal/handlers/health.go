package handlers

import "net/http"

// Health handles GET /api/health
func Health(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, "Foodie Finder API is running!", map[string]any{"status": "OK"})
}
