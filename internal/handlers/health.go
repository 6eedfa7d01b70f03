package handlers

import (
	"encoding/json"
	"net/http"
)

// HealthResponse identifies the service and what it can do
// swagger:model HealthResponse
type HealthResponse struct {
	// default: zar-bot
	Name string `json:"name"`
	// default: online
	Status string `json:"status"`
	// default: N/A
	Version  string   `json:"version"`
	Commands []string `json:"commands"`
}

// Commands advertised by the health check.
var healthCommands = []string{"convert", "rates", "odds", "whatsapp endpoint", "telegram"}

// NewHealthHandler reports that the service is up.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Service online"
// @Router / [get]
func NewHealthHandler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(HealthResponse{
			Name:     "zar-bot",
			Status:   "online",
			Version:  version,
			Commands: healthCommands,
		})
	}
}
