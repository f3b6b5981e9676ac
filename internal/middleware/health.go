package middleware

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthHandler reports process liveness. There is nothing behind this
// service to check — no database, no broker — so healthy means "up".
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now(),
	})
}
