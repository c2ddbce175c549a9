package health

import (
	"encoding/json"
	"net/http"
)

// Handler responds to health checks. Plain net/http so it works with or
// without the gin router in front of it.
func Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"message": "medsbuddy api is running",
	})
}
