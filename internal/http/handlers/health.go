package handlers

import "net/http"

// HealthStatus reports which optional integrations are configured. Mirrors
// what operators check first when the bot misbehaves.
type HealthStatus struct {
	Status         string `json:"status"`
	OpenAIKeySet   bool   `json:"openai_key_set"`
	DatabaseSet    bool   `json:"database_set"`
	RedisSet       bool   `json:"redis_set"`
	SheetsSet      bool   `json:"sheets_set"`
	EmailAlertsSet bool   `json:"email_alerts_set"`
}

// Health returns a handler that reports service liveness and integration
// configuration.
func Health(status HealthStatus) http.HandlerFunc {
	status.Status = "ok"
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, status)
	}
}
