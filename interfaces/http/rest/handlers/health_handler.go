package handlers

import (
	"net/http"

	"github.com/evanhearne/ds-serverlessREST-lab/pkg/common"
)

// Health handles GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	_ = common.RespondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// Ready handles GET /ready
func Ready(w http.ResponseWriter, r *http.Request) {
	_ = common.RespondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
