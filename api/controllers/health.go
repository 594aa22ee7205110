package controllers

import (
	"net/http"

	"github.com/stockroomhq/stockroom-backend/api/responses"
)

// Liveness handles GET /health/live.
func Liveness() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteData(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
