package handlers

import (
	"net/http"
)

// Health is the liveness probe.
func (h *movementHandlers) Health(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
