package response

import (
	"encoding/json"
	"net/http"

	"github.com/andean-bank/movements-backend/pkg/logger"
)

// WriteJSON writes data as the bare response body. Summaries and details are
// returned without an envelope.
func (h *responseHandler) WriteJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Last-ditch logging; can't return an error now
		log := logger.FromContext(r.Context())
		log.Error("failed to encode response", "error", err)
	}
}
