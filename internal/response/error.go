package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/andean-bank/movements-backend/internal/errs"
	"github.com/andean-bank/movements-backend/pkg/logger"
)

// ErrorResponse is the envelope every failed request produces. Codigo is the
// stringified HTTP status, not the internal error code.
type ErrorResponse struct {
	Codigo    string `json:"codigo"`
	Mensaje   string `json:"mensaje"`
	Detalles  string `json:"detalles"`
	Timestamp string `json:"timestamp"`
}

func (h *responseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, mensaje, detalles string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Codigo:    strconv.Itoa(status),
		Mensaje:   mensaje,
		Detalles:  detalles,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		log := logger.FromContext(r.Context())
		log.Error("failed to encode error response", "error", err, "status", status)
	}
}

// HandleError recovers every service error into a (status, mensaje) pair.
// Nothing propagates unmapped; the default branch is a generic 500.
func (h *responseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	switch e := err.(type) {
	case *errs.ValidationError:
		log.Warn("validation failed", "code", e.Code)
		h.WriteError(w, r, http.StatusBadRequest, e.Message, h.details(e.Code, e.Message))

	case *errs.NotFoundError:
		log.Warn("movement not found", "code", e.Code)
		h.WriteError(w, r, http.StatusNotFound, e.Message, h.details(e.Code, e.Message))

	case *errs.OwnershipError:
		log.Warn("ownership mismatch", "code", e.Code)
		h.WriteError(w, r, http.StatusForbidden, e.Message, h.details(e.Code, e.Message))

	case *errs.DataIntegrityError:
		log.Error("stored data is malformed", "code", e.Code)
		h.WriteError(w, r, http.StatusInternalServerError, e.Message, h.details(e.Code, e.Message))

	default:
		log.Error("unexpected error",
			"error", err,
			"type", fmt.Sprintf("%T", err))
		h.WriteError(w, r, http.StatusInternalServerError, "Error interno del servidor",
			h.details(err.Error(), "Error interno del servidor"))
	}
}

func (h *responseHandler) details(internal, public string) string {
	if h.exposeDetails {
		return internal
	}
	return public
}
