package response

import (
	"net/http"
)

type ResponseHandler interface {
	WriteJSON(w http.ResponseWriter, r *http.Request, status int, data any)
	WriteError(w http.ResponseWriter, r *http.Request, status int, mensaje, detalles string)
	HandleError(w http.ResponseWriter, r *http.Request, err error)
}

type responseHandler struct {
	// exposeDetails lets internal error codes surface in detalles; off in
	// production-like deployments.
	exposeDetails bool
}

func New(exposeDetails bool) *responseHandler {
	return &responseHandler{exposeDetails: exposeDetails}
}
