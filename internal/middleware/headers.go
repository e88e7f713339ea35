package middleware

import (
	"net/http"
	"strings"

	"github.com/andean-bank/movements-backend/internal/response"
	"github.com/andean-bank/movements-backend/internal/validate"
)

// RequireHeaders short-circuits requests missing any of the named headers
// before the service layer runs. The 400 body lists every missing name in
// declared order.
func RequireHeaders(rh response.ResponseHandler, required ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			missing := validate.MissingHeaders(required, r.Header)
			if len(missing) > 0 {
				rh.WriteError(w, r, http.StatusBadRequest,
					"Headers requeridos faltantes",
					"Faltan los siguientes headers: "+strings.Join(missing, ", "))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
