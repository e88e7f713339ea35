package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/andean-bank/movements-backend/internal/handlers"
	"github.com/andean-bank/movements-backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	lm := middleware.NewLoggerMiddleware(deps.Log)
	r.Use(lm.LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)

	mh := handlers.NewMovementHandlers(deps)

	r.Get("/health", mh.Health)
	r.Mount("/movements", mh.MovementRoutes())
	return r
}
