package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/andean-bank/movements-backend/internal/bootstrap"
	"github.com/andean-bank/movements-backend/internal/config"
	"github.com/andean-bank/movements-backend/internal/handlers"
	"github.com/andean-bank/movements-backend/internal/response"
	"github.com/andean-bank/movements-backend/internal/router"
	"github.com/andean-bank/movements-backend/internal/services"
	"github.com/andean-bank/movements-backend/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// .env is optional outside local development
	godotenv.Load()

	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// stores
	mstore := store.NewMovementStore(bs.Redis)

	// services
	mserv := services.NewMovementService(mstore)
	dserv := services.NewDetailService(mstore)

	// response handler
	rh := response.New(cfg.ExposeErrorDetails())

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.MovementSvc = mserv
	deps.DetailSvc = dserv

	// router
	r := router.NewRouter(deps)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		bs.Log.Info("server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			bs.Log.Error("server start failed", "error", err)
			os.Exit(1)
		}
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	exitOnError("server shutdown failed", srv.Shutdown(shutdownCtx), bs.Log)
	bs.Log.Info("server stopped")
}
