package handlers

import (
	"log/slog"

	"github.com/andean-bank/movements-backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	MovementSvc     MovementService
	DetailSvc       DetailService
}
