package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/andean-bank/movements-backend/internal/middleware"
	"github.com/andean-bank/movements-backend/internal/models"
	"github.com/andean-bank/movements-backend/internal/response"
)

// Request headers carrying the account identifiers. Matched
// case-insensitively by net/http.
const (
	HeaderAccountNumber = "x_numero_cuenta"
	HeaderCardNumber    = "x_numero_tarjeta"
	HeaderMovementID    = "x_movimiento_id"
)

type MovementService interface {
	ListMovements(ctx context.Context, kind models.AccountKind, identifier string) ([]models.MovementSummary, error)
}

type DetailService interface {
	GetDetail(ctx context.Context, kind models.AccountKind, identifier, movementID string) (*models.MovementDetail, error)
}

type movementHandlers struct {
	ResponseHandler response.ResponseHandler
	MovementSvc     MovementService
	DetailSvc       DetailService
}

func NewMovementHandlers(deps *Deps) *movementHandlers {
	return &movementHandlers{
		ResponseHandler: deps.ResponseHandler,
		MovementSvc:     deps.MovementSvc,
		DetailSvc:       deps.DetailSvc,
	}
}

func (h *movementHandlers) MovementRoutes() chi.Router {
	r := chi.NewRouter()

	requireAccount := middleware.RequireHeaders(h.ResponseHandler, HeaderAccountNumber)
	requireAccountDetail := middleware.RequireHeaders(h.ResponseHandler, HeaderAccountNumber, HeaderMovementID)
	requireCard := middleware.RequireHeaders(h.ResponseHandler, HeaderCardNumber)
	requireCardDetail := middleware.RequireHeaders(h.ResponseHandler, HeaderCardNumber, HeaderMovementID)

	r.With(requireAccount).Get("/savings", h.ListSavings)
	r.With(requireAccountDetail).Get("/savings/detail", h.SavingsDetail)
	r.With(requireAccount).Get("/checking", h.ListChecking)
	r.With(requireAccountDetail).Get("/checking/detail", h.CheckingDetail)
	r.With(requireCard).Get("/card", h.ListCard)
	r.With(requireCardDetail).Get("/card/detail", h.CardDetail)

	return r
}

func (h *movementHandlers) ListSavings(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, models.KindSavings, HeaderAccountNumber)
}

func (h *movementHandlers) ListChecking(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, models.KindChecking, HeaderAccountNumber)
}

func (h *movementHandlers) ListCard(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, models.KindCard, HeaderCardNumber)
}

func (h *movementHandlers) SavingsDetail(w http.ResponseWriter, r *http.Request) {
	h.detail(w, r, models.KindSavings, HeaderAccountNumber)
}

func (h *movementHandlers) CheckingDetail(w http.ResponseWriter, r *http.Request) {
	h.detail(w, r, models.KindChecking, HeaderAccountNumber)
}

func (h *movementHandlers) CardDetail(w http.ResponseWriter, r *http.Request) {
	h.detail(w, r, models.KindCard, HeaderCardNumber)
}

func (h *movementHandlers) list(w http.ResponseWriter, r *http.Request, kind models.AccountKind, header string) {
	identifier := r.Header.Get(header)

	movements, err := h.MovementSvc.ListMovements(r.Context(), kind, identifier)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteJSON(w, r, http.StatusOK, movements)
}

func (h *movementHandlers) detail(w http.ResponseWriter, r *http.Request, kind models.AccountKind, header string) {
	identifier := r.Header.Get(header)
	movementID := r.Header.Get(HeaderMovementID)

	detail, err := h.DetailSvc.GetDetail(r.Context(), kind, identifier, movementID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteJSON(w, r, http.StatusOK, detail)
}
