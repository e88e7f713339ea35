package services

import (
	"context"

	"github.com/andean-bank/movements-backend/internal/errs"
	"github.com/andean-bank/movements-backend/internal/models"
	"github.com/andean-bank/movements-backend/internal/validate"
	"github.com/andean-bank/movements-backend/pkg/logger"
)

type movementDSStore interface {
	GetFields(ctx context.Context, movementID string) (map[string]string, error)
}

type detailService struct {
	store movementDSStore
}

func NewDetailService(store movementDSStore) *detailService {
	return &detailService{
		store: store,
	}
}

// GetDetail loads one movement and verifies it belongs to the account the
// caller reached it through. A well-formed movement id must not leak records
// across accounts.
func (s *detailService) GetDetail(ctx context.Context, kind models.AccountKind, identifier, movementID string) (*models.MovementDetail, error) {
	log := logger.FromContext(ctx)

	if err := validate.MovementID(movementID); err != nil {
		return nil, err
	}

	fields, err := s.store.GetFields(ctx, movementID)
	if err != nil {
		return nil, err
	}
	if fields["id"] == "" {
		return nil, errs.NewMovementNotFoundError()
	}

	if fields["tipoCuenta"] != string(kind) {
		log.Warn("movement account kind mismatch",
			"movement_id", movementID,
			"requested_kind", string(kind))
		return nil, errs.NewAccountKindMismatchError()
	}
	if fields["cuenta"] != identifier {
		log.Warn("movement belongs to another account", "movement_id", movementID)
		return nil, errs.NewAccountMismatchError()
	}

	monto, err := parseAmount(fields["monto"])
	if err != nil {
		log.Error("stored monto is not numeric", "movement_id", movementID)
		return nil, err
	}
	saldo, err := parseAmount(fields["saldoPosterior"])
	if err != nil {
		log.Error("stored saldoPosterior is not numeric", "movement_id", movementID)
		return nil, err
	}

	detail := &models.MovementDetail{
		ID:              fields["id"],
		Fecha:           fields["fecha"],
		Descripcion:     fields["descripcion"],
		Monto:           monto,
		Tipo:            fields["tipo"],
		Referencia:      fields["referencia"],
		Establecimiento: fields["establecimiento"],
		SaldoPosterior:  saldo,
		Extras:          extraFields(fields),
	}

	log.Debug("movement detail loaded", "movement_id", movementID)
	return detail, nil
}

// extraFields collects optional stored fields outside the fixed schema.
func extraFields(fields map[string]string) map[string]string {
	var extras map[string]string
	for k, v := range fields {
		if models.IsStoredField(k) {
			continue
		}
		if extras == nil {
			extras = make(map[string]string)
		}
		extras[k] = v
	}
	return extras
}
