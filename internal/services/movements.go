package services

import (
	"context"
	"math"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/andean-bank/movements-backend/internal/errs"
	"github.com/andean-bank/movements-backend/internal/models"
	"github.com/andean-bank/movements-backend/internal/validate"
	"github.com/andean-bank/movements-backend/pkg/logger"
)

// referencePrefixLen is how much of the reference survives in a summary.
const referencePrefixLen = 8

// maxConcurrentLoads bounds the per-movement reads issued at once.
const maxConcurrentLoads = 8

type movementMSStore interface {
	IndexExists(ctx context.Context, kind models.AccountKind, identifier string) (bool, error)
	ListIdentifiers(ctx context.Context, kind models.AccountKind, identifier string) ([]string, error)
	GetFields(ctx context.Context, movementID string) (map[string]string, error)
}

type movementService struct {
	store movementMSStore
}

func NewMovementService(store movementMSStore) *movementService {
	return &movementService{
		store: store,
	}
}

// ListMovements returns the summaries of every movement indexed under the
// account, in stored index order.
func (s *movementService) ListMovements(ctx context.Context, kind models.AccountKind, identifier string) ([]models.MovementSummary, error) {
	log := logger.FromContext(ctx)

	if err := validate.AccountIdentifier(kind, identifier); err != nil {
		return nil, err
	}

	exists, err := s.store.IndexExists(ctx, kind, identifier)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewMovementNotFoundError()
	}

	ids, err := s.store.ListIdentifiers(ctx, kind, identifier)
	if err != nil {
		return nil, err
	}

	// Independent keys: issue the loads concurrently, reassemble in index
	// order before projecting.
	records := make([]map[string]string, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLoads)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			fields, err := s.store.GetFields(gctx, id)
			if err != nil {
				return err
			}
			records[i] = fields
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summaries := make([]models.MovementSummary, 0, len(records))
	for i, fields := range records {
		if fields["id"] == "" {
			// Corrupted or vanished record; list assembly is best-effort.
			log.Warn("skipping movement without id field", "movement_id", ids[i])
			continue
		}
		monto, err := parseAmount(fields["monto"])
		if err != nil {
			log.Error("stored monto is not numeric", "movement_id", fields["id"])
			return nil, err
		}
		summaries = append(summaries, models.MovementSummary{
			ID:          fields["id"],
			Fecha:       fields["fecha"],
			Descripcion: fields["descripcion"],
			Monto:       monto,
			Tipo:        fields["tipo"],
			Referencia:  truncateReference(fields["referencia"]),
		})
	}

	log.Info("movements listed", "kind", string(kind), "count", len(summaries))
	return summaries, nil
}

func truncateReference(ref string) string {
	runes := []rune(ref)
	if len(runes) <= referencePrefixLen {
		return ref
	}
	return string(runes[:referencePrefixLen]) + "..."
}

// parseAmount coerces a stored decimal string. The store is only ever seeded
// with valid numeric text, so any failure is a data-integrity error.
func parseAmount(v string) (float64, error) {
	if v == "" {
		return 0, errs.NewInvalidNumericValueError()
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errs.NewInvalidNumericValueError()
	}
	return f, nil
}
