package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/andean-bank/movements-backend/internal/models"
)

type movementStore struct {
	client *redis.Client
}

func NewMovementStore(client *redis.Client) *movementStore {
	return &movementStore{client: client}
}

func indexKey(kind models.AccountKind, identifier string) string {
	return fmt.Sprintf("movimientos:%s:%s", kind, identifier)
}

func movementKey(id string) string {
	return fmt.Sprintf("movimiento:%s", id)
}

// IndexExists reports whether a movement list is stored for the account.
func (s *movementStore) IndexExists(ctx context.Context, kind models.AccountKind, identifier string) (bool, error) {
	n, err := s.client.Exists(ctx, indexKey(kind, identifier)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListIdentifiers reads the full ordered movement id list in one pass.
// An absent key yields an empty slice, not an error.
func (s *movementStore) ListIdentifiers(ctx context.Context, kind models.AccountKind, identifier string) ([]string, error) {
	return s.client.LRange(ctx, indexKey(kind, identifier), 0, -1).Result()
}

// GetFields reads every stored field of one movement. An empty map is the
// absent sentinel; Redis reports a missing hash the same way.
func (s *movementStore) GetFields(ctx context.Context, movementID string) (map[string]string, error) {
	return s.client.HGetAll(ctx, movementKey(movementID)).Result()
}
