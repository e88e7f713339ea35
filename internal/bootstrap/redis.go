package bootstrap

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects and verifies the store is reachable. Retry/backoff
// beyond the client defaults is deployment configuration, not ours.
func InitRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return client, nil
}
