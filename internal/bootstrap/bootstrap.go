package bootstrap

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/andean-bank/movements-backend/internal/config"
	"github.com/andean-bank/movements-backend/pkg/logger"
)

type Bootstrap struct {
	Log   *slog.Logger
	Redis *redis.Client
}

func Run(cfg *config.Config) (*Bootstrap, error) {
	var err error
	applicationCtx := context.Background()
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.NewServiceHandler)
	bs.Redis, err = InitRedis(applicationCtx, cfg.RedisURL)
	if err != nil {
		return bs, err
	}

	return bs, nil
}

func (b *Bootstrap) Close() {
	if b.Redis != nil {
		b.Redis.Close()
	}
}
