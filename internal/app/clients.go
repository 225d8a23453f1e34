package app

import (
	"context"

	goredis "github.com/redis/go-redis/v9"

	redisclient "github.com/yungbote/panchayat-backend/internal/clients/redis"
	"github.com/yungbote/panchayat-backend/internal/platform/cache"
	"github.com/yungbote/panchayat-backend/internal/platform/logger"
)

type Clients struct {
	Redis *goredis.Client
	Cache cache.Cache
}

// wireClients connects optional external clients. A configured but unreachable redis is
// logged and the read cache falls back to a no-op.
func wireClients(ctx context.Context, log *logger.Logger, cfg Config) Clients {
	out := Clients{Cache: cache.Noop()}
	if cfg.RedisAddr == "" {
		log.Info("REDIS_ADDR not set; read cache disabled")
		return out
	}
	rdb, err := redisclient.NewClient(ctx, log, redisclient.Config{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Warn("redis unavailable; read cache disabled", "error", err)
		return out
	}
	out.Redis = rdb
	out.Cache = cache.NewRedis(rdb)
	return out
}

func (c Clients) Close() {
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
}
