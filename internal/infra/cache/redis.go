package cache

import (
	"github.com/barchasb-io/barchasb/internal/config"
	"github.com/redis/go-redis/v9"
)

// New builds the shared redis client. Returns nil when no address is
// configured; callers treat a nil client as "caching disabled".
func New(cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
}
