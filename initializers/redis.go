package initializers

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"interview-tracker-backend/config"
	"interview-tracker-backend/lib/cache"
)

func InitRedis(ctx context.Context) {
	if config.Conf.Redis.Addr == "" {
		log.Info("redis address is not set, statistics are not cached")
		return
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.Conf.Redis.Addr,
		Password: config.Conf.Redis.Password,
		DB:       config.Conf.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.
			WithField("addr", config.Conf.Redis.Addr).
			WithError(err).
			Error("redis is unreachable, statistics are not cached")
		_ = client.Close()
		return
	}
	cache.Instance = cache.NewInstance(client, time.Duration(config.Conf.Redis.TTLSec)*time.Second)
	log.Info("redis cache initialized")
}
