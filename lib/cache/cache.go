package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// Provider is a JSON cache. Without a redis client every lookup misses and
// every write is a no-op.
type Provider interface {
	GetJSON(ctx context.Context, key string, out any) (found bool, err error)
	SetJSON(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, keys ...string) error
}

var Instance Provider = NewInstance(nil, 0)

func NewInstance(client *redis.Client, ttl time.Duration) Provider {
	return &impl{
		client: client,
		ttl:    ttl,
	}
}

type impl struct {
	client *redis.Client
	ttl    time.Duration
}

func (i impl) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if i.client == nil {
		return false, nil
	}
	body, err := i.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if len(body) == 0 {
		return false, nil
	}
	if err = json.Unmarshal(body, out); err != nil {
		log.WithField("cache_key", key).WithError(err).Warn("cached value is broken, dropping it")
		_ = i.client.Del(ctx, key).Err()
		return false, nil
	}
	return true, nil
}

func (i impl) SetJSON(ctx context.Context, key string, value any) error {
	if i.client == nil {
		return nil
	}
	body, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return i.client.Set(ctx, key, body, i.ttl).Err()
}

func (i impl) Delete(ctx context.Context, keys ...string) error {
	if i.client == nil || len(keys) == 0 {
		return nil
	}
	return i.client.Del(ctx, keys...).Err()
}
