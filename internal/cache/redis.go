package cache

import (
	"context"
	"encoding/json"
	"time"

	"mentorlink_backend/internal/logger"

	"github.com/redis/go-redis/v9"
)

// MatchCache хранит ранжированные списки менторов между запросами.
// Кэш всегда best-effort: недоступный Redis деградирует в прямой расчет.
type MatchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type RedisCache struct {
	client *redis.Client
}

// NewRedisCache подключается к Redis. При недоступности возвращает nil -
// вызывающий код обязан переживать nil кэш.
func NewRedisCache(addr, password string, db int) *RedisCache {
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis unavailable, match caching disabled", "addr", addr, "error", err)
		_ = client.Close()
		return nil
	}

	logger.Info("Redis connected", "addr", addr)
	return &RedisCache{client: client}
}

func (c *RedisCache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if c == nil || c.client == nil {
		return false, nil
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, err
	}
	return true, nil
}

func (c *RedisCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, key).Err()
}
