package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RedisClient owns the go-redis connection.
type RedisClient struct {
	Client *redis.Client
}

func NewRedisClient(host, password string, db int) *RedisClient {
	return &RedisClient{
		Client: redis.NewClient(&redis.Options{
			Addr:         host,
			Password:     password,
			DB:           db,
			PoolSize:     10,
			MinIdleConns: 2,
			MaxRetries:   3,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		}),
	}
}

func (r *RedisClient) Connect(ctx context.Context) error {
	log.Info().Str("addr", r.Client.Options().Addr).Msg("[REDIS] Connecting")

	if err := r.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	log.Info().Msg("[REDIS] Connected")
	return nil
}

func (r *RedisClient) Close() error {
	if r.Client != nil {
		return r.Client.Close()
	}
	return nil
}

// RedisCache implements pkg/cache.Cache on Redis. Values live under
// <prefix><key>; each tag is a SET <prefix>tag:<tag> holding the keys
// stored under it.
type RedisCache struct {
	client *redis.Client
	prefix string
}

func NewRedisCache(client *redis.Client, prefix string) *RedisCache {
	return &RedisCache{client: client, prefix: prefix}
}

func (c *RedisCache) key(k string) string   { return c.prefix + k }
func (c *RedisCache) tagKey(t string) string { return c.prefix + "tag:" + t }

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return data, true, nil
}

// Set stores value and indexes key under each tag. A tag set expires with
// the newest entry added to it; callers use one TTL per tag.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration, tags ...string) error {
	pipe := c.client.TxPipeline()
	pipe.Set(ctx, c.key(key), value, ttl)
	for _, tag := range tags {
		pipe.SAdd(ctx, c.tagKey(tag), c.key(key))
		if ttl > 0 {
			pipe.Expire(ctx, c.tagKey(tag), ttl)
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// InvalidateTags deletes every key indexed under the tags.
func (c *RedisCache) InvalidateTags(ctx context.Context, tags ...string) error {
	if len(tags) == 0 {
		return nil
	}

	members, err := c.tagMembers(ctx, tags)
	if err != nil {
		return err
	}
	return c.evict(ctx, members)
}

// tagMembers snapshots the keys indexed under each tag.
func (c *RedisCache) tagMembers(ctx context.Context, tags []string) (map[string][]string, error) {
	members := make(map[string][]string, len(tags))
	for _, tag := range tags {
		keys, err := c.client.SMembers(ctx, c.tagKey(tag)).Result()
		if err != nil {
			return nil, fmt.Errorf("redis smembers %s: %w", tag, err)
		}
		members[tag] = keys
	}
	return members, nil
}

// evict deletes the snapshotted keys and removes exactly those members from
// their tag sets. Keys indexed after the snapshot keep their membership.
func (c *RedisCache) evict(ctx context.Context, members map[string][]string) error {
	pipe := c.client.TxPipeline()
	evicted := 0
	for tag, keys := range members {
		if len(keys) == 0 {
			continue
		}
		srem := make([]interface{}, len(keys))
		for i, k := range keys {
			srem[i] = k
		}
		pipe.Del(ctx, keys...)
		pipe.SRem(ctx, c.tagKey(tag), srem...)
		evicted += len(keys)
	}
	if evicted == 0 {
		return nil
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis invalidate tags: %w", err)
	}

	log.Debug().Int("keys", evicted).Msg("[CACHE] Tags invalidated")
	return nil
}

func (c *RedisCache) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}
