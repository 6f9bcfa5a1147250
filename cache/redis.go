package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"geohash-service/config"
	"geohash-service/geohash"
)

// NewRedisClient connects to Redis and checks the connection
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	log.Println("Connected to Redis successfully.")
	return rdb, nil
}

// NeighborCache memoizes neighbour lookups in Redis.
type NeighborCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewNeighborCache(rdb *redis.Client, ttl time.Duration) *NeighborCache {
	return &NeighborCache{rdb: rdb, ttl: ttl}
}

func neighborsKey(hash string) string {
	return fmt.Sprintf("neighbors:%s", hash)
}

// Get returns the eight neighbours of hash, from Redis when present.
// Redis failures are logged and fall back to computing the result.
func (c *NeighborCache) Get(ctx context.Context, hash string) (geohash.Neighbors, error) {
	if err := geohash.Validate(hash); err != nil {
		return geohash.Neighbors{}, err
	}
	hash = strings.ToLower(hash)
	key := neighborsKey(hash)

	var nb geohash.Neighbors
	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if jerr := json.Unmarshal(raw, &nb); jerr == nil {
			return nb, nil
		}
		log.Printf("discarding corrupt cache entry %s", key)
	case err != redis.Nil:
		log.Printf("redis get %s: %v", key, err)
	}

	nb, err = geohash.AllNeighbors(hash)
	if err != nil {
		return geohash.Neighbors{}, err
	}

	data, _ := json.Marshal(nb)
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.Printf("redis set %s: %v", key, err)
	}
	return nb, nil
}
