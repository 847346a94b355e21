package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tim-rayner/restaurant-review-api/config"
	"github.com/tim-rayner/restaurant-review-api/internal/app/model"
	"github.com/tim-rayner/restaurant-review-api/pkg/logger"
)

var client *redis.Client

// ErrCacheMiss is returned when the requested entry is not cached.
var ErrCacheMiss = errors.New("cache miss")

// restaurantTTL bounds staleness for entries that miss an invalidation.
const restaurantTTL = 10 * time.Minute

// Init initializes the Redis connection
func Init(cfg *config.RedisConfig) error {
	logger.Info("Initializing Redis connection", map[string]interface{}{
		"host": cfg.Host,
		"port": cfg.Port,
		"db":   cfg.DB,
	})

	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client = nil
		logger.Error("Failed to connect to Redis", err, map[string]interface{}{
			"host": cfg.Host,
			"port": cfg.Port,
		})
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis connection established successfully", nil)
	return nil
}

// GetClient returns the Redis client instance
func GetClient() *redis.Client {
	return client
}

// Close closes the Redis connection
func Close() error {
	if client != nil {
		logger.Info("Closing Redis connection", nil)
		err := client.Close()
		client = nil
		return err
	}
	return nil
}

func restaurantKey(id uint) string {
	return fmt.Sprintf("restaurant:%d", id)
}

// CacheRestaurant stores a restaurant snapshot. No-op when Redis is disabled.
func CacheRestaurant(ctx context.Context, restaurant *model.Restaurant) error {
	if client == nil {
		return nil
	}

	data, err := json.Marshal(restaurant)
	if err != nil {
		return err
	}

	if err := client.Set(ctx, restaurantKey(restaurant.ID), data, restaurantTTL).Err(); err != nil {
		logger.Error("Failed to cache restaurant", err, map[string]interface{}{
			"restaurant_id": restaurant.ID,
		})
		return err
	}
	return nil
}

// GetCachedRestaurant fetches a cached restaurant snapshot.
// Returns ErrCacheMiss when Redis is disabled or the entry is absent.
func GetCachedRestaurant(ctx context.Context, id uint) (*model.Restaurant, error) {
	if client == nil {
		return nil, ErrCacheMiss
	}

	data, err := client.Get(ctx, restaurantKey(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	} else if err != nil {
		return nil, err
	}

	var restaurant model.Restaurant
	if err := json.Unmarshal(data, &restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// InvalidateRestaurant drops the cached snapshot after a rating recompute
// so readers never observe stale ratings past the write.
func InvalidateRestaurant(ctx context.Context, id uint) error {
	if client == nil {
		return nil
	}

	if err := client.Del(ctx, restaurantKey(id)).Err(); err != nil {
		logger.Error("Failed to invalidate cached restaurant", err, map[string]interface{}{
			"restaurant_id": id,
		})
		return err
	}
	return nil
}
