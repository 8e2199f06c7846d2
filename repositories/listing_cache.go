package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"product-catalog/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const productListCacheKey = "products_list"

// ListingCache holds the rendered product listing between writes.
type ListingCache interface {
	Get(ctx context.Context) ([]models.Product, bool)
	Set(ctx context.Context, products []models.Product)
	Invalidate(ctx context.Context)
}

type RedisListingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisListingCache(client *redis.Client, ttl time.Duration) *RedisListingCache {
	return &RedisListingCache{client: client, ttl: ttl}
}

func (c *RedisListingCache) Get(ctx context.Context) ([]models.Product, bool) {
	cached, err := c.client.Get(ctx, productListCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			zap.S().Warnf("product list cache read failed: %v", err)
		}
		return nil, false
	}

	var products []models.Product
	if err := json.Unmarshal(cached, &products); err != nil {
		zap.S().Warnf("product list cache entry is corrupt: %v", err)
		return nil, false
	}
	return products, true
}

func (c *RedisListingCache) Set(ctx context.Context, products []models.Product) {
	data, err := json.Marshal(products)
	if err != nil {
		zap.S().Warnf("failed to encode product list for cache: %v", err)
		return
	}
	if err := c.client.Set(ctx, productListCacheKey, data, c.ttl).Err(); err != nil {
		zap.S().Warnf("product list cache write failed: %v", err)
	}
}

func (c *RedisListingCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, productListCacheKey).Err(); err != nil {
		zap.S().Warnf("product list cache invalidation failed: %v", err)
	}
}

// NoopListingCache is used when Redis is unavailable.
type NoopListingCache struct{}

func (NoopListingCache) Get(context.Context) ([]models.Product, bool) { return nil, false }
func (NoopListingCache) Set(context.Context, []models.Product)        {}
func (NoopListingCache) Invalidate(context.Context)                   {}
