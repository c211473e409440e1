package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/timsachnhabe/bookstore-api/internal/models"
)

// productListTTL bounds staleness of cached product listings.
const productListTTL = 5 * time.Minute

// ProductCache provides read-through caching for product listings.
// A nil *ProductCache is valid and disables caching, so the API works
// unchanged when Redis is not configured.
type ProductCache struct {
	redis *RedisClient
}

// NewProductCache creates a new ProductCache.
func NewProductCache(redis *RedisClient) *ProductCache {
	return &ProductCache{redis: redis}
}

func (c *ProductCache) key(catalog string) string {
	if catalog == "" {
		return "products:list:all"
	}
	return fmt.Sprintf("products:list:%s", catalog)
}

// GetList returns the cached listing for a catalog filter, or false on miss.
func (c *ProductCache) GetList(ctx context.Context, catalog string) ([]models.Product, bool) {
	if c == nil || c.redis == nil {
		return nil, false
	}
	raw, err := c.redis.Get(ctx, c.key(catalog))
	if err != nil {
		return nil, false
	}
	var products []models.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		return nil, false
	}
	return products, true
}

// SetList caches a listing for a catalog filter.
func (c *ProductCache) SetList(ctx context.Context, catalog string, products []models.Product) {
	if c == nil || c.redis == nil {
		return
	}
	raw, err := json.Marshal(products)
	if err != nil {
		return
	}
	_ = c.redis.Set(ctx, c.key(catalog), string(raw), productListTTL)
}

// Invalidate drops every cached listing that could contain the product.
func (c *ProductCache) Invalidate(ctx context.Context, catalog string) {
	if c == nil || c.redis == nil {
		return
	}
	_ = c.redis.Delete(ctx, c.key(""), c.key(catalog))
}
