// internal/catalog/cache.go
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/promolink/affiliate-backend/internal/models"
)

// ProductCache is a redis read-through cache over single-product lookups.
// Cache failures fall back to the wrapped getter: a broken or cold cache can
// slow a request down but never fail it.
type ProductCache struct {
	inner ProductGetter
	redis *redis.Client
	ttl   time.Duration
}

func NewProductCache(inner ProductGetter, rdb *redis.Client, ttl time.Duration) *ProductCache {
	return &ProductCache{
		inner: inner,
		redis: rdb,
		ttl:   ttl,
	}
}

func (c *ProductCache) GetProduct(ctx context.Context, id uint) (*models.CatalogProduct, error) {
	key := productKey(id)

	if data, err := c.redis.Get(ctx, key).Bytes(); err == nil {
		var product models.CatalogProduct
		if err := json.Unmarshal(data, &product); err == nil {
			return &product, nil
		}
		// Unreadable entry; drop it and fall through to the source.
		c.redis.Del(ctx, key)
	}

	product, err := c.inner.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(product); err == nil {
		if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
			logrus.WithError(err).WithField("product_id", id).Debug("Failed to cache catalog product")
		}
	}

	return product, nil
}

func productKey(id uint) string {
	return fmt.Sprintf("catalog:product:%d", id)
}
