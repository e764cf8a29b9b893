// internal/catalog/resolve.go
package catalog

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/promolink/affiliate-backend/internal/models"
)

const defaultMaxConcurrent = 8

// Resolve batch-fetches catalog entries for a set of product ids, at most
// maxConcurrent requests in flight at a time. Ids are deduplicated before
// fetching. Each lookup failure degrades to a miss for that id; the batch as
// a whole only stops early when the context is cancelled. Only successes are
// returned, in no particular order.
func Resolve(ctx context.Context, getter ProductGetter, ids []uint, maxConcurrent int) []models.CatalogProduct {
	if maxConcurrent < 1 {
		maxConcurrent = defaultMaxConcurrent
	}

	var mu sync.Mutex
	resolved := make([]models.CatalogProduct, 0, len(ids))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrent)

	for _, id := range dedupe(ids) {
		if ctx.Err() != nil {
			break
		}

		id := id
		group.Go(func() error {
			product, err := getter.GetProduct(ctx, id)
			if err != nil {
				logrus.WithError(err).WithField("product_id", id).Debug("Catalog lookup failed, degrading to miss")
				return nil
			}

			mu.Lock()
			resolved = append(resolved, *product)
			mu.Unlock()
			return nil
		})
	}

	group.Wait()
	return resolved
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	distinct := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}
	return distinct
}
