// internal/enrich/index.go
package enrich

import (
	"github.com/promolink/affiliate-backend/internal/models"
)

// BuildProductIndex turns a product list into a lookup by catalog id.
// Duplicate ids are last-write-wins; an empty or nil input yields an empty
// map, which callers treat as "every lookup misses" rather than an error.
func BuildProductIndex(products []models.CatalogProduct) map[uint]*models.CatalogProduct {
	index := make(map[uint]*models.CatalogProduct, len(products))
	for i := range products {
		index[products[i].ID] = &products[i]
	}
	return index
}
