// internal/services/product_service.go
package services

import (
	"context"
	"fmt"

	"github.com/promolink/affiliate-backend/internal/catalog"
	"github.com/promolink/affiliate-backend/internal/models"
	"github.com/promolink/affiliate-backend/internal/utils"
)

// ProductLister is the catalog collection lookup backing the browse surface.
type ProductLister interface {
	ListProducts(ctx context.Context, page, pageSize int, search string) ([]models.CatalogProduct, catalog.Meta, error)
}

// ProductService exposes the brand catalog so affiliates can browse products
// to create links against. The data is upstream-owned; nothing is stored.
type ProductService struct {
	catalog ProductLister
}

func NewProductService(lister ProductLister) *ProductService {
	return &ProductService{catalog: lister}
}

// ListProducts returns one page of the brand catalog.
func (s *ProductService) ListProducts(ctx context.Context, params utils.PaginationParams) ([]models.CatalogProduct, int64, error) {
	products, meta, err := s.catalog.ListProducts(ctx, params.Page, params.Limit, params.Search)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch product catalog: %w", err)
	}
	return products, meta.TotalItems, nil
}
