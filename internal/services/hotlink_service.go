// internal/services/hotlink_service.go
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/promolink/affiliate-backend/internal/catalog"
	"github.com/promolink/affiliate-backend/internal/enrich"
	"github.com/promolink/affiliate-backend/internal/models"
	"github.com/promolink/affiliate-backend/internal/utils"
)

// linkLister provides one page of an affiliate's links. *LinkService
// satisfies it.
type linkLister interface {
	ListLinks(affiliateID uuid.UUID, mode models.LinkViewMode, params utils.PaginationParams) ([]models.AffiliateLink, int64, error)
}

// commissionSource provides an affiliate's full commission history.
// *FinanceService satisfies it.
type commissionSource interface {
	AllRecords(affiliateID uuid.UUID) ([]models.CommissionRecord, error)
}

// HotlinkService joins one page of affiliate links with the affiliate's
// commission history and the product catalog into display-ready hotlinks.
type HotlinkService struct {
	links         linkLister
	records       commissionSource
	products      catalog.ProductGetter
	maxConcurrent int
}

func NewHotlinkService(links linkLister, records commissionSource, products catalog.ProductGetter, maxConcurrent int) *HotlinkService {
	return &HotlinkService{
		links:         links,
		records:       records,
		products:      products,
		maxConcurrent: maxConcurrent,
	}
}

// GetHotlinks produces the enriched hotlink page for one affiliate and view
// mode. The three sources are gathered first; enrichment itself is pure, so
// a repeated call over unchanged data returns identical output. Catalog
// misses degrade to finance-history values and then to zeros, never to a
// dropped row; a failure of either owned source fails the page.
func (s *HotlinkService) GetHotlinks(ctx context.Context, affiliateID uuid.UUID, mode models.LinkViewMode, params utils.PaginationParams) ([]enrich.EnrichedHotlink, int64, error) {
	links, total, err := s.links.ListLinks(affiliateID, mode, params)
	if err != nil {
		return nil, 0, err
	}

	records, err := s.records.AllRecords(affiliateID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch commission records: %w", err)
	}

	productIDs := make([]uint, 0, len(links))
	for i := range links {
		productIDs = append(productIDs, links[i].ProductID)
	}

	products := catalog.Resolve(ctx, s.products, productIDs, s.maxConcurrent)
	logrus.WithFields(logrus.Fields{
		"affiliate_id": affiliateID,
		"links":        len(links),
		"resolved":     len(products),
	}).Debug("Hotlink sources gathered")

	index := enrich.BuildProductIndex(products)
	aggregates := enrich.AggregateCommissions(records)

	return enrich.BuildHotlinks(links, index, aggregates), total, nil
}
