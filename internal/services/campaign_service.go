// internal/services/campaign_service.go
package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/promolink/affiliate-backend/internal/catalog"
	"github.com/promolink/affiliate-backend/internal/enrich"
	"github.com/promolink/affiliate-backend/internal/models"
)

// Catalog is the slice of the commerce platform the campaign pipeline needs.
type Catalog interface {
	catalog.ProductGetter
	GetCampaign(ctx context.Context, id uint) (*models.Campaign, error)
}

type CampaignService struct {
	catalog       Catalog
	maxConcurrent int
}

func NewCampaignService(cat Catalog, maxConcurrent int) *CampaignService {
	return &CampaignService{
		catalog:       cat,
		maxConcurrent: maxConcurrent,
	}
}

// GetCampaign fetches one campaign and resolves its line items against the
// catalog. Individual product lookups that fail leave their item in place
// with zero price and commission; only the campaign fetch itself can error.
func (s *CampaignService) GetCampaign(ctx context.Context, id uint) (*enrich.EnrichedCampaign, error) {
	campaign, err := s.catalog.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}

	enriched := s.enrichAll(ctx, []models.Campaign{*campaign})
	return &enriched[0], nil
}

// GetCampaigns enriches a batch of campaigns. Product ids are deduplicated
// across the whole batch so a product shared by several campaigns is fetched
// once.
func (s *CampaignService) GetCampaigns(ctx context.Context, ids []uint) ([]enrich.EnrichedCampaign, error) {
	campaigns := make([]models.Campaign, 0, len(ids))
	for _, id := range ids {
		campaign, err := s.catalog.GetCampaign(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch campaign %d: %w", id, err)
		}
		campaigns = append(campaigns, *campaign)
	}

	return s.enrichAll(ctx, campaigns), nil
}

func (s *CampaignService) enrichAll(ctx context.Context, campaigns []models.Campaign) []enrich.EnrichedCampaign {
	productIDs := make([]uint, 0)
	for i := range campaigns {
		for _, item := range campaigns[i].Items {
			productIDs = append(productIDs, item.ID)
		}
	}

	products := catalog.Resolve(ctx, s.catalog, productIDs, s.maxConcurrent)
	index := enrich.BuildProductIndex(products)

	if len(index) == 0 && len(productIDs) > 0 {
		logrus.WithField("campaigns", len(campaigns)).Warn("No campaign products could be resolved; items degrade to zero values")
	}

	enriched := make([]enrich.EnrichedCampaign, 0, len(campaigns))
	for i := range campaigns {
		enriched = append(enriched, enrich.BuildCampaign(&campaigns[i], index))
	}
	return enriched
}
