// internal/enrich/campaign.go
package enrich

import (
	"time"

	"github.com/promolink/affiliate-backend/internal/models"
)

// EnrichedCampaignProduct is a campaign line item with price and commission
// percentage resolved from the product catalog.
type EnrichedCampaignProduct struct {
	ID                   uint    `json:"id"`
	Name                 string  `json:"name"`
	Image                string  `json:"image"`
	Link                 string  `json:"link"`
	Price                float64 `json:"price"`
	CommissionPercentage float64 `json:"commissionPercentage"`
}

type EnrichedCampaign struct {
	ID            uint                      `json:"id"`
	Name          string                    `json:"name"`
	Image         string                    `json:"image"`
	StartDate     string                    `json:"startDate"`
	EndDate       string                    `json:"endDate"`
	MaxCommission float64                   `json:"maxCommission"`
	Items         []EnrichedCampaignProduct `json:"items"`
}

// BuildCampaign resolves a campaign's line items against the product index.
// Unmatched items keep their place with price and commission percentage of 0
// rather than being dropped: a campaign always reports exactly as many items
// as it was given. MaxCommission is the highest resolved percentage, 0 for an
// item-less campaign.
func BuildCampaign(campaign *models.Campaign, index map[uint]*models.CatalogProduct) EnrichedCampaign {
	items := make([]EnrichedCampaignProduct, 0, len(campaign.Items))
	var maxCommission float64

	for _, item := range campaign.Items {
		var price, percentage float64
		if product := index[item.ID]; product != nil {
			price = Sanitize(product.Price)
			percentage = Sanitize(product.Commission)
		}
		if percentage > maxCommission {
			maxCommission = percentage
		}

		items = append(items, EnrichedCampaignProduct{
			ID:                   item.ID,
			Name:                 item.Name,
			Image:                item.Image,
			Link:                 item.Link,
			Price:                price,
			CommissionPercentage: percentage,
		})
	}

	return EnrichedCampaign{
		ID:            campaign.ID,
		Name:          campaign.Name,
		Image:         campaign.Image,
		StartDate:     DisplayDate(campaign.StartDate),
		EndDate:       DisplayDate(campaign.EndDate),
		MaxCommission: maxCommission,
		Items:         items,
	}
}

// DisplayDate reformats a YYYY-MM-DD machine date to the DD/MM/YYYY display
// format. Malformed input passes through unchanged.
func DisplayDate(date string) string {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return parsed.Format("02/01/2006")
}
