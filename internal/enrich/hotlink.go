// internal/enrich/hotlink.go
package enrich

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/promolink/affiliate-backend/internal/models"
)

// PlaceholderImage is served when neither the catalog, the finance history
// nor the link itself carries a usable image.
const PlaceholderImage = "/images/product-placeholder.png"

// EnrichedHotlink is the display-ready view model for one affiliate link.
// Field names are the contract the frontend renders against.
type EnrichedHotlink struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Commission  float64   `json:"commission"`
	URL         string    `json:"url"`
	ExternalURL string    `json:"externalUrl"`
	Earnings    float64   `json:"earnings"`
	Clicks      int64     `json:"clicks"`
	Orders      int       `json:"orders"`
	Conversion  string    `json:"conversion"`
	ImageURL    string    `json:"imageUrl"`
}

// BuildHotlinks joins one page of links with the product index and the
// commission aggregates into hotlink view models. Output order follows input
// order. The function is pure: identical inputs produce identical output, and
// no input is mutated.
func BuildHotlinks(links []models.AffiliateLink, index map[uint]*models.CatalogProduct, aggregates map[string]*CommissionAggregate) []EnrichedHotlink {
	hotlinks := make([]EnrichedHotlink, 0, len(links))
	for i := range links {
		hotlinks = append(hotlinks, buildHotlink(&links[i], index, aggregates))
	}
	return hotlinks
}

func buildHotlink(link *models.AffiliateLink, index map[uint]*models.CatalogProduct, aggregates map[string]*CommissionAggregate) EnrichedHotlink {
	product := index[link.ProductID]
	agg := aggregates[NormalizeName(link.ProductName)]

	var first *models.CommissionRecord
	var earnings float64
	var orders int
	if agg != nil {
		first = agg.First
		earnings = agg.TotalEarnings
		orders = agg.OrderCount
	}

	// Strict precedence, decided per field: a catalog value wins over finance
	// history, which wins over zero. The catalog only wins when the field is
	// actually present; upstream sometimes omits price or commission on an
	// otherwise valid entry, and an absent field must not mask the finance
	// fallback. A present-but-unparsable catalog value still wins and
	// sanitizes to zero.
	var price, percentage float64
	switch {
	case product != nil && product.Price != nil:
		price = Sanitize(product.Price)
	case first != nil:
		price = Sanitize(first.ProductPrice)
	}
	switch {
	case product != nil && product.Commission != nil:
		percentage = Sanitize(product.Commission)
	case first != nil:
		percentage = Sanitize(first.CommissionPercentage)
	}

	title := link.ProductName
	if product != nil && product.Name != "" {
		title = product.Name
	}

	clicks := link.TotalViews
	var conversion float64
	if clicks > 0 {
		conversion = float64(orders) / float64(clicks) * 100
	}

	return EnrichedHotlink{
		ID:          link.ID,
		Title:       title,
		Price:       price,
		Commission:  price * percentage / 100,
		URL:         link.URL,
		ExternalURL: link.DestinationURL,
		Earnings:    earnings,
		Clicks:      clicks,
		Orders:      orders,
		Conversion:  fmt.Sprintf("%.1f%%", conversion),
		ImageURL:    resolveImage(product, first, link),
	}
}

// resolveImage walks the fallback chain: catalog image, finance record
// image, the link's own stored image, static placeholder.
func resolveImage(product *models.CatalogProduct, first *models.CommissionRecord, link *models.AffiliateLink) string {
	if product != nil && product.Image != "" {
		return product.Image
	}
	if first != nil && first.Image != "" {
		return first.Image
	}
	if link.Image != "" {
		return link.Image
	}
	return PlaceholderImage
}
