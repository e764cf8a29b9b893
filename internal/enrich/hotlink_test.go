// internal/enrich/hotlink_test.go
package enrich

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promolink/affiliate-backend/internal/models"
)

func TestBuildHotlinksCatalogWins(t *testing.T) {
	linkID := uuid.New()
	links := []models.AffiliateLink{
		{
			BaseModel:   models.BaseModel{ID: linkID},
			ProductID:   9,
			ProductName: "Widget",
			URL:         "https://aff.example.com/l/abc",
			TotalViews:  100,
		},
	}
	index := BuildProductIndex([]models.CatalogProduct{
		{ID: 9, Name: "Widget", Price: 50.0, Commission: 10.0},
	})
	aggregates := AggregateCommissions([]models.CommissionRecord{
		{Name: "widget", Commission: "5", ProductPrice: "40", CommissionPercentage: "8"},
	})

	hotlinks := BuildHotlinks(links, index, aggregates)

	require.Len(t, hotlinks, 1)
	h := hotlinks[0]
	assert.Equal(t, linkID, h.ID)
	assert.Equal(t, "Widget", h.Title)
	// Catalog price and percentage win over the finance record's 40/8.
	assert.Equal(t, 50.0, h.Price)
	assert.Equal(t, 5.0, h.Commission) // 50 * 10 / 100
	assert.Equal(t, 5.0, h.Earnings)
	assert.Equal(t, int64(100), h.Clicks)
	assert.Equal(t, 1, h.Orders)
	assert.Equal(t, "1.0%", h.Conversion)
}

func TestBuildHotlinksFinanceFallback(t *testing.T) {
	links := []models.AffiliateLink{
		{ProductID: 9, ProductName: "Widget"},
	}
	aggregates := AggregateCommissions([]models.CommissionRecord{
		{Name: "Widget", Commission: "5", ProductPrice: "40", CommissionPercentage: "8"},
	})

	// No catalog entry: the finance record supplies price and percentage.
	hotlinks := BuildHotlinks(links, map[uint]*models.CatalogProduct{}, aggregates)

	require.Len(t, hotlinks, 1)
	assert.Equal(t, 40.0, hotlinks[0].Price)
	assert.Equal(t, 3.2, hotlinks[0].Commission) // 40 * 8 / 100
}

func TestBuildHotlinksCatalogEntryWithoutPriceFields(t *testing.T) {
	links := []models.AffiliateLink{
		{ProductID: 9, ProductName: "Widget"},
	}
	// The entry resolved, but upstream omitted price and commission on it.
	index := BuildProductIndex([]models.CatalogProduct{
		{ID: 9, Name: "Widget"},
	})
	aggregates := AggregateCommissions([]models.CommissionRecord{
		{Name: "widget", Commission: "5", ProductPrice: "40", CommissionPercentage: "8"},
	})

	hotlinks := BuildHotlinks(links, index, aggregates)

	// Each absent field falls through to the finance record independently.
	require.Len(t, hotlinks, 1)
	assert.Equal(t, "Widget", hotlinks[0].Title)
	assert.Equal(t, 40.0, hotlinks[0].Price)
	assert.Equal(t, 3.2, hotlinks[0].Commission) // 40 * 8 / 100
}

func TestBuildHotlinksUnparsableCatalogValueStillWins(t *testing.T) {
	links := []models.AffiliateLink{
		{ProductID: 9, ProductName: "Widget"},
	}
	index := BuildProductIndex([]models.CatalogProduct{
		{ID: 9, Name: "Widget", Price: "n/a", Commission: "n/a"},
	})
	aggregates := AggregateCommissions([]models.CommissionRecord{
		{Name: "widget", Commission: "5", ProductPrice: "40", CommissionPercentage: "8"},
	})

	hotlinks := BuildHotlinks(links, index, aggregates)

	// Present catalog fields take precedence even when they sanitize to zero.
	require.Len(t, hotlinks, 1)
	assert.Zero(t, hotlinks[0].Price)
	assert.Zero(t, hotlinks[0].Commission)
}

func TestBuildHotlinksJoinMissDegradesToZero(t *testing.T) {
	links := []models.AffiliateLink{
		{ProductID: 9, ProductName: "Widget", URL: "https://aff.example.com/l/abc"},
	}

	hotlinks := BuildHotlinks(links, map[uint]*models.CatalogProduct{}, map[string]*CommissionAggregate{})

	// A row is never dropped; it degrades.
	require.Len(t, hotlinks, 1)
	h := hotlinks[0]
	assert.Equal(t, "Widget", h.Title)
	assert.Zero(t, h.Price)
	assert.Zero(t, h.Commission)
	assert.Zero(t, h.Earnings)
	assert.Zero(t, h.Orders)
	assert.Equal(t, "0.0%", h.Conversion)
	assert.Equal(t, PlaceholderImage, h.ImageURL)
}

func TestBuildHotlinksConversion(t *testing.T) {
	links := []models.AffiliateLink{
		{ProductID: 1, ProductName: "Widget", TotalViews: 10},
		{ProductID: 1, ProductName: "Gadget", TotalViews: 0},
	}
	aggregates := AggregateCommissions([]models.CommissionRecord{
		{Name: "widget", Commission: "1"},
		{Name: "widget", Commission: "1"},
		{Name: "gadget", Commission: "1"},
	})

	hotlinks := BuildHotlinks(links, map[uint]*models.CatalogProduct{}, aggregates)

	require.Len(t, hotlinks, 2)
	assert.Equal(t, "20.0%", hotlinks[0].Conversion)
	// Zero clicks never divides; conversion stays a clean zero.
	assert.Equal(t, "0.0%", hotlinks[1].Conversion)
}

func TestBuildHotlinksImageFallbackChain(t *testing.T) {
	link := models.AffiliateLink{ProductID: 9, ProductName: "Widget", Image: "link.png"}
	withImage := BuildProductIndex([]models.CatalogProduct{
		{ID: 9, Name: "Widget", Image: "catalog.png"},
	})
	withoutImage := BuildProductIndex([]models.CatalogProduct{
		{ID: 9, Name: "Widget"},
	})
	aggregates := AggregateCommissions([]models.CommissionRecord{
		{Name: "widget", Image: "finance.png"},
	})

	assert.Equal(t, "catalog.png", BuildHotlinks([]models.AffiliateLink{link}, withImage, aggregates)[0].ImageURL)
	assert.Equal(t, "finance.png", BuildHotlinks([]models.AffiliateLink{link}, withoutImage, aggregates)[0].ImageURL)
	assert.Equal(t, "link.png", BuildHotlinks([]models.AffiliateLink{link}, withoutImage, nil)[0].ImageURL)

	link.Image = ""
	assert.Equal(t, PlaceholderImage, BuildHotlinks([]models.AffiliateLink{link}, withoutImage, nil)[0].ImageURL)
}

func TestBuildHotlinksPreservesOrder(t *testing.T) {
	links := []models.AffiliateLink{
		{ProductID: 3, ProductName: "C"},
		{ProductID: 1, ProductName: "A"},
		{ProductID: 2, ProductName: "B"},
	}

	hotlinks := BuildHotlinks(links, map[uint]*models.CatalogProduct{}, nil)

	require.Len(t, hotlinks, 3)
	assert.Equal(t, "C", hotlinks[0].Title)
	assert.Equal(t, "A", hotlinks[1].Title)
	assert.Equal(t, "B", hotlinks[2].Title)
}

func TestBuildHotlinksPure(t *testing.T) {
	links := []models.AffiliateLink{
		{ProductID: 9, ProductName: "Widget", TotalViews: 100},
	}
	index := BuildProductIndex([]models.CatalogProduct{
		{ID: 9, Name: "Widget", Price: "50", Commission: "10"},
	})
	aggregates := AggregateCommissions([]models.CommissionRecord{
		{Name: "widget", Commission: "5"},
	})

	first := BuildHotlinks(links, index, aggregates)
	second := BuildHotlinks(links, index, aggregates)

	assert.Equal(t, first, second)
}

func TestBuildHotlinksEmptyInput(t *testing.T) {
	assert.Empty(t, BuildHotlinks(nil, nil, nil))
}
