// internal/enrich/campaign_test.go
package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promolink/affiliate-backend/internal/models"
)

func TestBuildCampaign(t *testing.T) {
	campaign := &models.Campaign{
		ID:        7,
		Name:      "Summer Sale",
		StartDate: "2026-06-01",
		EndDate:   "2026-08-31",
		Items: []models.CampaignItem{
			{ID: 1, Name: "Widget", Link: "https://shop.example.com/widget"},
			{ID: 2, Name: "Gadget"},
			{ID: 3, Name: "Gizmo"},
		},
	}
	index := BuildProductIndex([]models.CatalogProduct{
		{ID: 1, Name: "Widget", Price: 50.0, Commission: 10.0},
		{ID: 3, Name: "Gizmo", Price: "19.99", Commission: "7.5"},
	})

	enriched := BuildCampaign(campaign, index)

	assert.Equal(t, uint(7), enriched.ID)
	assert.Equal(t, "01/06/2026", enriched.StartDate)
	assert.Equal(t, "31/08/2026", enriched.EndDate)
	assert.Equal(t, 10.0, enriched.MaxCommission)

	// Every line item stays, resolved or not.
	require.Len(t, enriched.Items, 3)
	assert.Equal(t, 50.0, enriched.Items[0].Price)
	assert.Equal(t, 10.0, enriched.Items[0].CommissionPercentage)
	assert.Zero(t, enriched.Items[1].Price)
	assert.Zero(t, enriched.Items[1].CommissionPercentage)
	assert.Equal(t, 19.99, enriched.Items[2].Price)
	assert.Equal(t, 7.5, enriched.Items[2].CommissionPercentage)
}

func TestBuildCampaignNoItems(t *testing.T) {
	campaign := &models.Campaign{ID: 7, Name: "Empty"}

	enriched := BuildCampaign(campaign, nil)

	assert.Empty(t, enriched.Items)
	assert.Zero(t, enriched.MaxCommission)
}

func TestBuildCampaignMalformedNumbers(t *testing.T) {
	campaign := &models.Campaign{
		ID:    7,
		Items: []models.CampaignItem{{ID: 1, Name: "Widget"}},
	}
	index := BuildProductIndex([]models.CatalogProduct{
		{ID: 1, Name: "Widget", Price: "n/a", Commission: "-3"},
	})

	enriched := BuildCampaign(campaign, index)

	require.Len(t, enriched.Items, 1)
	assert.Zero(t, enriched.Items[0].Price)
	assert.Zero(t, enriched.Items[0].CommissionPercentage)
}

func TestDisplayDate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2026-01-31", "31/01/2026"},
		{"2026-12-01", "01/12/2026"},
		// Malformed dates pass through unchanged.
		{"not-a-date", "not-a-date"},
		{"2026/01/31", "2026/01/31"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, DisplayDate(tt.input))
	}
}
