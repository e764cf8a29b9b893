// internal/models/catalog.go
package models

// Catalog DTOs for the brand-side commerce platform. These are decoded from
// upstream JSON, not persisted.

// CatalogProduct is a product catalog entry. Upstream serializes price and
// commission inconsistently (sometimes a JSON number, sometimes a quoted
// string), so both fields are left untyped and go through enrich.Sanitize
// before any arithmetic.
type CatalogProduct struct {
	ID         uint        `json:"id"`
	Name       string      `json:"name"`
	Image      string      `json:"image"`
	Price      interface{} `json:"price"`
	Commission interface{} `json:"commission"`
}

// CampaignItem is a single line item of a brand campaign.
type CampaignItem struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Link  string `json:"link"`
}

// Campaign as returned by the campaign-by-id lookup. Dates arrive in
// YYYY-MM-DD machine format.
type Campaign struct {
	ID        uint           `json:"id"`
	Name      string         `json:"name"`
	Image     string         `json:"image"`
	StartDate string         `json:"start_date"`
	EndDate   string         `json:"end_date"`
	Items     []CampaignItem `json:"items"`
}
