// internal/models/link.go
package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// AffiliateLink is a promotional link owned by an affiliate. A soft-deleted
// link (DeletedAt set) is an "expired" link: it stays queryable for the
// expired view and for historical earnings, and is never physically removed
// by this layer.
type AffiliateLink struct {
	BaseModel
	AffiliateID    uuid.UUID      `json:"affiliate_id" gorm:"type:uuid;not null;index"`
	ProductID      uint           `json:"product_id" gorm:"not null;index"`
	ProductName    string         `json:"product" gorm:"column:product_name;not null"`
	URL            string         `json:"url" gorm:"not null"`
	DestinationURL string         `json:"destination_url"`
	TotalViews     int64          `json:"total_views" gorm:"default:0"`
	Image          string         `json:"image"`
	Tags           pq.StringArray `json:"tags" gorm:"type:text[]"`
}

func (AffiliateLink) TableName() string {
	return "affiliate_links"
}
