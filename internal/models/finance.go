// internal/models/finance.go
package models

import (
	"github.com/google/uuid"
)

// CommissionRecord is one historical order/commission event ingested from the
// brand-side platform. Upstream keys these by display name rather than by
// product id, and sends its numeric fields as free text, so Commission,
// ProductPrice and CommissionPercentage stay strings here and are parsed
// through the numeric sanitizer at read time.
type CommissionRecord struct {
	BaseModel
	AffiliateID          uuid.UUID        `json:"affiliate_id" gorm:"type:uuid;not null;index"`
	Name                 string           `json:"name" gorm:"not null;index"`
	Commission           string           `json:"commission"`
	ProductPrice         string           `json:"product_price"`
	CommissionPercentage string           `json:"commission_percentage"`
	Image                string           `json:"image"`
	OrderRef             string           `json:"order_ref" gorm:"index"`
	Status               CommissionStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
}

func (CommissionRecord) TableName() string {
	return "commission_records"
}
