// internal/models/coupon.go
package models

import (
	"time"

	"github.com/lib/pq"
)

// Coupon is a brand-managed discount code surfaced to affiliates for
// promotion. Redemption happens on the commerce platform, not here.
type Coupon struct {
	BaseModel
	Code            string         `json:"code" gorm:"uniqueIndex;not null"`
	Description     string         `json:"description"`
	DiscountPercent float64        `json:"discount_percent" gorm:"type:decimal(5,2);default:0"`
	ProductIDs      pq.Int64Array  `json:"product_ids" gorm:"type:bigint[]"`
	Tags            pq.StringArray `json:"tags" gorm:"type:text[]"`
	Status          CouponStatus   `json:"status" gorm:"type:varchar(20);default:'active';index"`
	ValidFrom       *time.Time     `json:"valid_from,omitempty"`
	ValidUntil      *time.Time     `json:"valid_until,omitempty"`
}

func (Coupon) TableName() string {
	return "coupons"
}
