// internal/models/payout.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Payout is one withdrawal of confirmed commission earnings to an affiliate.
type Payout struct {
	BaseModel
	AffiliateID      uuid.UUID    `json:"affiliate_id" gorm:"type:uuid;not null;index"`
	Amount           float64      `json:"amount" gorm:"type:decimal(12,2);not null"`
	Currency         string       `json:"currency" gorm:"type:varchar(3);default:'usd'"`
	Method           string       `json:"method" gorm:"type:varchar(32);not null"`
	StripeTransferID string       `json:"stripe_transfer_id,omitempty"`
	Status           PayoutStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	FailureReason    string       `json:"failure_reason,omitempty"`
	Metadata         JSONB        `json:"metadata,omitempty" gorm:"type:jsonb"`
	ProcessedAt      *time.Time   `json:"processed_at,omitempty"`
}

func (Payout) TableName() string {
	return "payouts"
}
