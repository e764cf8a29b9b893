// internal/services/payout_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/transfer"
	"gorm.io/gorm"

	"github.com/promolink/affiliate-backend/internal/config"
	"github.com/promolink/affiliate-backend/internal/enrich"
	"github.com/promolink/affiliate-backend/internal/models"
	"github.com/promolink/affiliate-backend/internal/utils"
)

type PayoutService struct {
	db     *gorm.DB
	config *config.Config
}

type RequestPayoutRequest struct {
	Amount             float64                `json:"amount" validate:"required,gt=0"`
	Method             string                 `json:"method" validate:"required"`
	DestinationAccount string                 `json:"destination_account" validate:"required"`
	Metadata           map[string]interface{} `json:"metadata,omitempty"`
}

type Balance struct {
	TotalEarned float64 `json:"total_earned"`
	TotalPaid   float64 `json:"total_paid"`
	Available   float64 `json:"available"`
}

func NewPayoutService(db *gorm.DB, cfg *config.Config) *PayoutService {
	// Initialize Stripe
	stripe.Key = cfg.Payment.StripeSecretKey

	return &PayoutService{
		db:     db,
		config: cfg,
	}
}

// GetBalance computes the affiliate's withdrawable balance: sanitized sum of
// confirmed commission amounts minus everything already paid out or pending.
func (s *PayoutService) GetBalance(affiliateID uuid.UUID) (*Balance, error) {
	var records []models.CommissionRecord
	if err := s.db.Where("affiliate_id = ? AND status IN ?", affiliateID,
		[]models.CommissionStatus{models.CommissionStatusConfirmed, models.CommissionStatusPaid}).
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch commission records: %w", err)
	}

	var earned float64
	for i := range records {
		earned += enrich.Sanitize(records[i].Commission)
	}

	var paid float64
	if err := s.db.Model(&models.Payout{}).
		Where("affiliate_id = ? AND status IN ?", affiliateID,
			[]models.PayoutStatus{models.PayoutStatusPending, models.PayoutStatusCompleted}).
		Select("COALESCE(SUM(amount), 0)").Scan(&paid).Error; err != nil {
		return nil, fmt.Errorf("failed to sum payouts: %w", err)
	}

	return &Balance{
		TotalEarned: earned,
		TotalPaid:   paid,
		Available:   earned - paid,
	}, nil
}

func (s *PayoutService) RequestPayout(affiliateID uuid.UUID, req *RequestPayoutRequest) (*models.Payout, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.Amount < s.config.Payment.MinimumPayout {
		return nil, fmt.Errorf("payout amount is below the minimum of %.2f", s.config.Payment.MinimumPayout)
	}

	balance, err := s.GetBalance(affiliateID)
	if err != nil {
		return nil, err
	}
	if req.Amount > balance.Available {
		return nil, errors.New("payout amount exceeds available balance")
	}

	payout := &models.Payout{
		AffiliateID: affiliateID,
		Amount:      req.Amount,
		Currency:    s.config.Payment.Currency,
		Method:      req.Method,
		Status:      models.PayoutStatusPending,
		Metadata:    models.JSONB(req.Metadata),
	}

	if err := s.db.Create(payout).Error; err != nil {
		return nil, fmt.Errorf("failed to create payout: %w", err)
	}

	// Convert amount to cents for Stripe
	amountInCents := int64(req.Amount * 100)

	params := &stripe.TransferParams{
		Amount:      stripe.Int64(amountInCents),
		Currency:    stripe.String(payout.Currency),
		Destination: stripe.String(req.DestinationAccount),
	}
	params.AddMetadata("affiliate_id", affiliateID.String())
	params.AddMetadata("payout_id", payout.ID.String())

	tr, err := transfer.New(params)
	if err != nil {
		payout.Status = models.PayoutStatusFailed
		payout.FailureReason = err.Error()
		s.db.Save(payout)

		logrus.WithError(err).WithFields(logrus.Fields{
			"affiliate_id": affiliateID,
			"payout_id":    payout.ID,
		}).Error("Stripe transfer failed")

		return nil, fmt.Errorf("failed to create transfer: %w", err)
	}

	now := time.Now()
	payout.StripeTransferID = tr.ID
	payout.Status = models.PayoutStatusCompleted
	payout.ProcessedAt = &now

	if err := s.db.Save(payout).Error; err != nil {
		return nil, fmt.Errorf("failed to update payout: %w", err)
	}

	return payout, nil
}

func (s *PayoutService) ListPayouts(affiliateID uuid.UUID, params utils.PaginationParams) ([]models.Payout, int64, error) {
	query := s.db.Model(&models.Payout{}).Where("affiliate_id = ?", affiliateID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count payouts: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "amount", "status"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var payouts []models.Payout
	if err := query.Find(&payouts).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch payouts: %w", err)
	}

	return payouts, total, nil
}
