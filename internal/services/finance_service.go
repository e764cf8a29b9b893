// internal/services/finance_service.go
package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/promolink/affiliate-backend/internal/enrich"
	"github.com/promolink/affiliate-backend/internal/models"
	"github.com/promolink/affiliate-backend/internal/utils"
)

type FinanceService struct {
	db *gorm.DB
}

type ProductEarnings struct {
	Name     string  `json:"name"`
	Earnings float64 `json:"earnings"`
	Orders   int     `json:"orders"`
}

type EarningsSummary struct {
	TotalEarnings float64           `json:"total_earnings"`
	OrderCount    int               `json:"order_count"`
	Products      []ProductEarnings `json:"products"`
}

func NewFinanceService(db *gorm.DB) *FinanceService {
	return &FinanceService{db: db}
}

// ListRecords returns one page of the affiliate's commission records.
func (s *FinanceService) ListRecords(affiliateID uuid.UUID, params utils.PaginationParams) ([]models.CommissionRecord, int64, error) {
	query := s.db.Model(&models.CommissionRecord{}).Where("affiliate_id = ?", affiliateID)

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ?", searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count commission records: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "name", "status"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var records []models.CommissionRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch commission records: %w", err)
	}

	return records, total, nil
}

// AllRecords returns the affiliate's full commission history, unpaginated.
// Both the earnings summary and the hotlink display aggregate over it.
func (s *FinanceService) AllRecords(affiliateID uuid.UUID) ([]models.CommissionRecord, error) {
	var records []models.CommissionRecord
	if err := s.db.Where("affiliate_id = ?", affiliateID).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch commission records: %w", err)
	}
	return records, nil
}

// GetEarningsSummary aggregates the affiliate's full commission history.
// Totals go through the same aggregation as the hotlink display, so the two
// surfaces always agree.
func (s *FinanceService) GetEarningsSummary(affiliateID uuid.UUID) (*EarningsSummary, error) {
	records, err := s.AllRecords(affiliateID)
	if err != nil {
		return nil, err
	}

	aggregates := enrich.AggregateCommissions(records)

	summary := &EarningsSummary{
		Products: make([]ProductEarnings, 0, len(aggregates)),
	}

	for _, agg := range aggregates {
		summary.TotalEarnings += agg.TotalEarnings
		summary.OrderCount += agg.OrderCount
		summary.Products = append(summary.Products, ProductEarnings{
			Name:     agg.First.Name,
			Earnings: agg.TotalEarnings,
			Orders:   agg.OrderCount,
		})
	}

	sort.Slice(summary.Products, func(i, j int) bool {
		if summary.Products[i].Earnings != summary.Products[j].Earnings {
			return summary.Products[i].Earnings > summary.Products[j].Earnings
		}
		return summary.Products[i].Name < summary.Products[j].Name
	})

	return summary, nil
}
