// internal/services/link_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/promolink/affiliate-backend/internal/models"
	"github.com/promolink/affiliate-backend/internal/utils"
)

type LinkService struct {
	db *gorm.DB
}

type CreateLinkRequest struct {
	ProductID      uint     `json:"product_id" validate:"required"`
	ProductName    string   `json:"product" validate:"required,min=1,max=255"`
	URL            string   `json:"url" validate:"required,url"`
	DestinationURL string   `json:"destination_url" validate:"omitempty,url"`
	Image          string   `json:"image,omitempty"`
	Tags           []string `json:"tags,omitempty"`
}

func NewLinkService(db *gorm.DB) *LinkService {
	return &LinkService{db: db}
}

func (s *LinkService) CreateLink(affiliateID uuid.UUID, req *CreateLinkRequest) (*models.AffiliateLink, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	link := &models.AffiliateLink{
		AffiliateID:    affiliateID,
		ProductID:      req.ProductID,
		ProductName:    req.ProductName,
		URL:            req.URL,
		DestinationURL: req.DestinationURL,
		Image:          req.Image,
		Tags:           pq.StringArray(req.Tags),
	}

	if err := s.db.Create(link).Error; err != nil {
		return nil, fmt.Errorf("failed to create link: %w", err)
	}

	return link, nil
}

func (s *LinkService) GetLink(id uuid.UUID, affiliateID uuid.UUID) (*models.AffiliateLink, error) {
	var link models.AffiliateLink
	if err := s.db.Unscoped().Where("id = ? AND affiliate_id = ?", id, affiliateID).
		First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("link not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &link, nil
}

// ListLinks returns one page of the affiliate's links for the given view
// mode: live links, or soft-deleted ("expired") ones.
func (s *LinkService) ListLinks(affiliateID uuid.UUID, mode models.LinkViewMode, params utils.PaginationParams) ([]models.AffiliateLink, int64, error) {
	query := s.db.Model(&models.AffiliateLink{}).Where("affiliate_id = ?", affiliateID)

	if mode == models.LinkViewExpired {
		query = query.Unscoped().Where("deleted_at IS NOT NULL")
	}

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(product_name) LIKE ?", searchTerm)
	}

	// Get total count
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count links: %w", err)
	}

	// Apply sorting and pagination
	allowedSortFields := []string{"created_at", "updated_at", "product_name", "total_views"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var links []models.AffiliateLink
	if err := query.Find(&links).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch links: %w", err)
	}

	return links, total, nil
}

// ExpireLink soft-deletes a link. The row stays in place for the expired
// view and for historical earnings.
func (s *LinkService) ExpireLink(id uuid.UUID, affiliateID uuid.UUID) error {
	var link models.AffiliateLink
	if err := s.db.Where("id = ? AND affiliate_id = ?", id, affiliateID).
		First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("link not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&link).Error; err != nil {
		return fmt.Errorf("failed to expire link: %w", err)
	}

	return nil
}

// RestoreLink brings an expired link back to the active view.
func (s *LinkService) RestoreLink(id uuid.UUID, affiliateID uuid.UUID) error {
	result := s.db.Unscoped().Model(&models.AffiliateLink{}).
		Where("id = ? AND affiliate_id = ? AND deleted_at IS NOT NULL", id, affiliateID).
		Update("deleted_at", nil)

	if result.Error != nil {
		return fmt.Errorf("failed to restore link: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("link not found")
	}

	return nil
}

// TrackClick records one view of a link.
func (s *LinkService) TrackClick(id uuid.UUID) error {
	result := s.db.Model(&models.AffiliateLink{}).Where("id = ?", id).
		UpdateColumn("total_views", gorm.Expr("total_views + 1"))

	if result.Error != nil {
		return fmt.Errorf("failed to track click: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("link not found")
	}

	return nil
}
