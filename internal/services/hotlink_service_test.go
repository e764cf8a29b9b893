// internal/services/hotlink_service_test.go
package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promolink/affiliate-backend/internal/models"
	"github.com/promolink/affiliate-backend/internal/utils"
)

type fakeLinkLister struct {
	links []models.AffiliateLink
	total int64
	err   error
}

func (f *fakeLinkLister) ListLinks(affiliateID uuid.UUID, mode models.LinkViewMode, params utils.PaginationParams) ([]models.AffiliateLink, int64, error) {
	return f.links, f.total, f.err
}

type fakeCommissionSource struct {
	records []models.CommissionRecord
	err     error
}

func (f *fakeCommissionSource) AllRecords(affiliateID uuid.UUID) ([]models.CommissionRecord, error) {
	return f.records, f.err
}

func TestGetHotlinksJoinsAllSources(t *testing.T) {
	links := &fakeLinkLister{
		links: []models.AffiliateLink{
			{ProductID: 1, ProductName: "Widget", TotalViews: 10},
			{ProductID: 2, ProductName: "Gadget"},
		},
		total: 2,
	}
	records := &fakeCommissionSource{
		records: []models.CommissionRecord{
			{Name: "widget", Commission: "5", ProductPrice: "40", CommissionPercentage: "8"},
		},
	}
	cat := newFakeCatalog()
	cat.products[1] = &models.CatalogProduct{ID: 1, Name: "Widget", Price: 50.0, Commission: 10.0}
	cat.failProducts[2] = true

	service := NewHotlinkService(links, records, cat, 4)
	hotlinks, total, err := service.GetHotlinks(context.Background(), uuid.New(), models.LinkViewActive, utils.PaginationParams{})

	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, hotlinks, 2)

	// First link: catalog entry wins, finance history supplies earnings.
	assert.Equal(t, 50.0, hotlinks[0].Price)
	assert.Equal(t, 5.0, hotlinks[0].Commission)
	assert.Equal(t, 5.0, hotlinks[0].Earnings)
	assert.Equal(t, "10.0%", hotlinks[0].Conversion)

	// Second link: catalog lookup failed, no finance history; degraded row.
	assert.Zero(t, hotlinks[1].Price)
	assert.Zero(t, hotlinks[1].Commission)
}

func TestGetHotlinksLinkFetchErrorSurfaces(t *testing.T) {
	links := &fakeLinkLister{err: errors.New("database error")}

	service := NewHotlinkService(links, &fakeCommissionSource{}, newFakeCatalog(), 4)
	_, _, err := service.GetHotlinks(context.Background(), uuid.New(), models.LinkViewActive, utils.PaginationParams{})

	require.Error(t, err)
}

func TestGetHotlinksRecordFetchErrorSurfaces(t *testing.T) {
	links := &fakeLinkLister{
		links: []models.AffiliateLink{{ProductID: 1, ProductName: "Widget"}},
		total: 1,
	}
	records := &fakeCommissionSource{err: errors.New("database error")}

	service := NewHotlinkService(links, records, newFakeCatalog(), 4)
	_, _, err := service.GetHotlinks(context.Background(), uuid.New(), models.LinkViewActive, utils.PaginationParams{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "commission records")
}

func TestGetHotlinksEmptyPage(t *testing.T) {
	service := NewHotlinkService(&fakeLinkLister{}, &fakeCommissionSource{}, newFakeCatalog(), 4)
	hotlinks, total, err := service.GetHotlinks(context.Background(), uuid.New(), models.LinkViewActive, utils.PaginationParams{})

	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, hotlinks)
}
