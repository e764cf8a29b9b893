// internal/enrich/index_test.go
package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promolink/affiliate-backend/internal/models"
)

func TestBuildProductIndex(t *testing.T) {
	products := []models.CatalogProduct{
		{ID: 1, Name: "Widget"},
		{ID: 2, Name: "Gadget"},
	}

	index := BuildProductIndex(products)

	require.Len(t, index, 2)
	assert.Equal(t, "Widget", index[1].Name)
	assert.Equal(t, "Gadget", index[2].Name)
	assert.Nil(t, index[3])
}

func TestBuildProductIndexEmpty(t *testing.T) {
	assert.Empty(t, BuildProductIndex(nil))
	assert.Empty(t, BuildProductIndex([]models.CatalogProduct{}))
}

func TestBuildProductIndexDuplicateIDs(t *testing.T) {
	products := []models.CatalogProduct{
		{ID: 1, Name: "First"},
		{ID: 1, Name: "Second"},
	}

	index := BuildProductIndex(products)

	// Last write wins
	require.Len(t, index, 1)
	assert.Equal(t, "Second", index[1].Name)
}
