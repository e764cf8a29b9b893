// internal/catalog/client_test.go
package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promolink/affiliate-backend/internal/config"
)

func newTestClient(server *httptest.Server) *Client {
	return NewClient(config.CatalogConfig{
		BaseURL: server.URL,
		Timeout: 5,
	})
}

func TestClientListProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "shoe", r.URL.Query().Get("search"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"success": true,
			"message": "",
			"data": {
				"list": [
					{"id": 1, "name": "Shoe", "price": 49.5, "commission": 10},
					{"id": 2, "name": "Boot", "price": "89.90", "commission": "12.5"}
				],
				"meta": {"current_page": 2, "last_page": 5, "total_items": 93, "pagesize": 20}
			}
		}`))
	}))
	defer server.Close()

	products, meta, err := newTestClient(server).ListProducts(context.Background(), 2, 20, "shoe")

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, uint(1), products[0].ID)
	assert.Equal(t, "Shoe", products[0].Name)
	// Upstream mixes numeric and string encodings; both must survive decode.
	assert.Equal(t, 49.5, products[0].Price)
	assert.Equal(t, "89.90", products[1].Price)
	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, int64(93), meta.TotalItems)
}

func TestClientGetProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/9", r.URL.Path)
		w.Write([]byte(`{"success": true, "data": {"id": 9, "name": "Widget", "price": 50, "commission": 10}}`))
	}))
	defer server.Close()

	product, err := newTestClient(server).GetProduct(context.Background(), 9)

	require.NoError(t, err)
	assert.Equal(t, uint(9), product.ID)
	assert.Equal(t, "Widget", product.Name)
}

func TestClientGetCampaign(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/campaigns/7", r.URL.Path)
		w.Write([]byte(`{
			"success": true,
			"data": {
				"id": 7,
				"name": "Summer Sale",
				"start_date": "2026-06-01",
				"end_date": "2026-08-31",
				"items": [{"id": 1, "name": "Widget", "image": "w.png", "link": "https://shop.example.com/widget"}]
			}
		}`))
	}))
	defer server.Close()

	campaign, err := newTestClient(server).GetCampaign(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "Summer Sale", campaign.Name)
	require.Len(t, campaign.Items, 1)
	assert.Equal(t, uint(1), campaign.Items[0].ID)
}

func TestClientUnsuccessfulEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "message": "product unavailable"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server).GetProduct(context.Background(), 9)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "product unavailable")
}

func TestClientNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestClient(server).GetProduct(context.Background(), 9)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestClientServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newTestClient(server).GetProduct(context.Background(), 9)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
}

func TestClientContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(server).GetProduct(ctx, 9)
	require.Error(t, err)
}
