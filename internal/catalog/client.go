// internal/catalog/client.go
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/promolink/affiliate-backend/internal/config"
	"github.com/promolink/affiliate-backend/internal/models"
)

// ProductGetter is the single-product lookup the enrichment pipelines fan
// out against. *Client and *ProductCache both satisfy it.
type ProductGetter interface {
	GetProduct(ctx context.Context, id uint) (*models.CatalogProduct, error)
}

// envelope is the wire shape every upstream commerce-platform endpoint
// returns: {success, message, data}.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Meta is the pagination block of upstream collection responses.
type Meta struct {
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
	TotalItems  int64 `json:"total_items"`
	PageSize    int   `json:"pagesize"`
}

type productPage struct {
	List []models.CatalogProduct `json:"list"`
	Meta Meta                    `json:"meta"`
}

// Client talks to the brand-side commerce platform's catalog API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.CatalogConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

// ListProducts fetches one page of the product catalog.
func (c *Client) ListProducts(ctx context.Context, page, pageSize int, search string) ([]models.CatalogProduct, Meta, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("pagesize", strconv.Itoa(pageSize))
	if search != "" {
		query.Set("search", search)
	}

	var result productPage
	if err := c.get(ctx, "/products", query, &result); err != nil {
		return nil, Meta{}, fmt.Errorf("failed to list catalog products: %w", err)
	}

	return result.List, result.Meta, nil
}

// GetProduct fetches a single catalog entry by id.
func (c *Client) GetProduct(ctx context.Context, id uint) (*models.CatalogProduct, error) {
	var product models.CatalogProduct
	if err := c.get(ctx, fmt.Sprintf("/products/%d", id), nil, &product); err != nil {
		return nil, fmt.Errorf("failed to fetch catalog product %d: %w", id, err)
	}
	return &product, nil
}

// GetCampaign fetches a campaign with its line items.
func (c *Client) GetCampaign(ctx context.Context, id uint) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := c.get(ctx, fmt.Sprintf("/campaigns/%d", id), nil, &campaign); err != nil {
		return nil, fmt.Errorf("failed to fetch campaign %d: %w", id, err)
	}
	return &campaign, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errors.New("not found")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("malformed response: %w", err)
	}

	if !env.Success {
		if env.Message != "" {
			return errors.New(env.Message)
		}
		return errors.New("upstream request unsuccessful")
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("malformed response data: %w", err)
		}
	}

	return nil
}
