package listing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hubhand/storefront/internal/models"
	"github.com/hubhand/storefront/internal/repo"
)

// Client fetches catalog pages over the storefront's own HTTP API. The
// optional bearer token is forwarded untouched so the backend can apply
// row-level visibility for the viewer.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *Client) FetchPage(ctx context.Context, category string, sort repo.SortOption, limit, offset int) ([]models.Product, int, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	q.Set("sort", sort.String())
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/products?"+q.Encode(), nil)
	if err != nil {
		return nil, 0, err
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("catalog API request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(res.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return nil, 0, fmt.Errorf("catalog API: %s", apiErr.Error)
		}
		return nil, 0, fmt.Errorf("catalog API: unexpected status %s", res.Status)
	}

	var page struct {
		Products []models.Product `json:"products"`
		Total    int              `json:"total"`
	}
	if err := json.NewDecoder(res.Body).Decode(&page); err != nil {
		return nil, 0, fmt.Errorf("decode catalog page: %w", err)
	}
	return page.Products, page.Total, nil
}
