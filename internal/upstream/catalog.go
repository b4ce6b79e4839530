package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/axelfrache/polymove/internal/model"
)

// CatalogClient fetches mobility offers from the catalog service over REST.
// The shared http.Client enforces the per-call upstream timeout.
type CatalogClient struct {
	baseURL string
	client  *http.Client
}

// NewCatalogClient constructs a client with a shared HTTP client bounded by
// timeout.
func NewCatalogClient(baseURL string, timeout time.Duration) *CatalogClient {
	return &CatalogClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// FetchOffers retrieves the offer list under an optional city or domain
// filter. At most one filter is forwarded upstream: city takes precedence
// when both are set. Filtering correctness is the catalog's responsibility.
func (c *CatalogClient) FetchOffers(ctx context.Context, city, domain string) ([]model.Offer, error) {
	endpoint := c.baseURL + "/offer"

	params := url.Values{}
	if city != "" {
		params.Set("city", city)
	} else if domain != "" {
		params.Set("domain", domain)
	}
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: http GET: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: catalog returned %d", ErrUnavailable, resp.StatusCode)
	}

	var offers []model.Offer
	if err := json.Unmarshal(body, &offers); err != nil {
		return nil, fmt.Errorf("%w: json unmarshal: %v", ErrUnavailable, err)
	}

	return offers, nil
}

// Ping probes the catalog's health endpoint.
func (c *CatalogClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: catalog health returned %d", ErrUnavailable, resp.StatusCode)
	}
	return nil
}
