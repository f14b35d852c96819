// Package markets provides read-only CLOB price lookups used by the
// fill-risk monitor.
package markets

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"github.com/polymaker/lp-bot/pkg/types"
)

// MidpointSource fetches the current midpoint for an outcome token.
type MidpointSource interface {
	GetMidpoint(ctx context.Context, tokenID string) (float64, error)
}

// MidpointClient fetches midpoints from the public CLOB API. No auth
// required.
type MidpointClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewMidpointClient creates a new midpoint client.
func NewMidpointClient(baseURL string) *MidpointClient {
	return &MidpointClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GetMidpoint fetches the midpoint price for a token from GET /midpoint.
func (c *MidpointClient) GetMidpoint(ctx context.Context, tokenID string) (float64, error) {
	endpoint := fmt.Sprintf("%s/midpoint?token_id=%s", c.baseURL, url.QueryEscape(tokenID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		MidpointFetchErrorsTotal.Inc()
		return 0, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()
	MidpointFetchDurationSeconds.Observe(time.Since(start).Seconds())

	if resp.StatusCode != http.StatusOK {
		MidpointFetchErrorsTotal.Inc()
		return 0, fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	var mid types.MidpointResponse
	if err := json.NewDecoder(resp.Body).Decode(&mid); err != nil {
		MidpointFetchErrorsTotal.Inc()
		return 0, fmt.Errorf("decode response: %w", err)
	}

	if mid.Mid <= 0 || mid.Mid >= 1 {
		return 0, fmt.Errorf("midpoint out of range: %f", mid.Mid)
	}

	return mid.Mid, nil
}
