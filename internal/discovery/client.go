package discovery

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	// MaxBatchSize is the maximum number of markets per Gamma API request,
	// matching Polymarket's official client.
	MaxBatchSize = 100

	// gammaRatePerSec keeps us well under the documented Gamma limit of
	// 300 requests per 10s.
	gammaRatePerSec = 18
)

// Client is an HTTP client for the Polymarket Gamma API.
type Client struct {
	baseURL    string
	pageSize   int
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zap.Logger
}

// NewClient creates a new Gamma API client. pageSize is the number of
// markets requested per page; values outside (0, MaxBatchSize] fall back
// to MaxBatchSize.
func NewClient(baseURL string, pageSize int, logger *zap.Logger) *Client {
	if pageSize <= 0 || pageSize > MaxBatchSize {
		pageSize = MaxBatchSize
	}

	return &Client{
		baseURL:  baseURL,
		pageSize: pageSize,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(gammaRatePerSec, 10),
		logger:  logger,
	}
}

// ListAllMarkets pages through every active non-closed market and returns
// the raw records. Pagination stops when a short page comes back. A page
// failure mid-scan returns what was fetched so far along with the error;
// the caller decides whether a partial scan is usable.
func (c *Client) ListAllMarkets(ctx context.Context) ([]RawMarket, error) {
	var all []RawMarket
	offset := 0

	for {
		page, err := c.ListMarkets(ctx, c.pageSize, offset)
		if err != nil {
			FetchErrorsTotal.Inc()
			return all, fmt.Errorf("fetch markets page (offset=%d): %w", offset, err)
		}

		all = append(all, page...)
		MarketsFetchedTotal.Add(float64(len(page)))

		if len(page) < c.pageSize {
			break
		}
		offset += c.pageSize
	}

	c.logger.Debug("market-list-complete", zap.Int("total", len(all)))

	return all, nil
}

// ListMarkets fetches a single page of active markets.
func (c *Client) ListMarkets(ctx context.Context, limit, offset int) ([]RawMarket, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	params := url.Values{}
	params.Add("active", "true")
	params.Add("closed", "false")
	params.Add("limit", strconv.Itoa(limit))
	params.Add("offset", strconv.Itoa(offset))

	requestURL := fmt.Sprintf("%s/markets?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "lp-bot/1.0")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()
	FetchDurationSeconds.Observe(time.Since(start).Seconds())

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	// Gamma returns a direct array, not a wrapped object.
	var markets []RawMarket
	err = json.Unmarshal(body, &markets)
	if err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	c.logger.Debug("fetched-markets-page",
		zap.Int("limit", limit),
		zap.Int("offset", offset),
		zap.Int("count", len(markets)))

	return markets, nil
}
