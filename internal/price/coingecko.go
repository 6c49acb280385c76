package price

import (
	"context"       // Context for the outbound request
	"encoding/json" // JSON decoding
	"errors"        // Sentinel errors
	"fmt"           // Error formatting
	"net/http"      // HTTP client
	"net/url"       // Query encoding
	"strings"       // Identifier list joining
	"time"          // Client timeout
)

// ErrRateLimit is returned when the provider signals throttling (HTTP 429).
// Callers map it to a specific retry-later reply, not a generic failure.
var ErrRateLimit = errors.New("price provider rate limited")

// Quote is the current price of one asset
type Quote struct {
	USD float64 `json:"usd"` // Price in US dollars
}

// Service fetches current prices for a batch of provider identifiers.
// Identifiers absent from the result simply have no price available.
type Service interface {
	Fetch(ctx context.Context, ids []string) (map[string]Quote, error)
}

// Compile-time check to ensure CoinGecko implements Service
var _ Service = (*CoinGecko)(nil)

// CoinGecko fetches prices from the CoinGecko simple price API
type CoinGecko struct {
	baseURL string       // Base URL of the API
	client  *http.Client // HTTP client with a bounded timeout
}

// NewCoinGecko returns a client for the API at baseURL
func NewCoinGecko(baseURL string) *CoinGecko {
	return &CoinGecko{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second}, // A slow provider must not stall the batch
	}
}

// Fetch queries USD prices for all ids in a single request
func (c *CoinGecko) Fetch(ctx context.Context, ids []string) (map[string]Quote, error) {
	q := url.Values{}
	q.Set("ids", strings.Join(ids, ",")) // One batch request, never one per symbol
	q.Set("vs_currencies", "usd")
	reqURL := c.baseURL + "/simple/price?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req) // Timeout counts as a provider failure
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// HTTP 429 maps to the rate-limit sentinel, anything else non-200 is generic
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimit
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("price provider returned status %d", resp.StatusCode)
	}

	quotes := map[string]Quote{}
	if err := json.NewDecoder(resp.Body).Decode(&quotes); err != nil {
		return nil, fmt.Errorf("decode price response: %w", err)
	}
	return quotes, nil
}
