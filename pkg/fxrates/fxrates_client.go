package fxrates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client fetches spot FX rates from the Yahoo chart endpoint, which
// quotes currency pairs as symbols like "USDCNY=X".
type Client struct {
	HttpClient *http.Client
	BaseUrl    string
}

func NewClient() *Client {
	return &Client{
		HttpClient: &http.Client{Timeout: 8 * time.Second},
		BaseUrl:    "https://query2.finance.yahoo.com",
	}
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				RegularMarketTime  int64   `json:"regularMarketTime"`
			} `json:"meta"`
		} `json:"result"`
	} `json:"chart"`
}

// GetRate returns how many units of `to` one unit of `from` buys.
// Currencies are ISO 4217 codes.
func (c *Client) GetRate(ctx context.Context, from, to string) (float64, error) {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))
	if from == "" || to == "" {
		return 0, fmt.Errorf("invalid currency pair %q/%q", from, to)
	}
	if from == to {
		return 1, nil
	}

	url := fmt.Sprintf("%s/v8/finance/chart/%s%s=X?interval=1h&range=1d", c.BaseUrl, from, to)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", "portfoliotracker/1.0")

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch fx rate %s/%s: %w", from, to, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("fx rate request for %s/%s returned status %d", from, to, resp.StatusCode)
	}

	var raw chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return 0, fmt.Errorf("failed to decode fx rate response: %w", err)
	}
	if len(raw.Chart.Result) == 0 {
		return 0, fmt.Errorf("no fx rate found for %s/%s", from, to)
	}

	rate := raw.Chart.Result[0].Meta.RegularMarketPrice
	if rate <= 0 {
		return 0, fmt.Errorf("invalid fx rate %f for %s/%s", rate, from, to)
	}

	return rate, nil
}
