// Package dexscreener implements a client for the DexScreener token-pairs
// API, serving both as the DEX pool-snapshot source and as the aggregator
// price provider in the market-data chain.
package dexscreener

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"riskradar/internal/models"
)

const defaultBaseURL = "https://api.dexscreener.com"

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type pairToken struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
}

type pairTxns struct {
	H24 struct {
		Buys  int `json:"buys"`
		Sells int `json:"sells"`
	} `json:"h24"`
}

type pair struct {
	DexID       string    `json:"dexId"`
	PairAddress string    `json:"pairAddress"`
	BaseToken   pairToken `json:"baseToken"`
	QuoteToken  pairToken `json:"quoteToken"`
	PriceUsd    string    `json:"priceUsd"`
	Txns        pairTxns  `json:"txns"`
	Volume      struct {
		H24 float64 `json:"h24"`
	} `json:"volume"`
	PriceChange struct {
		H24 float64 `json:"h24"`
	} `json:"priceChange"`
	Liquidity *struct {
		USD float64 `json:"usd"`
	} `json:"liquidity"`
	MarketCap float64 `json:"marketCap"`
}

type tokenResponse struct {
	Pairs []pair `json:"pairs"`
}

func (c *Client) fetchPairs(ctx context.Context, mint string) ([]pair, error) {
	url := fmt.Sprintf("%s/latest/dex/tokens/%s", c.baseURL, mint)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pairs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var result tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return result.Pairs, nil
}

// GetPoolSnapshots lists every known pool for the mint. An empty slice is a
// verified empty result, not a failure.
func (c *Client) GetPoolSnapshots(ctx context.Context, mint string) ([]models.PoolSnapshot, error) {
	pairs, err := c.fetchPairs(ctx, mint)
	if err != nil {
		return nil, err
	}

	snapshots := make([]models.PoolSnapshot, 0, len(pairs))
	for _, p := range pairs {
		price, _ := strconv.ParseFloat(p.PriceUsd, 64)
		var liquidity float64
		if p.Liquidity != nil {
			liquidity = p.Liquidity.USD
		}
		snapshots = append(snapshots, models.PoolSnapshot{
			Name:           fmt.Sprintf("%s/%s", p.BaseToken.Symbol, p.QuoteToken.Symbol),
			Exchange:       p.DexID,
			LiquidityUSD:   liquidity,
			Volume24h:      p.Volume.H24,
			Txns24h:        p.Txns.H24.Buys + p.Txns.H24.Sells,
			Price:          price,
			PriceChange24h: p.PriceChange.H24,
		})
	}
	return snapshots, nil
}

// GetMarketSnapshot aggregates all pairs into one market-data view: price and
// 24h change come from the deepest pool, volume is summed across pairs.
func (c *Client) GetMarketSnapshot(ctx context.Context, mint string) (*models.MarketData, error) {
	pairs, err := c.fetchPairs(ctx, mint)
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("no pairs found for %s", mint)
	}

	best := pairs[0]
	var totalVolume float64
	for _, p := range pairs {
		totalVolume += p.Volume.H24
		if liq(p) > liq(best) {
			best = p
		}
	}

	price, err := strconv.ParseFloat(best.PriceUsd, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse price %q: %w", best.PriceUsd, err)
	}

	return &models.MarketData{
		Price:          price,
		PriceChange24h: best.PriceChange.H24,
		Volume24h:      totalVolume,
		MarketCap:      best.MarketCap,
	}, nil
}

func liq(p pair) float64 {
	if p.Liquidity == nil {
		return 0
	}
	return p.Liquidity.USD
}
