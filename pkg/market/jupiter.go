package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"riskradar/internal/models"
)

const (
	defaultJupiterBaseURL = "https://lite-api.jup.ag/swap/v1"

	usdcMint     = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	usdcDecimals = 6

	// Quote a fixed 1e9 base units; most SPL mints use 9 decimals, so this
	// approximates one UI token.
	quoteAmountRaw = "1000000000"
	quoteSlippage  = 50
)

// JupiterProvider derives a USD price from the Jupiter routing engine by
// quoting a swap into USDC. It is the last live provider in the chain: routes
// exist for almost anything with liquidity, but the answer carries no volume
// or change data.
type JupiterProvider struct {
	baseURL    string
	httpClient *http.Client
}

func NewJupiterProvider(baseURL string, timeout time.Duration) *JupiterProvider {
	if baseURL == "" {
		baseURL = defaultJupiterBaseURL
	}
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &JupiterProvider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (p *JupiterProvider) Name() string { return "jupiter" }

type quoteResponse struct {
	InputMint  string `json:"inputMint"`
	InAmount   string `json:"inAmount"`
	OutputMint string `json:"outputMint"`
	OutAmount  string `json:"outAmount"`
	SwapMode   string `json:"swapMode"`
}

func (p *JupiterProvider) FetchPrice(ctx context.Context, symbol, mint string) (*models.MarketData, error) {
	if mint == "" {
		mint = wellKnownMint(symbol)
	}
	if mint == "" {
		return nil, fmt.Errorf("no mint known for symbol %q", symbol)
	}
	if mint == usdcMint {
		return &models.MarketData{Price: 1.0}, nil
	}

	params := url.Values{}
	params.Add("inputMint", mint)
	params.Add("outputMint", usdcMint)
	params.Add("amount", quoteAmountRaw)
	params.Add("slippageBps", strconv.Itoa(quoteSlippage))
	params.Add("restrictIntermediateTokens", "true")

	fullURL := fmt.Sprintf("%s/quote?%s", p.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quote: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var quote quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		return nil, fmt.Errorf("failed to decode quote: %w", err)
	}

	outAmount, err := strconv.ParseFloat(quote.OutAmount, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse outAmount: %w", err)
	}
	inAmount, err := strconv.ParseFloat(quote.InAmount, 64)
	if err != nil || inAmount == 0 {
		inAmount, _ = strconv.ParseFloat(quoteAmountRaw, 64)
	}

	// Price per quoted unit: USDC out (6 decimals) over base units in,
	// assuming 9 input decimals.
	price := (outAmount / 1e6) / (inAmount / 1e9)
	return &models.MarketData{Price: price}, nil
}
