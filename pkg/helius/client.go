// Package helius implements the account-ledger explorer client used for
// best-effort transfer history.
package helius

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"riskradar/internal/models"
)

const (
	defaultBaseURL = "https://api.helius.xyz/v0"

	transferType     = "TRANSFER"
	transferLimit    = 50
	maxTransfersKept = 20
)

// Client talks to the Helius enhanced-transactions API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client

	// Transfers below this UI amount are not considered "large".
	minTransferAmount float64
}

func NewClient(apiKey, baseURL string, minTransferAmount float64, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		apiKey:            apiKey,
		baseURL:           baseURL,
		minTransferAmount: minTransferAmount,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				IdleConnTimeout:       10 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
	}
}

// tokenTransfer is one token movement inside an enhanced transaction.
type tokenTransfer struct {
	FromUserAccount string  `json:"fromUserAccount"`
	ToUserAccount   string  `json:"toUserAccount"`
	TokenAmount     float64 `json:"tokenAmount"`
	Mint            string  `json:"mint"`
}

// enhancedTransaction is the subset of the API response the explorer needs.
type enhancedTransaction struct {
	Signature      string          `json:"signature"`
	Timestamp      int64           `json:"timestamp"`
	TokenTransfers []tokenTransfer `json:"tokenTransfers"`
}

// GetRecentLargeTransfers returns recent transfers of the mint at or above
// the configured minimum amount. An error means the history is unknown; the
// caller records that separately from a verified-empty history.
func (c *Client) GetRecentLargeTransfers(ctx context.Context, mint string) ([]models.Transfer, error) {
	u, err := url.Parse(fmt.Sprintf("%s/addresses/%s/transactions", c.baseURL, mint))
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	q := u.Query()
	q.Add("api-key", c.apiKey)
	q.Add("type", transferType)
	q.Add("limit", fmt.Sprintf("%d", transferLimit))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status code: %d", resp.StatusCode)
	}

	var transactions []enhancedTransaction
	if err := json.NewDecoder(resp.Body).Decode(&transactions); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	transfers := make([]models.Transfer, 0, maxTransfersKept)
	for _, tx := range transactions {
		for _, transfer := range tx.TokenTransfers {
			if transfer.Mint != mint || transfer.TokenAmount < c.minTransferAmount {
				continue
			}
			transfers = append(transfers, models.Transfer{
				Signature:   tx.Signature,
				Amount:      transfer.TokenAmount,
				Source:      transfer.FromUserAccount,
				Destination: transfer.ToUserAccount,
				Timestamp:   tx.Timestamp,
			})
			if len(transfers) >= maxTransfersKept {
				return transfers, nil
			}
		}
	}
	return transfers, nil
}
