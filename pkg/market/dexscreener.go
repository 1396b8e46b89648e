package market

import (
	"context"
	"fmt"

	"riskradar/internal/models"
	"riskradar/pkg/dexscreener"
)

// DexScreenerProvider answers from the DexScreener pair aggregator. It is the
// primary provider: it is the only source that carries real volume figures.
type DexScreenerProvider struct {
	client *dexscreener.Client
}

func NewDexScreenerProvider(client *dexscreener.Client) *DexScreenerProvider {
	return &DexScreenerProvider{client: client}
}

func (p *DexScreenerProvider) Name() string { return "dexscreener" }

func (p *DexScreenerProvider) FetchPrice(ctx context.Context, symbol, mint string) (*models.MarketData, error) {
	if mint == "" {
		mint = wellKnownMint(symbol)
	}
	if mint == "" {
		return nil, fmt.Errorf("no mint known for symbol %q", symbol)
	}
	return p.client.GetMarketSnapshot(ctx, mint)
}

// wellKnownMint maps major symbols to their mint so symbol-only lookups still
// reach mint-keyed providers.
func wellKnownMint(symbol string) string {
	switch symbol {
	case "SOL":
		return "So11111111111111111111111111111111111111112"
	case "USDC":
		return "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	case "USDT":
		return "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB"
	case "BONK":
		return "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263"
	case "JUP":
		return "JUPyiwrYJFskUPiHa7hkeR8VUtAeFoSYbKedZNsDvCN"
	}
	return ""
}
