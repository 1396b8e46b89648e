// Package market implements the ordered provider-fallback chain for price
// and volume data. Providers are interchangeable strategies; the chain tries
// each in priority order and only falls back to a static table when every
// provider fails.
package market

import (
	"context"
	"math"

	log "github.com/sirupsen/logrus"

	"riskradar/internal/models"
)

// Provider is one market-data source. FetchPrice returns an error (or a
// snapshot without a usable price) when the source cannot answer; the chain
// then advances to the next provider.
type Provider interface {
	Name() string
	FetchPrice(ctx context.Context, symbol, mint string) (*models.MarketData, error)
}

// Chain holds the ordered provider list. It never fails: exhausting all
// providers yields a deterministic fallback entry.
type Chain struct {
	providers []Provider
}

func NewChain(providers ...Provider) *Chain {
	return &Chain{providers: providers}
}

// GetMarketData returns the first provider's successful snapshot verbatim,
// tagged with that provider's name. Provider failures are advisory only.
func (c *Chain) GetMarketData(ctx context.Context, symbol, mint string) models.MarketData {
	for _, provider := range c.providers {
		md, err := provider.FetchPrice(ctx, symbol, mint)
		if err != nil {
			log.Warnf("market: provider %s failed for %s/%s: %v", provider.Name(), symbol, mint, err)
			continue
		}
		if md == nil || !usablePrice(md.Price) {
			log.Warnf("market: provider %s returned no usable price for %s/%s", provider.Name(), symbol, mint)
			continue
		}
		md.Source = provider.Name()
		return *md
	}
	return fallbackMarketData(symbol)
}

func usablePrice(price float64) bool {
	return price > 0 && !math.IsInf(price, 0) && !math.IsNaN(price)
}
