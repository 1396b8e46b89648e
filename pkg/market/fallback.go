package market

import "riskradar/internal/models"

// fallbackPrices are last-resort static entries for well-known symbols. The
// values are deliberately deterministic so reports remain reproducible when
// every live provider is down.
var fallbackPrices = map[string]models.MarketData{
	"SOL":  {Price: 150.0, PriceChange24h: 0},
	"USDC": {Price: 1.0, PriceChange24h: 0},
	"USDT": {Price: 1.0, PriceChange24h: 0},
	"BONK": {Price: 0.000025, PriceChange24h: 0},
	"JUP":  {Price: 0.85, PriceChange24h: 0},
}

// minimalFallbackPrice keeps downstream valuation defined for unrecognized
// symbols without pretending any real value is known.
const minimalFallbackPrice = 0.000001

func fallbackMarketData(symbol string) models.MarketData {
	if entry, ok := fallbackPrices[symbol]; ok {
		entry.Volume24h = 0
		entry.Source = "fallback"
		return entry
	}
	return models.MarketData{
		Price:  minimalFallbackPrice,
		Source: "fallback",
	}
}
