package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"riskradar/internal/models"
)

func TestAnalyzeMarket(t *testing.T) {
	t.Run("Rising Liquid Market Is Bullish", func(t *testing.T) {
		md := models.MarketData{Price: 1.2, PriceChange24h: 8, Volume24h: 1_000_000, Source: "dexscreener"}
		sentiment := AnalyzeMarket(md, nil)

		assert.Equal(t, "bullish", sentiment.Sentiment)
		assert.Equal(t, "low", sentiment.RiskLevel)
		assert.Equal(t, "accumulate", sentiment.Recommendation)
		assert.InDelta(t, 0.75, sentiment.Confidence, 0.01)
	})

	t.Run("Crashing Market Is Bearish And High Risk", func(t *testing.T) {
		md := models.MarketData{Price: 0.5, PriceChange24h: -25, Volume24h: 2_000_000, Source: "dexscreener"}
		sentiment := AnalyzeMarket(md, nil)

		assert.Equal(t, "bearish", sentiment.Sentiment)
		assert.Equal(t, "high", sentiment.RiskLevel)
		assert.Equal(t, "avoid", sentiment.Recommendation)
		assert.InDelta(t, 25.0, sentiment.Metrics.Volatility, 1e-9)
	})

	t.Run("Mild Decline Suggests Reducing Exposure", func(t *testing.T) {
		md := models.MarketData{Price: 1.0, PriceChange24h: -7, Volume24h: 500_000, Source: "jupiter"}
		sentiment := AnalyzeMarket(md, nil)

		assert.Equal(t, "bearish", sentiment.Sentiment)
		assert.Equal(t, "low", sentiment.RiskLevel)
		assert.Equal(t, "reduce exposure", sentiment.Recommendation)
	})

	t.Run("Flat Thin Market Is Neutral But Risky", func(t *testing.T) {
		md := models.MarketData{Price: 1.0, PriceChange24h: 1, Volume24h: 5_000, Source: "dexscreener"}
		sentiment := AnalyzeMarket(md, nil)

		assert.Equal(t, "neutral", sentiment.Sentiment)
		assert.Equal(t, "high", sentiment.RiskLevel)
		assert.Equal(t, "monitor", sentiment.Recommendation)
	})

	t.Run("Moderate Volume Is Medium Risk", func(t *testing.T) {
		md := models.MarketData{Price: 1.0, PriceChange24h: 2, Volume24h: 50_000, Source: "dexscreener"}
		sentiment := AnalyzeMarket(md, nil)
		assert.Equal(t, "medium", sentiment.RiskLevel)
	})

	t.Run("Fallback Snapshot Caps Confidence", func(t *testing.T) {
		md := models.MarketData{Price: 150, PriceChange24h: 0, Volume24h: 1_000_000, Source: "fallback"}
		sentiment := AnalyzeMarket(md, nil)
		assert.LessOrEqual(t, sentiment.Confidence, 0.3)
		assert.Equal(t, "fallback", sentiment.Metrics.Source)
	})

	t.Run("Deterministic For Identical Snapshots", func(t *testing.T) {
		md := models.MarketData{Price: 3.3, PriceChange24h: 12, Volume24h: 250_000, Source: "dexscreener"}
		assert.Equal(t, AnalyzeMarket(md, nil), AnalyzeMarket(md, nil))
	})
}
