package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskradar/internal/models"
)

func TestAnalyzeLiquidity(t *testing.T) {
	t.Run("Aggregates Pools Sorted By Depth", func(t *testing.T) {
		pools := &stubPools{snapshots: []models.PoolSnapshot{
			{Name: "X/USDC", Exchange: "orca", LiquidityUSD: 200, Volume24h: 1_000, Txns24h: 10, Price: 2.0, PriceChange24h: 4},
			{Name: "X/SOL", Exchange: "raydium", LiquidityUSD: 800, Volume24h: 3_000, Txns24h: 30, Price: 2.1, PriceChange24h: 2, LockedUSD: 800},
		}}
		market := &stubMarket{byMint: map[string]models.MarketData{
			"m": {Price: 2.05, PriceChange24h: 3, Volume24h: 5_000, Source: "dexscreener"},
		}}
		engine := NewEngine(&stubChain{}, &stubExplorer{}, pools, market, DefaultPolicy())

		analysis := engine.AnalyzeLiquidity(context.Background(), "m", nil)
		require.NotNil(t, analysis)

		assert.Equal(t, models.FetchOK, analysis.Pools.State)
		require.Len(t, analysis.Pools.Data, 2)
		assert.Equal(t, "X/SOL", analysis.Pools.Data[0].Name)

		assert.InDelta(t, 4_000.0, analysis.Trading.Volume24h, 1e-9)
		assert.Equal(t, 40, analysis.Trading.Trades24h)
		assert.InDelta(t, 3.0, analysis.Trading.PriceChange24h, 1e-9)
		// The deepest pool's own price wins over the aggregate snapshot.
		assert.InDelta(t, 2.1, analysis.Trading.Price, 1e-9)

		assert.InDelta(t, 80.0, analysis.Concentration.TopPoolPercentage, 1e-9)
		assert.InDelta(t, 80.0, analysis.Concentration.LPLockedPercentage, 1e-9)
		assert.Equal(t, "high", analysis.Concentration.Label)
		assert.Contains(t, analysis.Notes, "liquidity is concentrated in a single pool")
	})

	t.Run("Market Volume Backfills Missing Pool Volume", func(t *testing.T) {
		pools := &stubPools{snapshots: []models.PoolSnapshot{
			{Name: "X/SOL", LiquidityUSD: 100, Volume24h: 0},
		}}
		market := &stubMarket{byMint: map[string]models.MarketData{
			"m": {Price: 1.0, Volume24h: 9_000, Source: "pyth"},
		}}
		engine := NewEngine(&stubChain{}, &stubExplorer{}, pools, market, DefaultPolicy())

		analysis := engine.AnalyzeLiquidity(context.Background(), "m", nil)
		assert.InDelta(t, 9_000.0, analysis.Trading.Volume24h, 1e-9)
		assert.Contains(t, analysis.Notes, "24h volume sourced from aggregate market data, not pool data")
	})

	t.Run("No Pools Leaves Concentration Unlabeled", func(t *testing.T) {
		market := &stubMarket{byMint: map[string]models.MarketData{
			"m": {Price: 1.0, PriceChange24h: -1.5, Source: "pyth"},
		}}
		engine := NewEngine(&stubChain{}, &stubExplorer{}, &stubPools{}, market, DefaultPolicy())

		analysis := engine.AnalyzeLiquidity(context.Background(), "m", nil)
		assert.Equal(t, models.FetchEmpty, analysis.Pools.State)
		assert.Empty(t, analysis.Concentration.Label)
		assert.InDelta(t, -1.5, analysis.Trading.PriceChange24h, 1e-9)
		assert.Contains(t, analysis.Notes, "no active liquidity pools found for this token")
	})

	t.Run("Pool Source Outage Is A Failed Fetch", func(t *testing.T) {
		pools := &stubPools{err: errors.New("dexscreener down")}
		engine := NewEngine(&stubChain{}, &stubExplorer{}, pools, &stubMarket{}, DefaultPolicy())

		analysis := engine.AnalyzeLiquidity(context.Background(), "m", nil)
		assert.Equal(t, models.FetchFailed, analysis.Pools.State)
	})

	t.Run("Profile Symbol Reaches The Market Source", func(t *testing.T) {
		market := &stubMarket{bySymbol: map[string]models.MarketData{
			"SOL": {Price: 150, Source: "pyth"},
		}}
		engine := NewEngine(&stubChain{}, &stubExplorer{}, &stubPools{}, market, DefaultPolicy())

		profile := &models.TokenProfile{Symbol: "SOL"}
		analysis := engine.AnalyzeLiquidity(context.Background(), "m", profile)
		assert.Equal(t, "pyth", analysis.MarketData.Source)
		assert.InDelta(t, 150.0, analysis.MarketData.Price, 1e-9)
	})
}
