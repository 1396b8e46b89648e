package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskradar/internal/models"
)

func TestGiniCoefficient(t *testing.T) {
	t.Run("Empty Set Is Zero", func(t *testing.T) {
		assert.Equal(t, 0.0, giniCoefficient(nil))
	})

	t.Run("Zero Supply Is Zero", func(t *testing.T) {
		assert.Equal(t, 0.0, giniCoefficient([]float64{0, 0, 0}))
	})

	t.Run("Perfect Equality Is Zero", func(t *testing.T) {
		assert.InDelta(t, 0.0, giniCoefficient([]float64{25, 25, 25, 25}), 1e-9)
	})

	t.Run("Single Holder Owns Everything", func(t *testing.T) {
		// With n accounts and one holding all supply, G = (n-1)/n.
		assert.InDelta(t, 0.8, giniCoefficient([]float64{0, 0, 0, 0, 1000}), 1e-9)
	})

	t.Run("Order Independent", func(t *testing.T) {
		a := giniCoefficient([]float64{400, 100, 300, 200})
		b := giniCoefficient([]float64{100, 200, 300, 400})
		assert.InDelta(t, a, b, 1e-12)
		assert.InDelta(t, 0.25, a, 1e-9)
	})
}

func TestTopShare(t *testing.T) {
	t.Run("Zero Supply Is Zero", func(t *testing.T) {
		assert.Equal(t, 0.0, topShare([]float64{10, 5}, 10, 0))
	})

	t.Run("Sums Only Top K", func(t *testing.T) {
		amounts := []float64{50, 30, 10, 5, 5}
		assert.InDelta(t, 80.0, topShare(amounts, 2, 100), 1e-9)
	})

	t.Run("Caps At One Hundred", func(t *testing.T) {
		// Largest accounts can exceed the reported supply when the supply
		// lookup lags behind the ledger.
		assert.Equal(t, 100.0, topShare([]float64{90, 80}, 10, 100))
	})
}

func TestAnalyzeHolders(t *testing.T) {
	t.Run("Full Distribution Report", func(t *testing.T) {
		chain := &stubChain{
			largestHolders: []models.HolderBalance{
				{Address: "h1", AmountRaw: "400", UIAmount: 400},
				{Address: "h2", AmountRaw: "300", UIAmount: 300},
				{Address: "h3", AmountRaw: "200", UIAmount: 200},
				{Address: "h4", AmountRaw: "100", UIAmount: 100},
			},
			accountOwner: tokenProgramID,
		}
		engine := NewEngine(chain, &stubExplorer{err: errors.New("down")}, &stubPools{}, &stubMarket{}, DefaultPolicy())

		profile := &models.TokenProfile{Mint: "m", TotalSupplyUI: 1000}
		analysis := engine.AnalyzeHolders(context.Background(), "m", profile)
		require.NotNil(t, analysis)

		assert.Equal(t, 4, analysis.TotalHolders)
		require.Len(t, analysis.TopHolders, 4)
		assert.Equal(t, 1, analysis.TopHolders[0].Rank)
		assert.Equal(t, "h1", analysis.TopHolders[0].Address)
		assert.InDelta(t, 40.0, analysis.TopHolders[0].Percentage, 1e-9)
		assert.False(t, analysis.TopHolders[0].IsProgram)

		assert.InDelta(t, 0.25, analysis.Distribution.GiniCoefficient, 1e-9)
		assert.InDelta(t, 100.0, analysis.Distribution.Top10Percentage, 1e-9)
		assert.InDelta(t, 250.0, analysis.Distribution.AverageBalance, 1e-9)

		// Every holder is above the 5% whale line here.
		assert.Len(t, analysis.WhaleAnalysis.Whales, 4)
		assert.Equal(t, models.FetchFailed, analysis.WhaleAnalysis.RecentLargeTransfers.State)
	})

	t.Run("Supply Lookup Used When Profile Lacks It", func(t *testing.T) {
		chain := &stubChain{
			supply: &models.TokenSupply{AmountRaw: "1000", UIAmount: 1000, Decimals: 0},
			largestHolders: []models.HolderBalance{
				{Address: "h1", AmountRaw: "600", UIAmount: 600},
			},
			accountOwner: tokenProgramID,
		}
		engine := NewEngine(chain, &stubExplorer{}, &stubPools{}, &stubMarket{}, DefaultPolicy())

		analysis := engine.AnalyzeHolders(context.Background(), "m", nil)
		require.Len(t, analysis.TopHolders, 1)
		assert.InDelta(t, 60.0, analysis.TopHolders[0].Percentage, 1e-9)
	})

	t.Run("Upstream Outage Degrades To Empty Report", func(t *testing.T) {
		chain := &stubChain{failAll: true}
		engine := NewEngine(chain, &stubExplorer{err: errors.New("down")}, &stubPools{}, &stubMarket{}, DefaultPolicy())

		analysis := engine.AnalyzeHolders(context.Background(), "m", nil)
		require.NotNil(t, analysis)
		assert.Equal(t, 0, analysis.TotalHolders)
		assert.Empty(t, analysis.TopHolders)
		assert.Equal(t, 0.0, analysis.Distribution.GiniCoefficient)
		assert.Empty(t, analysis.WhaleAnalysis.Whales)
	})

	t.Run("Verified Empty Transfer History", func(t *testing.T) {
		chain := &stubChain{accountOwner: tokenProgramID}
		engine := NewEngine(chain, &stubExplorer{}, &stubPools{}, &stubMarket{}, DefaultPolicy())

		analysis := engine.AnalyzeHolders(context.Background(), "m", nil)
		assert.Equal(t, models.FetchEmpty, analysis.WhaleAnalysis.RecentLargeTransfers.State)
	})
}
