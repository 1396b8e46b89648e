package analysis

import (
	"context"
	"sort"

	log "github.com/sirupsen/logrus"

	"riskradar/internal/models"
)

// AnalyzeLiquidity aggregates DEX pool snapshots with a baseline market
// snapshot into trading and concentration metrics. Pool data is best-effort;
// the baseline market data backfills whatever the pools cannot answer.
func (e *Engine) AnalyzeLiquidity(ctx context.Context, mint string, profile *models.TokenProfile) *models.LiquidityAnalysis {
	symbol := ""
	if profile != nil {
		symbol = profile.Symbol
	}
	marketData := e.market.GetMarketData(ctx, symbol, mint)

	pools := e.fetchPools(ctx, mint)
	analysis := &models.LiquidityAnalysis{
		MarketData: marketData,
		Pools:      pools,
		Notes:      []string{},
	}

	snapshots := pools.Data
	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].LiquidityUSD > snapshots[j].LiquidityUSD
	})

	var poolVolume, changeSum, totalLiquidity, lockedLiquidity float64
	var trades int
	for _, pool := range snapshots {
		poolVolume += pool.Volume24h
		changeSum += pool.PriceChange24h
		totalLiquidity += pool.LiquidityUSD
		lockedLiquidity += pool.LockedUSD
		trades += pool.Txns24h
	}

	analysis.Trading = models.TradingMetrics{
		Volume24h: poolVolume,
		Trades24h: trades,
		Price:     marketData.Price,
	}
	if len(snapshots) > 0 {
		analysis.Trading.PriceChange24h = changeSum / float64(len(snapshots))
		if snapshots[0].Price > 0 {
			analysis.Trading.Price = snapshots[0].Price
		}
	} else {
		analysis.Trading.PriceChange24h = marketData.PriceChange24h
	}
	if poolVolume == 0 && marketData.Volume24h > 0 {
		analysis.Trading.Volume24h = marketData.Volume24h
		analysis.Notes = append(analysis.Notes, "24h volume sourced from aggregate market data, not pool data")
	}

	if len(snapshots) == 0 {
		analysis.Notes = append(analysis.Notes, "no active liquidity pools found for this token")
		return analysis
	}

	concentration := models.PoolConcentration{}
	if totalLiquidity > 0 {
		concentration.TopPoolPercentage = snapshots[0].LiquidityUSD / totalLiquidity * 100
		concentration.LPLockedPercentage = lockedLiquidity / totalLiquidity * 100
	}
	switch {
	case concentration.TopPoolPercentage > 60:
		concentration.Label = "high"
	case concentration.TopPoolPercentage > 30:
		concentration.Label = "moderate"
	default:
		concentration.Label = "diversified"
	}
	analysis.Concentration = concentration

	if concentration.TopPoolPercentage > 60 {
		analysis.Notes = append(analysis.Notes, "liquidity is concentrated in a single pool")
	}

	return analysis
}

func (e *Engine) fetchPools(ctx context.Context, mint string) models.Fetch[[]models.PoolSnapshot] {
	snapshots, err := e.pools.GetPoolSnapshots(ctx, mint)
	if err != nil {
		log.Warnf("liquidity: pool snapshot lookup failed for %s: %v", mint, err)
		return models.FetchFailure[[]models.PoolSnapshot]()
	}
	if len(snapshots) == 0 {
		return models.FetchEmptySuccess[[]models.PoolSnapshot]()
	}
	return models.FetchSuccess(snapshots)
}
