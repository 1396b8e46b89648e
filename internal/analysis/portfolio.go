package analysis

import (
	"context"
	"sort"

	log "github.com/sirupsen/logrus"

	"riskradar/internal/models"
)

const (
	// Pricing every holding of a large wallet is not worth the provider
	// traffic; only the biggest positions are valued.
	maxPricedHoldings = 20

	nativeSymbol = "SOL"
	nativeMint   = "So11111111111111111111111111111111111111112"
)

// AnalyzePortfolio enumerates a wallet's fungible holdings, prices the
// largest ones and classifies the concentration risk. Only a malformed
// wallet address is an error; upstream outages degrade to zero values.
func (e *Engine) AnalyzePortfolio(ctx context.Context, wallet string, filterMints []string) (*models.PortfolioAnalysis, error) {
	if err := validateAddress("wallet", wallet); err != nil {
		return nil, err
	}

	holdings, err := e.chain.GetFungibleHoldings(ctx, wallet)
	if err != nil {
		log.Warnf("portfolio: holdings lookup failed for %s: %v", wallet, err)
		holdings = nil
	}

	var filter map[string]struct{}
	if len(filterMints) > 0 {
		filter = make(map[string]struct{}, len(filterMints))
		for _, mint := range filterMints {
			filter[mint] = struct{}{}
		}
	}

	kept := make([]models.Holding, 0, len(holdings))
	for _, holding := range holdings {
		if holding.UIAmount <= 0 {
			continue
		}
		if filter != nil {
			if _, ok := filter[holding.Mint]; !ok {
				continue
			}
		}
		kept = append(kept, holding)
	}
	sort.Slice(kept, func(i, j int) bool {
		return kept[i].UIAmount > kept[j].UIAmount
	})
	if len(kept) > maxPricedHoldings {
		kept = kept[:maxPricedHoldings]
	}

	analysis := &models.PortfolioAnalysis{
		Wallet:   wallet,
		Holdings: make([]models.PortfolioHolding, 0, len(kept)),
	}

	var total float64
	for _, holding := range kept {
		md := e.market.GetMarketData(ctx, "", holding.Mint)
		value := holding.UIAmount * md.Price
		total += value
		analysis.Holdings = append(analysis.Holdings, models.PortfolioHolding{
			Mint:      holding.Mint,
			AmountRaw: holding.AmountRaw,
			UIAmount:  holding.UIAmount,
			Decimals:  holding.Decimals,
			PriceUSD:  md.Price,
			ValueUSD:  value,
			Source:    md.Source,
		})
	}

	lamports, err := e.chain.GetNativeBalance(ctx, wallet)
	if err != nil {
		log.Warnf("portfolio: native balance lookup failed for %s: %v", wallet, err)
		lamports = 0
	}
	converted := float64(lamports) / 1e9
	nativeMD := e.market.GetMarketData(ctx, nativeSymbol, nativeMint)
	nativeValue := converted * nativeMD.Price
	total += nativeValue

	analysis.NativeBalance = models.NativeBalance{
		Raw:       lamports,
		Converted: converted,
		PriceUSD:  nativeMD.Price,
		ValueUSD:  nativeValue,
		Source:    nativeMD.Source,
	}
	analysis.TotalValueUSD = total
	analysis.Summary = summarizePortfolio(analysis)

	return analysis, nil
}

// summarizePortfolio classifies concentration risk: "high" when one position
// dominates, "medium" for empty or dust-heavy wallets, otherwise "low".
func summarizePortfolio(analysis *models.PortfolioAnalysis) models.PortfolioSummary {
	summary := models.PortfolioSummary{Tokens: len(analysis.Holdings)}

	total := analysis.TotalValueUSD
	if total == 0 {
		summary.RiskLevel = "medium"
		return summary
	}

	largestValue := analysis.NativeBalance.ValueUSD
	summary.LargestHolding = nativeSymbol
	dominated := analysis.NativeBalance.ValueUSD/total > 0.5
	dustCount := 0
	for _, holding := range analysis.Holdings {
		if holding.ValueUSD > largestValue {
			largestValue = holding.ValueUSD
			summary.LargestHolding = holding.Mint
		}
		if holding.ValueUSD/total > 0.5 {
			dominated = true
		}
		if holding.ValueUSD/total < 0.05 {
			dustCount++
		}
	}

	switch {
	case dominated:
		summary.RiskLevel = "high"
	case len(analysis.Holdings) > 0 && float64(dustCount)/float64(len(analysis.Holdings)) > 0.6:
		summary.RiskLevel = "medium"
	default:
		summary.RiskLevel = "low"
	}
	return summary
}
