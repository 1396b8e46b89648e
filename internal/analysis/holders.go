package analysis

import (
	"context"
	"sort"

	log "github.com/sirupsen/logrus"

	"riskradar/internal/models"
)

const topHolderCount = 10

// AnalyzeHolders builds the holder-distribution report for a mint. Every
// upstream failure degrades to an empty or unknown section; the function
// itself never fails.
func (e *Engine) AnalyzeHolders(ctx context.Context, mint string, profile *models.TokenProfile) *models.HolderAnalysis {
	totalSupply := 0.0
	if profile != nil && profile.TotalSupplyUI > 0 {
		totalSupply = profile.TotalSupplyUI
	} else if supply, err := e.chain.GetTokenSupply(ctx, mint); err != nil {
		log.Warnf("holders: token supply lookup failed for %s: %v", mint, err)
	} else {
		totalSupply = supply.UIAmount
	}

	balances, err := e.chain.GetLargestHolderAccounts(ctx, mint)
	if err != nil {
		log.Warnf("holders: largest accounts lookup failed for %s: %v", mint, err)
		balances = nil
	}
	sort.Slice(balances, func(i, j int) bool {
		return balances[i].UIAmount > balances[j].UIAmount
	})

	analysis := &models.HolderAnalysis{
		TotalHolders: len(balances),
		TopHolders:   []models.HolderAccount{},
	}

	amounts := make([]float64, 0, len(balances))
	for i, bal := range balances {
		amounts = append(amounts, bal.UIAmount)
		if i >= topHolderCount {
			continue
		}
		holder := models.HolderAccount{
			Rank:      i + 1,
			Address:   bal.Address,
			RawAmount: bal.AmountRaw,
			UIAmount:  bal.UIAmount,
		}
		if totalSupply > 0 {
			holder.Percentage = bal.UIAmount / totalSupply * 100
		}
		owner, err := e.chain.ResolveAccountOwner(ctx, bal.Address)
		if err != nil {
			log.Warnf("holders: owner lookup failed for %s: %v", bal.Address, err)
		} else {
			holder.Owner = owner
			holder.IsProgram = !isCustodyProgram(owner)
		}
		analysis.TopHolders = append(analysis.TopHolders, holder)
	}

	analysis.Distribution = models.Distribution{
		GiniCoefficient: giniCoefficient(amounts),
		Top10Percentage: topShare(amounts, topHolderCount, totalSupply),
		AverageBalance:  mean(amounts),
	}

	whales := []models.HolderAccount{}
	for _, holder := range analysis.TopHolders {
		if holder.Percentage > e.policy.WhalePercentMin {
			whales = append(whales, holder)
		}
	}
	analysis.WhaleAnalysis = models.WhaleAnalysis{
		Whales:               whales,
		RecentLargeTransfers: e.fetchRecentTransfers(ctx, mint),
	}

	return analysis
}

func (e *Engine) fetchRecentTransfers(ctx context.Context, mint string) models.Fetch[[]models.Transfer] {
	transfers, err := e.explorer.GetRecentLargeTransfers(ctx, mint)
	if err != nil {
		log.Warnf("holders: transfer history lookup failed for %s: %v", mint, err)
		return models.FetchFailure[[]models.Transfer]()
	}
	if len(transfers) == 0 {
		return models.FetchEmptySuccess[[]models.Transfer]()
	}
	return models.FetchSuccess(transfers)
}

// giniCoefficient computes the Gini inequality measure over the amounts:
// G = (2*sum(i*x_i)) / (n*sum(x_i)) - (n+1)/n with amounts sorted ascending
// and i 1-indexed. Zero supply or an empty set yields 0.
func giniCoefficient(amounts []float64) float64 {
	n := len(amounts)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, amounts)
	sort.Float64s(sorted)

	var sum, weighted float64
	for i, x := range sorted {
		sum += x
		weighted += float64(i+1) * x
	}
	if sum == 0 {
		return 0
	}
	return (2*weighted)/(float64(n)*sum) - float64(n+1)/float64(n)
}

// topShare returns the percentage of totalSupply held by the k largest
// amounts. amounts must be sorted descending.
func topShare(amounts []float64, k int, totalSupply float64) float64 {
	if totalSupply <= 0 {
		return 0
	}
	var sum float64
	for i, x := range amounts {
		if i >= k {
			break
		}
		sum += x
	}
	pct := sum / totalSupply * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}

func mean(amounts []float64) float64 {
	if len(amounts) == 0 {
		return 0
	}
	var sum float64
	for _, x := range amounts {
		sum += x
	}
	return sum / float64(len(amounts))
}
