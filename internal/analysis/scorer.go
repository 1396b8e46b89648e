package analysis

import (
	"math"
	"strings"

	"riskradar/internal/models"
)

// ScoreResult is the scorer's output: category scores, the weighted overall
// score, severity-split flags and deduplicated recommendations.
type ScoreResult struct {
	Categories      models.RiskCategories
	Overall         int
	Flags           models.RiskFlags
	Recommendations []string
}

// scaleScore maps value linearly onto [0,10], clamping below min to 0 and
// above max to 10.
func scaleScore(value, min, max float64) float64 {
	if value <= min {
		return 0
	}
	if value >= max {
		return 10
	}
	return (value - min) / (max - min) * 10
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}

// Score combines the three analyzer outputs and the token profile into the
// final category and overall scores. Missing inputs score conservatively; the
// result is always fully defined.
func Score(holders *models.HolderAnalysis, liquidity *models.LiquidityAnalysis, audit *models.ContractAudit, profile *models.TokenProfile, policy Policy) ScoreResult {
	categories := models.RiskCategories{
		Tokenomics: scoreTokenomics(holders, policy),
		Liquidity:  scoreLiquidity(liquidity, policy),
		Security:   scoreSecurity(audit, policy),
		Social:     scoreSocial(profile, policy),
	}

	overall := clampScore(int(math.Round(
		float64(categories.Tokenomics)*policy.TokenomicsWeight +
			float64(categories.Liquidity)*policy.LiquidityWeight +
			float64(categories.Security)*policy.SecurityWeight +
			float64(categories.Social)*policy.SocialWeight)))

	flags := collectFlags(holders, liquidity, audit, profile, policy)

	return ScoreResult{
		Categories:      categories,
		Overall:         overall,
		Flags:           flags,
		Recommendations: buildRecommendations(categories, flags, policy),
	}
}

func scoreTokenomics(holders *models.HolderAnalysis, policy Policy) int {
	if holders == nil {
		return 5
	}
	top10 := scaleScore(holders.Distribution.Top10Percentage, policy.Top10ScaleMin, policy.Top10ScaleMax)
	gini := math.Min(10, math.Round(holders.Distribution.GiniCoefficient*10))
	whalePoints := len(holders.WhaleAnalysis.Whales)
	if whalePoints > policy.MaxWhalePoints {
		whalePoints = policy.MaxWhalePoints
	}
	return clampScore(int(math.Round(top10*policy.Top10SubWeight + gini*policy.GiniSubWeight + float64(whalePoints))))
}

func scoreLiquidity(liquidity *models.LiquidityAnalysis, policy Policy) int {
	if liquidity == nil {
		return 10
	}
	// No pools and no volume anywhere means there is no market at all.
	if len(liquidity.Pools.Data) == 0 && liquidity.Trading.Volume24h == 0 {
		return 10
	}
	volume := scaleScore(math.Log10(liquidity.Trading.Volume24h+1), policy.VolumeLogScaleMin, policy.VolumeLogScaleMax)
	// scaleScore grows with the input, so invert: thin volume is the risk.
	volumeRisk := 10 - volume

	poolCount := len(liquidity.Pools.Data)
	var poolPenalty float64
	switch {
	case poolCount == 0:
		poolPenalty = policy.ZeroPoolPenalty
	case poolCount == 1:
		poolPenalty = policy.SinglePoolPenalty
	default:
		poolPenalty = policy.MultiPoolPenalty
	}

	concentration := policy.NoPoolConcentration
	if poolCount > 0 {
		concentration = scaleScore(liquidity.Concentration.TopPoolPercentage, policy.TopPoolScaleMin, policy.TopPoolScaleMax)
	}

	return clampScore(int(math.Round(volumeRisk*policy.VolumeSubWeight +
		poolPenalty*policy.PoolCountSubWeight +
		concentration*policy.ConcentrationSubWeight)))
}

func scoreSecurity(audit *models.ContractAudit, policy Policy) int {
	if audit == nil {
		return 5
	}
	score := 0
	if audit.Permissions.CanMint {
		score += policy.MintAuthorityPoints
	}
	if audit.Permissions.CanFreeze {
		score += policy.FreezeAuthorityPoints
	}
	if audit.Permissions.CanUpdate {
		score += policy.UpdateAuthorityPoints
	}
	if audit.SecurityFlags.SuspiciousPermissions {
		score += policy.SuspiciousPoints
	}
	if audit.ProgramAnalysis.CustomLogic {
		score += policy.CustomLogicPoints
	}
	return clampScore(score)
}

func scoreSocial(profile *models.TokenProfile, policy Policy) int {
	score := policy.SocialBaseline
	if profile == nil {
		return clampScore(score + policy.NoExternalURLPoints + policy.NoImagePoints + policy.NoDescriptionPoints)
	}
	meta := profile.Metadata
	if meta.ExternalURL == "" {
		score += policy.NoExternalURLPoints
	}
	if meta.Image == "" {
		score += policy.NoImagePoints
	}
	if meta.Description == "" {
		score += policy.NoDescriptionPoints
	}
	if meta.ExternalURL != "" && meta.Description != "" {
		score -= policy.WellDocumentedBonus
	}
	return clampScore(score)
}

// collectFlags derives critical and warning flags from the raw metrics with
// fixed thresholds, independent of the category weights, so retuning the
// weights does not move the flags.
func collectFlags(holders *models.HolderAnalysis, liquidity *models.LiquidityAnalysis, audit *models.ContractAudit, profile *models.TokenProfile, policy Policy) models.RiskFlags {
	critical := newStringSet()
	warnings := newStringSet()

	if holders != nil {
		if holders.Distribution.Top10Percentage > policy.Top10CriticalPct {
			critical.add("High holder concentration (>80% in top 10 wallets)")
		} else if holders.Distribution.Top10Percentage > policy.Top10WarningPct {
			warnings.add("Elevated holder concentration (>60% in top 10 wallets)")
		}
		if holders.Distribution.GiniCoefficient > policy.GiniWarning {
			warnings.add("Highly unequal holder distribution (Gini >0.8)")
		}
		if len(holders.WhaleAnalysis.Whales) >= policy.WhaleCountWarning {
			warnings.add("Multiple whale wallets each hold >5% of supply")
		}
		if holders.WhaleAnalysis.RecentLargeTransfers.Failed() {
			warnings.add("Recent transfer history unavailable")
		}
	}

	if liquidity != nil {
		if len(liquidity.Pools.Data) == 0 {
			critical.add("No active liquidity pools identified")
		}
		if liquidity.Trading.Volume24h < policy.VolumeCriticalUSD {
			critical.add("Extremely low 24h trading volume (<$1k)")
		} else if liquidity.Trading.Volume24h < policy.VolumeWarningUSD {
			warnings.add("Low 24h trading volume (<$10k)")
		}
		if len(liquidity.Pools.Data) > 0 {
			if liquidity.Concentration.TopPoolPercentage > policy.TopPoolCriticalPct {
				critical.add("Liquidity concentrated in a single pool (>80%)")
			} else if liquidity.Concentration.TopPoolPercentage > policy.TopPoolWarningPct {
				warnings.add("Top pool holds >60% of liquidity")
			}
			if liquidity.Concentration.LPLockedPercentage < policy.LPLockedWarningPct {
				warnings.add("Less than 50% of pool liquidity locked")
			}
		}
	}

	if audit != nil {
		if audit.Permissions.CanMint {
			critical.add("Mint authority is active (supply can be inflated)")
		}
		if audit.SecurityFlags.SuspiciousPermissions {
			critical.add("Mint and freeze authority held by the same key")
		}
		if audit.Permissions.CanFreeze {
			warnings.add("Freeze authority is active (accounts can be frozen)")
		}
		if !audit.SecurityFlags.RevokedAuthorities {
			warnings.add("Token authorities have not been revoked")
		}
		if audit.ProgramAnalysis.CustomLogic {
			warnings.add("Token owned by a non-standard program")
		}
		if audit.SecurityFlags.Blacklisted {
			critical.add("Token appears on a blacklist")
		}
	}

	if profile != nil {
		if profile.Metadata.ExternalURL == "" {
			warnings.add("No project website or external link")
		}
		if profile.Metadata.Image == "" {
			warnings.add("Token metadata has no image")
		}
		if profile.Metadata.Description == "" {
			warnings.add("Token metadata has no description")
		}
	}

	return models.RiskFlags{Critical: critical.values(), Warnings: warnings.values()}
}

func buildRecommendations(categories models.RiskCategories, flags models.RiskFlags, policy Policy) []string {
	recs := newStringSet()

	if categories.Tokenomics > policy.RecommendationScore {
		recs.add("Verify holder distribution before taking a position")
	}
	if categories.Liquidity > policy.RecommendationScore {
		recs.add("Expect high slippage; size entries and exits accordingly")
	}
	if categories.Security > policy.RecommendationScore {
		recs.add("Treat as high risk until authorities are revoked")
	}
	if categories.Social > policy.RecommendationScore {
		recs.add("Research the project team and documentation independently")
	}

	for _, flag := range flags.Critical {
		lower := strings.ToLower(flag)
		switch {
		case strings.Contains(lower, "concentration"):
			recs.add("Monitor top wallets for coordinated selling")
		case strings.Contains(lower, "pool") || strings.Contains(lower, "liquidity"):
			recs.add("Confirm an exit route exists before entering")
		case strings.Contains(lower, "mint"):
			recs.add("Supply can be diluted at any time; avoid long holds")
		case strings.Contains(lower, "volume"):
			recs.add("Thin markets distort prices; use limit orders only")
		}
	}

	return recs.values()
}

// stringSet deduplicates while preserving insertion order, keeping flag and
// recommendation output deterministic.
type stringSet struct {
	seen  map[string]struct{}
	order []string
}

func newStringSet() *stringSet {
	return &stringSet{seen: make(map[string]struct{})}
}

func (s *stringSet) add(v string) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.order = append(s.order, v)
}

func (s *stringSet) values() []string {
	if s.order == nil {
		return []string{}
	}
	return s.order
}
