package analysis

import (
	"math"

	"riskradar/internal/models"
)

// Sentiment thresholds. Momentum is the 24h price change in percent.
const (
	bullishMomentum = 5.0
	bearishMomentum = -5.0

	highVolatility   = 20.0
	mediumVolatility = 10.0

	thinVolumeUSD = 10_000.0
	lowVolumeUSD  = 100_000.0
)

// AnalyzeMarket derives a directional sentiment, a confidence level and a
// coarse risk level from a single market snapshot. It is deterministic: the
// same snapshot always yields the same verdict.
func AnalyzeMarket(md models.MarketData, profile *models.TokenProfile) models.MarketSentiment {
	momentum := md.PriceChange24h
	volatility := math.Abs(md.PriceChange24h)

	sentiment := "neutral"
	if momentum > bullishMomentum {
		sentiment = "bullish"
	} else if momentum < bearishMomentum {
		sentiment = "bearish"
	}

	riskLevel := "low"
	switch {
	case volatility > highVolatility || md.Volume24h < thinVolumeUSD:
		riskLevel = "high"
	case volatility > mediumVolatility || md.Volume24h < lowVolumeUSD:
		riskLevel = "medium"
	}

	// Confidence follows volume depth on a log scale; a fallback snapshot is
	// synthetic and caps out low.
	volumeScore := scaleScore(math.Log10(md.Volume24h+1), 3, 7) / 10
	confidence := volumeScore
	if md.Source == "fallback" && confidence > 0.3 {
		confidence = 0.3
	}

	recommendation := "monitor"
	switch {
	case sentiment == "bullish" && riskLevel != "high":
		recommendation = "accumulate"
	case sentiment == "bearish" && riskLevel == "high":
		recommendation = "avoid"
	case sentiment == "bearish":
		recommendation = "reduce exposure"
	}

	return models.MarketSentiment{
		Sentiment:      sentiment,
		Confidence:     confidence,
		Recommendation: recommendation,
		RiskLevel:      riskLevel,
		Metrics: models.SentimentMetrics{
			Momentum:    momentum,
			Volatility:  volatility,
			VolumeScore: volumeScore,
			Source:      md.Source,
		},
	}
}
