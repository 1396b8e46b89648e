package models

// MarketData is a point-in-time price/volume snapshot for one token. Source
// identifies which provider answered, or "fallback" when every provider failed.
type MarketData struct {
	Price          float64 `json:"price"`
	PriceChange24h float64 `json:"price_change_24h"`
	Volume24h      float64 `json:"volume_24h"`
	MarketCap      float64 `json:"market_cap,omitempty"`
	Source         string  `json:"source"`
}

// MarketSentiment is a deterministic read of a MarketData snapshot.
type MarketSentiment struct {
	Sentiment      string           `json:"sentiment"`
	Confidence     float64          `json:"confidence"`
	Recommendation string           `json:"recommendation"`
	RiskLevel      string           `json:"risk_level"`
	Metrics        SentimentMetrics `json:"analysis_metrics"`
}

// SentimentMetrics carries the intermediate figures the sentiment verdict was
// derived from, so callers can audit the call.
type SentimentMetrics struct {
	Momentum    float64 `json:"momentum"`
	Volatility  float64 `json:"volatility"`
	VolumeScore float64 `json:"volume_score"`
	Source      string  `json:"source"`
}
