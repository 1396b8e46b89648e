package models

// RiskCategories are the per-category risk scores, each clamped to [0,10].
// Higher means riskier.
type RiskCategories struct {
	Tokenomics int `json:"tokenomics"`
	Liquidity  int `json:"liquidity"`
	Security   int `json:"security"`
	Social     int `json:"social"`
}

// RiskFlags split findings by severity. Both lists are deduplicated.
type RiskFlags struct {
	Critical []string `json:"critical"`
	Warnings []string `json:"warnings"`
}

// MarketSection is the optional market snapshot plus its sentiment read,
// attached to a risk report when the liquidity layer produced usable data.
type MarketSection struct {
	Data     MarketData      `json:"data"`
	Analysis MarketSentiment `json:"analysis"`
}

// RiskReport is the full normalized assessment for one token.
type RiskReport struct {
	Mint            string             `json:"mint"`
	Overall         int                `json:"overall"`
	Categories      RiskCategories     `json:"categories"`
	Flags           RiskFlags          `json:"flags"`
	Recommendations []string           `json:"recommendations"`
	Profile         *TokenProfile      `json:"profile"`
	Holders         *HolderAnalysis    `json:"holders"`
	Liquidity       *LiquidityAnalysis `json:"liquidity"`
	Audit           *ContractAudit     `json:"audit"`
	Market          *MarketSection     `json:"market,omitempty"`
}

// PortfolioHolding is one priced position of a wallet.
type PortfolioHolding struct {
	Mint      string  `json:"mint"`
	AmountRaw string  `json:"amount_raw"`
	UIAmount  float64 `json:"ui_amount"`
	Decimals  int     `json:"decimals"`
	PriceUSD  float64 `json:"price_usd"`
	ValueUSD  float64 `json:"value_usd"`
	Source    string  `json:"source"`
}

// NativeBalance is the wallet's native-currency position.
type NativeBalance struct {
	Raw       uint64  `json:"raw"`
	Converted float64 `json:"converted"`
	PriceUSD  float64 `json:"price_usd"`
	ValueUSD  float64 `json:"value_usd"`
	Source    string  `json:"source"`
}

// PortfolioSummary classifies the portfolio's concentration risk.
type PortfolioSummary struct {
	Tokens         int    `json:"tokens"`
	LargestHolding string `json:"largest_holding,omitempty"`
	RiskLevel      string `json:"risk_level"`
}

// PortfolioAnalysis is the valuation report for one wallet.
type PortfolioAnalysis struct {
	Wallet        string             `json:"wallet"`
	TotalValueUSD float64            `json:"total_value_usd"`
	Holdings      []PortfolioHolding `json:"holdings"`
	NativeBalance NativeBalance      `json:"native_balance"`
	Summary       PortfolioSummary   `json:"summary"`
}
