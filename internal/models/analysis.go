package models

// HolderAccount is one ranked holder of a token, enriched with the owning
// program so wallets can be told apart from program-controlled accounts.
type HolderAccount struct {
	Rank       int     `json:"rank"`
	Address    string  `json:"address"`
	RawAmount  string  `json:"raw_amount"`
	UIAmount   float64 `json:"ui_amount"`
	Percentage float64 `json:"percentage"`
	IsProgram  bool    `json:"is_program"`
	Owner      string  `json:"owner,omitempty"`
}

// Distribution holds the inequality statistics over the fetched holder set.
type Distribution struct {
	GiniCoefficient float64 `json:"gini_coefficient"`
	Top10Percentage float64 `json:"top10_percentage"`
	AverageBalance  float64 `json:"average_balance"`
}

// WhaleAnalysis lists holders above the whale threshold and the best-effort
// recent large-transfer history.
type WhaleAnalysis struct {
	Whales               []HolderAccount   `json:"whales"`
	RecentLargeTransfers Fetch[[]Transfer] `json:"recent_large_transfers"`
}

// HolderAnalysis is the holder-distribution report for one token.
type HolderAnalysis struct {
	TotalHolders  int             `json:"total_holders"`
	TopHolders    []HolderAccount `json:"top_holders"`
	Distribution  Distribution    `json:"distribution"`
	WhaleAnalysis WhaleAnalysis   `json:"whale_analysis"`
}

// TradingMetrics aggregates 24h activity across pools, falling back to the
// market snapshot when pool data is missing.
type TradingMetrics struct {
	Volume24h      float64 `json:"volume_24h"`
	PriceChange24h float64 `json:"price_change_24h"`
	Trades24h      int     `json:"trades_24h"`
	Price          float64 `json:"price,omitempty"`
}

// PoolConcentration describes how liquidity is spread across pools. Label is
// empty when no pools were observed.
type PoolConcentration struct {
	TopPoolPercentage  float64 `json:"top_pool_percentage"`
	LPLockedPercentage float64 `json:"lp_locked_percentage"`
	Label              string  `json:"label,omitempty"`
}

// LiquidityAnalysis is the liquidity report for one token.
type LiquidityAnalysis struct {
	MarketData    MarketData            `json:"market_data"`
	Pools         Fetch[[]PoolSnapshot] `json:"pools"`
	Trading       TradingMetrics        `json:"trading"`
	Concentration PoolConcentration     `json:"concentration"`
	Notes         []string              `json:"notes"`
}

// Authorities holds the three privileged keys of a token; empty means revoked
// or absent.
type Authorities struct {
	Mint   string `json:"mint,omitempty"`
	Freeze string `json:"freeze,omitempty"`
	Update string `json:"update,omitempty"`
}

// Permissions derives what the authorities can still do.
type Permissions struct {
	CanMint   bool `json:"can_mint"`
	CanFreeze bool `json:"can_freeze"`
	CanUpdate bool `json:"can_update"`
}

// ProgramAnalysis describes the program owning the mint account.
type ProgramAnalysis struct {
	ProgramID           string `json:"program_id"`
	IsAlternateStandard bool   `json:"is_alternate_standard"`
	CustomLogic         bool   `json:"custom_logic"`
}

// SecurityFlags are the derived contract-level risk booleans.
type SecurityFlags struct {
	RevokedAuthorities    bool `json:"revoked_authorities"`
	SuspiciousPermissions bool `json:"suspicious_permissions"`
	Blacklisted           bool `json:"blacklisted"`
}

// ContractAudit is the authority/ownership report for one token.
type ContractAudit struct {
	Authorities     Authorities     `json:"authorities"`
	Permissions     Permissions     `json:"permissions"`
	ProgramAnalysis ProgramAnalysis `json:"program_analysis"`
	SecurityFlags   SecurityFlags   `json:"security_flags"`
}
